package main

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/danmuck/ragwire/internal/graphrag"
	"github.com/danmuck/ragwire/internal/protocol/raw"
	"github.com/danmuck/ragwire/internal/protocol/wire"
	"github.com/danmuck/ragwire/internal/render"
)

type fieldView struct {
	Number uint32 `json:"number" yaml:"number"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Type   string `json:"type" yaml:"type"`
	Offset int    `json:"offset" yaml:"offset"`
	Length int    `json:"length" yaml:"length"`
	Value  string `json:"value" yaml:"value"`
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List the top-level fields of a protobuf payload without a schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			maxBytes, err := maxBytesFlag(cmd)
			if err != nil {
				return err
			}
			formatFlag, _ := cmd.Flags().GetString("format")
			messageName, _ := cmd.Flags().GetString("message")

			names := map[uint32]string{}
			if messageName != "" {
				entry, err := graphrag.NewRegistry(nil).Lookup(messageName)
				if err != nil {
					return err
				}
				for _, info := range entry.Fields {
					names[info.Number] = info.Name
				}
			}

			r, closeFn, err := openInput(cmd, in)
			if err != nil {
				return err
			}
			defer closeFn()
			payloads, err := readPayloads(r, modeFromFlags(cmd), maxBytes)
			if err != nil {
				return err
			}

			views := make([][]fieldView, 0, len(payloads))
			for i, p := range payloads {
				fields, err := raw.DecodeFields(p)
				if err != nil {
					return fmt.Errorf("message %d: %w", i, err)
				}
				list := make([]fieldView, 0, len(fields))
				for _, f := range fields {
					list = append(list, fieldView{
						Number: f.Number,
						Name:   names[f.Number],
						Type:   f.Type.String(),
						Offset: f.Offset,
						Length: f.End() - f.Offset,
						Value:  describeValue(f),
					})
				}
				views = append(views, list)
			}

			w := cmd.OutOrStdout()
			if formatFlag != "" && formatFlag != "text" {
				format, err := render.ParseFormat(formatFlag)
				if err != nil {
					return err
				}
				out, err := render.Marshal(format, views)
				if err != nil {
					return err
				}
				_, err = w.Write(out)
				return err
			}
			for i, list := range views {
				if len(views) > 1 {
					fmt.Fprintf(w, "# message %d\n", i)
				}
				for _, v := range list {
					label := strconv.FormatUint(uint64(v.Number), 10)
					if v.Name != "" {
						label += " " + v.Name
					}
					fmt.Fprintf(w, "%-28s %-7s @%-5d %s\n", label, v.Type, v.Offset, v.Value)
				}
			}
			return nil
		},
	}
	cmd.Flags().String("in", "-", "Input file, - for stdin")
	cmd.Flags().String("format", "text", "Output format: text, json or yaml")
	cmd.Flags().String("message", "", "Label field numbers with this message's field names")
	addStreamFlags(cmd)
	return cmd
}

func describeValue(f raw.Field) string {
	switch f.Type {
	case wire.VarintType:
		v, err := f.Varint()
		if err != nil {
			return "invalid varint"
		}
		return strconv.FormatUint(v, 10)
	case wire.Fixed32Type:
		v, err := wire.Wrap(f.Value).ReadFixed32()
		if err != nil {
			return "invalid fixed32"
		}
		return fmt.Sprintf("0x%08x (%g)", v, math.Float32frombits(v))
	case wire.Fixed64Type:
		v, err := wire.Wrap(f.Value).ReadFixed64()
		if err != nil {
			return "invalid fixed64"
		}
		return fmt.Sprintf("0x%016x (%g)", v, math.Float64frombits(v))
	default:
		if printable(f.Value) {
			return strconv.Quote(string(f.Value))
		}
		return fmt.Sprintf("[%d bytes] %s", len(f.Value), hex.EncodeToString(f.Value))
	}
}

func printable(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

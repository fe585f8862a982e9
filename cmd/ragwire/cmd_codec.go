package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danmuck/ragwire/internal/graphrag"
	"github.com/danmuck/ragwire/internal/protocol/frame"
	"github.com/danmuck/ragwire/internal/protocol/wire"
	"github.com/danmuck/ragwire/internal/render"
)

const defaultMaxMessageBytes = 4 << 20

type streamMode int

const (
	streamSingle streamMode = iota
	streamFramed
	streamDelimited
)

func modeFromFlags(cmd *cobra.Command) streamMode {
	framed, _ := cmd.Flags().GetBool("framed")
	delimited, _ := cmd.Flags().GetBool("delimited")
	switch {
	case framed:
		return streamFramed
	case delimited:
		return streamDelimited
	default:
		return streamSingle
	}
}

func addStreamFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("framed", false, "gRPC length-prefixed framing (1 flag byte, 4 byte length)")
	cmd.Flags().Bool("delimited", false, "Varint length-delimited message stream")
	cmd.Flags().Int("max-bytes", defaultMaxMessageBytes, "Largest accepted message")
	cmd.MarkFlagsMutuallyExclusive("framed", "delimited")
}

func maxBytesFlag(cmd *cobra.Command) (int, error) {
	n, err := cmd.Flags().GetInt("max-bytes")
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("--max-bytes must be positive, got %d", n)
	}
	return n, nil
}

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <message>",
		Short: "Encode a JSON, YAML or CBOR message to protobuf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := graphrag.NewRegistry(nil).Lookup(args[0])
			if err != nil {
				return err
			}
			maxBytes, err := maxBytesFlag(cmd)
			if err != nil {
				return err
			}
			in, _ := cmd.Flags().GetString("in")
			formatFlag, _ := cmd.Flags().GetString("format")
			format, err := formatFor(formatFlag, in, render.JSON)
			if err != nil {
				return err
			}
			if format == render.Protobuf {
				return errors.New("encode input must be json, yaml or cbor")
			}

			data, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			msg := entry.New()
			if err := render.Unmarshal(format, data, msg); err != nil {
				return fmt.Errorf("parse %s input: %w", format, err)
			}
			out, err := entry.Encode(msg)
			if err != nil {
				return err
			}
			return writeMessage(cmd.OutOrStdout(), modeFromFlags(cmd), out, maxBytes)
		},
	}
	cmd.Flags().String("in", "-", "Input file, - for stdin")
	cmd.Flags().String("format", "", "Input format: json, yaml or cbor (default from extension, else json)")
	addStreamFlags(cmd)
	return cmd
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <message>",
		Short: "Decode protobuf into JSON, YAML, CBOR or canonical protobuf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := graphrag.NewRegistry(nil).Lookup(args[0])
			if err != nil {
				return err
			}
			formatFlag, _ := cmd.Flags().GetString("format")
			format, err := render.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			in, _ := cmd.Flags().GetString("in")
			maxBytes, err := maxBytesFlag(cmd)
			if err != nil {
				return err
			}
			mode := modeFromFlags(cmd)

			r, closeFn, err := openInput(cmd, in)
			if err != nil {
				return err
			}
			defer closeFn()
			payloads, err := readPayloads(r, mode, maxBytes)
			if err != nil {
				return err
			}

			msgs := make([]any, 0, len(payloads))
			for i, p := range payloads {
				m, err := entry.Decode(p)
				if err != nil {
					return fmt.Errorf("message %d: %w", i, err)
				}
				msgs = append(msgs, m)
			}

			w := cmd.OutOrStdout()
			if format == render.Protobuf {
				for _, m := range msgs {
					data, err := entry.Encode(m)
					if err != nil {
						return err
					}
					if err := writeMessage(w, mode, data, maxBytes); err != nil {
						return err
					}
				}
				return nil
			}

			var v any = msgs
			if mode == streamSingle {
				v = msgs[0]
			}
			out, err := render.Marshal(format, v)
			if err != nil {
				return err
			}
			if _, err := w.Write(out); err != nil {
				return err
			}
			if format == render.JSON {
				_, err = io.WriteString(w, "\n")
			}
			return err
		},
	}
	cmd.Flags().String("in", "-", "Input file, - for stdin")
	cmd.Flags().String("format", "json", "Output format: json, yaml, cbor or protobuf")
	addStreamFlags(cmd)
	return cmd
}

func readPayloads(r io.Reader, mode streamMode, maxBytes int) ([][]byte, error) {
	switch mode {
	case streamFramed:
		var out [][]byte
		for {
			f, err := frame.ReadFrame(r, frame.Limits{MaxPayloadBytes: maxBytes})
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			if err != nil {
				return nil, err
			}
			if !f.Trailer() {
				out = append(out, f.Payload)
			}
		}
	case streamDelimited:
		var out [][]byte
		for {
			msg, err := wire.ReadDelimited(r, maxBytes)
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			if err != nil {
				return nil, err
			}
			out = append(out, msg)
		}
	default:
		data, err := io.ReadAll(io.LimitReader(r, int64(maxBytes)+1))
		if err != nil {
			return nil, err
		}
		if len(data) > maxBytes {
			return nil, wire.ErrMessageTooLarge
		}
		return [][]byte{data}, nil
	}
}

func writeMessage(w io.Writer, mode streamMode, data []byte, maxBytes int) error {
	switch mode {
	case streamFramed:
		return frame.WriteFrame(w, frame.Frame{Payload: data}, frame.Limits{MaxPayloadBytes: maxBytes})
	case streamDelimited:
		return wire.WriteDelimited(w, data)
	default:
		_, err := w.Write(data)
		return err
	}
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	r, closeFn, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	return io.ReadAll(r)
}

// formatFor resolves an explicit format flag, then the file extension.
func formatFor(flag, path string, fallback render.Format) (render.Format, error) {
	if strings.TrimSpace(flag) != "" {
		return render.ParseFormat(flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return render.JSON, nil
	case ".yaml", ".yml":
		return render.YAML, nil
	case ".cbor":
		return render.CBOR, nil
	case ".pb", ".bin":
		return render.Protobuf, nil
	default:
		return fallback, nil
	}
}

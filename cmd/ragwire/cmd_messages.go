package main

import (
	"github.com/spf13/cobra"

	"github.com/danmuck/ragwire/internal/graphrag"
	"github.com/danmuck/ragwire/internal/render"
)

func newMessagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages [name]",
		Short: "List message types, or the field table of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatFlag, _ := cmd.Flags().GetString("format")
			format, err := render.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			registry := graphrag.NewRegistry(nil)

			var v any = map[string]any{"messages": registry.Names()}
			if len(args) == 1 {
				entry, err := registry.Lookup(args[0])
				if err != nil {
					return err
				}
				v = map[string]any{"name": entry.Name, "fields": entry.Fields}
			}
			out, err := render.Marshal(format, v)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().String("format", "yaml", "Output format: yaml or json")
	return cmd
}

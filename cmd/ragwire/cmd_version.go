package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/ragwire/internal/gateway"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": gateway.Version})
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ragwire version %s\n", gateway.Version)
			return err
		},
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/ragwire/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write or check gateway configuration files",
	}
	cmd.AddCommand(newConfigTemplateCmd(), newConfigValidateCmd())
	return cmd
}

func newConfigTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template [path]",
		Short: "Print a config template, or write it to path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			if len(args) == 0 {
				tmpl, err := config.Template(kind)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), tmpl)
				return err
			}
			force, _ := cmd.Flags().GetBool("force")
			if err := config.WriteTemplate(args[0], kind, force); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return err
		},
	}
	cmd.Flags().String("kind", "gateway", "Template kind")
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>",
		Short: "Load and validate a gateway config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadGatewayConfig(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok name=%s addr=%s pool.capacity=%d limits.max_body_bytes=%d\n",
				cfg.Name, cfg.Addr, cfg.Pool.Capacity, cfg.Limits.MaxBodyBytes)
			return err
		},
	}
}

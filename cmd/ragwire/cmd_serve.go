package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/danmuck/ragwire/internal/gateway"
	"github.com/danmuck/ragwire/internal/observability"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP transcoding gateway",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			observability.InitLogger("ragwire", zerolog.GlobalLevel())

			path, _ := cmd.Flags().GetString("config")
			cfg, err := loadGatewayConfig(path)
			if err != nil {
				return err
			}
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.Addr = addr
			}
			log.Info().Str("path", path).Str("name", cfg.Name).Msg("loaded gateway config")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return gateway.New(cfg).Serve(ctx)
		},
	}
	cmd.Flags().String("config", "", "Gateway TOML config; defaults apply to missing keys")
	cmd.Flags().String("addr", "", "Listen address, overrides config and RAGWIRE_ADDR")
	return cmd
}

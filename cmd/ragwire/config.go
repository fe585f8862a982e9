package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/danmuck/ragwire/internal/config"
)

const envGatewayAddr = "RAGWIRE_ADDR"

// loadGatewayConfig is the one loader behind serve and config validate:
// the file (if any) over defaults, then RAGWIRE_ADDR.
func loadGatewayConfig(path string) (config.GatewayConfig, error) {
	cfg := config.DefaultGatewayConfig()
	if path != "" {
		loaded, err := config.LoadGatewayConfig(path)
		if err != nil {
			return config.GatewayConfig{}, fmt.Errorf("load gateway config: %w", err)
		}
		cfg = loaded
	}

	if addr := strings.TrimSpace(os.Getenv(envGatewayAddr)); addr != "" {
		cfg.Addr = addr
	}
	if err := config.ValidateGatewayConfig(cfg); err != nil {
		return config.GatewayConfig{}, err
	}
	return cfg, nil
}

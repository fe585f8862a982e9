package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/danmuck/ragwire/internal/protocol/frame"
	"github.com/danmuck/ragwire/internal/protocol/wire"
)

type GatewayConfig struct {
	Name        string       `toml:"name"`
	Addr        string       `toml:"addr"`
	CorsOrigins []string     `toml:"cors_origins"`
	Pool        PoolConfig   `toml:"pool"`
	Limits      LimitsConfig `toml:"limits"`
}

// PoolConfig bounds the shared encode buffer pool.
type PoolConfig struct {
	Capacity int `toml:"capacity"`
	// MaxRetained of zero turns buffer reuse off.
	MaxRetained    int `toml:"max_retained"`
	MaxBufferBytes int `toml:"max_buffer_bytes"`
}

type LimitsConfig struct {
	// MaxBodyBytes caps request bodies on encode and decode routes.
	MaxBodyBytes int64 `toml:"max_body_bytes"`
	// MaxFrameBytes caps a single gRPC message frame payload.
	MaxFrameBytes int `toml:"max_frame_bytes"`
}

func DefaultGatewayConfig() GatewayConfig {
	opts := wire.DefaultPoolOptions()
	return GatewayConfig{
		Name: "ragwire",
		Addr: ":9400",
		Pool: PoolConfig{
			Capacity:       opts.Capacity,
			MaxRetained:    opts.MaxRetained,
			MaxBufferBytes: opts.MaxBufferBytes,
		},
		Limits: LimitsConfig{
			MaxBodyBytes:  8 << 20,
			MaxFrameBytes: frame.DefaultLimits().MaxPayloadBytes,
		},
	}
}

// LoadGatewayConfig decodes path over DefaultGatewayConfig. Keys the file
// leaves out keep their defaults; keys it sets, blanks and zeros included,
// are kept as written and must validate. Unknown keys are rejected.
func LoadGatewayConfig(path string) (GatewayConfig, error) {
	cfg := DefaultGatewayConfig()
	if err := loadToml(path, &cfg); err != nil {
		return GatewayConfig{}, err
	}
	cfg.Name = strings.TrimSpace(cfg.Name)
	cfg.Addr = strings.TrimSpace(cfg.Addr)
	if err := ValidateGatewayConfig(cfg); err != nil {
		return GatewayConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) && len(strict.Errors) > 0 {
			return fmt.Errorf("config parse failed (%s): unknown key %q", path, strings.Join(strict.Errors[0].Key(), "."))
		}
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateGatewayConfig(cfg GatewayConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("gateway config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("gateway config missing addr")
	}
	for i, origin := range cfg.CorsOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("cors_origins[%d] is empty", i)
		}
	}
	if err := ValidatePool(cfg.Pool); err != nil {
		return fmt.Errorf("pool invalid: %w", err)
	}
	if cfg.Limits.MaxBodyBytes <= 0 {
		return fmt.Errorf("limits.max_body_bytes must be positive")
	}
	if cfg.Limits.MaxFrameBytes <= 0 {
		return fmt.Errorf("limits.max_frame_bytes must be positive")
	}
	if int64(cfg.Limits.MaxFrameBytes) > cfg.Limits.MaxBodyBytes {
		return fmt.Errorf("limits.max_frame_bytes exceeds max_body_bytes")
	}
	return nil
}

func ValidatePool(cfg PoolConfig) error {
	if cfg.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive")
	}
	if cfg.MaxRetained < 0 {
		return fmt.Errorf("max_retained must not be negative")
	}
	if cfg.MaxBufferBytes < cfg.Capacity {
		return fmt.Errorf("max_buffer_bytes below capacity")
	}
	return nil
}

func (c GatewayConfig) PoolOptions() wire.PoolOptions {
	return wire.PoolOptions{
		Capacity:       c.Pool.Capacity,
		MaxRetained:    c.Pool.MaxRetained,
		MaxBufferBytes: c.Pool.MaxBufferBytes,
	}
}

func (c GatewayConfig) FrameLimits() frame.Limits {
	return frame.Limits{MaxPayloadBytes: c.Limits.MaxFrameBytes}
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/ragwire/internal/config"
	"github.com/danmuck/ragwire/internal/testutil/testlog"
)

func TestLoadGatewayConfigDefaultsAndOverrides(t *testing.T) {
	testlog.Start(t)
	t.Setenv(envGatewayAddr, "")

	path := filepath.Join(t.TempDir(), "gateway.toml")
	body := "addr = \"127.0.0.1:9500\"\n[pool]\nmax_retained = 0\n[limits]\nmax_frame_bytes = 1024\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := loadGatewayConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	def := config.DefaultGatewayConfig()
	if cfg.Addr != "127.0.0.1:9500" || cfg.Name != def.Name {
		t.Fatalf("unexpected identity: %+v", cfg)
	}
	if cfg.Pool.MaxRetained != 0 {
		t.Fatalf("explicit zero max_retained should be kept, got %d", cfg.Pool.MaxRetained)
	}
	if cfg.Pool.Capacity != def.Pool.Capacity || cfg.Limits.MaxBodyBytes != def.Limits.MaxBodyBytes {
		t.Fatalf("undefined keys should keep defaults: %+v", cfg)
	}
	if cfg.Limits.MaxFrameBytes != 1024 {
		t.Fatalf("max_frame_bytes=%d", cfg.Limits.MaxFrameBytes)
	}
}

func TestLoadGatewayConfigEnvAndErrors(t *testing.T) {
	testlog.Start(t)
	t.Setenv(envGatewayAddr, ":9999")

	cfg, err := loadGatewayConfig("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Fatalf("expected env addr, got %q", cfg.Addr)
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("adr = \":1\"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadGatewayConfig(path); err == nil {
		t.Fatalf("expected unknown key error")
	}

	if err := os.WriteFile(path, []byte("[pool]\ncapacity = -1\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadGatewayConfig(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestServeAndValidateAgreeOnConfigFiles(t *testing.T) {
	testlog.Start(t)
	t.Setenv(envGatewayAddr, "")

	cases := []struct {
		name string
		body string
		ok   bool
	}{
		{"partial", "addr = \"127.0.0.1:9500\"\n", true},
		{"unknown key", "bogus = 1\n", false},
		{"blank addr", "addr = \"\"\n", false},
		{"zero capacity", "[pool]\ncapacity = 0\n", false},
	}
	for _, tc := range cases {
		path := filepath.Join(t.TempDir(), "gateway.toml")
		if err := os.WriteFile(path, []byte(tc.body), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		_, loadErr := loadGatewayConfig(path)
		_, validateErr := run(t, nil, "config", "validate", path)
		if (loadErr == nil) != tc.ok || (validateErr == nil) != tc.ok {
			t.Fatalf("%s: load err=%v validate err=%v, want ok=%v", tc.name, loadErr, validateErr, tc.ok)
		}
	}
}

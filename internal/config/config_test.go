package config

import (
	"testing"
)

func TestNewServerConfigDefaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")

	cfg, err := NewServerConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Environment != "dev" {
		t.Errorf("expected default environment dev, got %s", cfg.Environment)
	}
	if !cfg.MetricsEnabled {
		t.Error("expected metrics to be enabled by default")
	}
	if !cfg.ResetEnabled() {
		t.Error("expected reset to be enabled in dev")
	}
}

func TestValidateConfig(t *testing.T) {
	valid := func() ServerEnvironment {
		return ServerEnvironment{
			Environment:        "prod",
			Port:               8080,
			MaxRequestBodySize: 1024,
			StoreBackend:       StoreBackendPostgres,
			DatabaseURL:        "postgres://localhost/subway",
			DBMaxConnections:   4,
		}
	}

	tests := []struct {
		name    string
		modify  func(*ServerEnvironment)
		wantErr bool
	}{
		{"valid", func(c *ServerEnvironment) {}, false},
		{"bad port", func(c *ServerEnvironment) { c.Port = 0 }, true},
		{"bad environment", func(c *ServerEnvironment) { c.Environment = "qa" }, true},
		{"bad store backend", func(c *ServerEnvironment) { c.StoreBackend = "redis" }, true},
		{"postgres without url", func(c *ServerEnvironment) { c.DatabaseURL = "" }, true},
		{"memory without url", func(c *ServerEnvironment) { c.StoreBackend = StoreBackendMemory; c.DatabaseURL = "" }, false},
		{"min conns above max", func(c *ServerEnvironment) { c.DBMinConnections = 5 }, true},
		{"zero body size", func(c *ServerEnvironment) { c.MaxRequestBodySize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			err := validateConfig(&cfg)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestResetEnabled(t *testing.T) {
	for env, want := range map[string]bool{"dev": true, "test": true, "staging": false, "prod": false} {
		cfg := ServerEnvironment{Environment: env}
		if got := cfg.ResetEnabled(); got != want {
			t.Errorf("%s: got %v, want %v", env, got, want)
		}
	}
}

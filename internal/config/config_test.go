package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Service.Name != "grievance-analyzer" {
		t.Errorf("expected default name, got %q", cfg.Service.Name)
	}
	if cfg.Service.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Service.Port)
	}
	if cfg.Model.Dir != "models" {
		t.Errorf("expected default model dir, got %q", cfg.Model.Dir)
	}
	if cfg.Model.MaxFeatures != 1000 {
		t.Errorf("expected default max features 1000, got %d", cfg.Model.MaxFeatures)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Logging.Level)
	}
	if cfg.RateLimit.RPS != 100 {
		t.Errorf("expected default rps 100, got %d", cfg.RateLimit.RPS)
	}
	if cfg.RateLimit.Burst != cfg.RateLimit.RPS {
		t.Errorf("expected burst to default to rps, got %d", cfg.RateLimit.Burst)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
service:
  name: test-analyzer
  port: 9000
  read_timeout: 5s
model:
  dir: /tmp/models
  max_features: 500
logging:
  level: debug
rate_limit:
  enabled: true
  rps: 10
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Service.Name != "test-analyzer" {
		t.Errorf("expected name test-analyzer, got %q", cfg.Service.Name)
	}
	if cfg.Service.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Service.Port)
	}
	if cfg.Service.ReadTimeout.Seconds() != 5 {
		t.Errorf("expected read timeout 5s, got %s", cfg.Service.ReadTimeout)
	}
	if cfg.Model.MaxFeatures != 500 {
		t.Errorf("expected max features 500, got %d", cfg.Model.MaxFeatures)
	}
	if !cfg.RateLimit.Enabled {
		t.Error("expected rate limiting enabled")
	}
	if cfg.RateLimit.Burst != 10 {
		t.Errorf("expected burst to default to rps 10, got %d", cfg.RateLimit.Burst)
	}
	// Unset fields still get defaults.
	if cfg.Service.Version != "1.0.0" {
		t.Errorf("expected default version, got %q", cfg.Service.Version)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ANALYZER_PORT", "8081")
	t.Setenv("MODEL_DIR", "/data/models")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Service.Port != 8081 {
		t.Errorf("expected port 8081 from env, got %d", cfg.Service.Port)
	}
	if cfg.Model.Dir != "/data/models" {
		t.Errorf("expected model dir from env, got %q", cfg.Model.Dir)
	}
	if !cfg.Service.Debug {
		t.Error("expected debug true from env")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level warn from env, got %q", cfg.Logging.Level)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("service:\n  port: 9000\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("ANALYZER_PORT", "7000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Service.Port != 7000 {
		t.Errorf("expected env to override file, got %d", cfg.Service.Port)
	}
}

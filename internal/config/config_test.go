package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "MCP_HOST", "PORT", "ADZUNA_APP_ID", "ADZUNA_APP_KEY", "ADZUNA_BASE_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Host != "0.0.0.0" || cfg.Port != "8080" {
		t.Errorf("listen defaults = %s:%s", cfg.Host, cfg.Port)
	}
	if cfg.Adzuna.AppID != "" || cfg.Adzuna.AppKey != "" {
		t.Errorf("credentials should default to empty, got %+v", cfg.Adzuna)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MCP_HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("ADZUNA_APP_ID", "id-123")
	t.Setenv("ADZUNA_APP_KEY", "key-456")
	t.Setenv("ADZUNA_BASE_URL", "http://localhost:8181")

	cfg := Load()

	if cfg.LogLevel != "debug" || cfg.Host != "127.0.0.1" || cfg.Port != "9090" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Adzuna.AppID != "id-123" || cfg.Adzuna.AppKey != "key-456" {
		t.Errorf("credentials not read: %+v", cfg.Adzuna)
	}
	if cfg.Adzuna.BaseURL != "http://localhost:8181" {
		t.Errorf("base url not read: %q", cfg.Adzuna.BaseURL)
	}
}

func TestLoadMissingCredentialsIsNotAnError(t *testing.T) {
	t.Setenv("ADZUNA_APP_ID", "")
	t.Setenv("ADZUNA_APP_KEY", "")

	// absence of credentials must not prevent startup
	cfg := Load()
	if cfg.Port == "" {
		t.Fatal("config should still be populated")
	}
}

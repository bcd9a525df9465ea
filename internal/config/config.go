package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080
	Adzuna   struct {
		AppID   string
		AppKey  string
		BaseURL string
	} // Adzuna API credentials
}

// Load populates config from a best-effort .env file plus environment
// variables. Adzuna credentials are deliberately not validated: requests with
// empty credentials proceed and the upstream rejection degrades to an empty
// result set.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "8080",
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.Adzuna.AppID = os.Getenv("ADZUNA_APP_ID")
	cfg.Adzuna.AppKey = os.Getenv("ADZUNA_APP_KEY")
	cfg.Adzuna.BaseURL = os.Getenv("ADZUNA_BASE_URL")

	return cfg
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port       int
	ClientURL  string
	Env        string
	StaticDir  string
}

type ProviderConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:      5000,
			ClientURL: "http://localhost:3000",
			Env:       "development",
		},
		Provider: ProviderConfig{
			BaseURL: "https://generativelanguage.googleapis.com/v1beta/openai",
			Model:   "gemini-2.0-flash",
			Timeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a .env file (if present) and environment
// variables. The provider API key is required; Load fails without it so the
// process exits at startup rather than on the first request.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
	return loadWith(os.Getenv)
}

func loadWith(getenv func(string) string) (Config, error) {
	cfg := defaults()

	if v := getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = p
	}
	if v := getenv("CLIENT_URL"); v != "" {
		cfg.Server.ClientURL = v
	}
	if v := getenv("ENV"); v != "" {
		cfg.Server.Env = strings.ToLower(v)
	}
	if v := getenv("STATIC_DIR"); v != "" {
		cfg.Server.StaticDir = v
	}
	if v := getenv("PROVIDER_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := getenv("PROVIDER_MODEL"); v != "" {
		cfg.Provider.Model = v
	}
	if v := getenv("PROVIDER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PROVIDER_TIMEOUT %q: %w", v, err)
		}
		cfg.Provider.Timeout = d
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}

	cfg.Provider.APIKey = getenv("PROVIDER_API_KEY")
	if cfg.Provider.APIKey == "" {
		// Accept the legacy variable name used by earlier deployments.
		cfg.Provider.APIKey = getenv("GEMINI_API_KEY")
	}
	if cfg.Provider.APIKey == "" {
		return Config{}, fmt.Errorf("missing required config: provider API key. Set PROVIDER_API_KEY (or GEMINI_API_KEY) in the environment or .env file")
	}

	return cfg, nil
}

// Production reports whether the server should serve static client assets.
func (c ServerConfig) Production() bool {
	return c.Env == "production" && c.StaticDir != ""
}

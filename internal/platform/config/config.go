// Package config resolves client configuration from defaults, an optional
// YAML file, a .env file, and environment variables, in that precedence
// order. main stays lean; everything else receives a Config by value.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries everything the client needs to reach the backend and
// persist its local state.
type Config struct {
	// BaseURL is the root of the storefront API, without a trailing slash.
	BaseURL string

	// ConnectTimeout bounds dialing and TLS handshake per request.
	ConnectTimeout time.Duration

	// CallTimeout bounds a whole request/response exchange.
	CallTimeout time.Duration

	// StoragePath is the sqlite file backing session state and cookies.
	StoragePath string

	Debug bool
}

// fileConfig is the YAML shape. Durations are strings ("10s", "1m") parsed
// with time.ParseDuration; absent fields leave the defaults untouched.
type fileConfig struct {
	BaseURL        string `yaml:"base_url"`
	ConnectTimeout string `yaml:"connect_timeout"`
	CallTimeout    string `yaml:"call_timeout"`
	StoragePath    string `yaml:"storage_path"`
	Debug          *bool  `yaml:"debug"`
}

// Default returns the built-in configuration used when nothing overrides it.
func Default() Config {
	return Config{
		BaseURL:        "https://api.tienda.example.com",
		ConnectTimeout: 10 * time.Second,
		CallTimeout:    30 * time.Second,
		StoragePath:    defaultStoragePath(),
	}
}

// Load builds a Config. path may be empty, in which case only defaults,
// .env, and environment variables apply. A missing .env is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		if err := fc.apply(&cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	_ = godotenv.Load()
	applyEnv(&cfg)

	if cfg.BaseURL == "" {
		return Config{}, fmt.Errorf("config: base URL is required")
	}
	return cfg, nil
}

func (fc fileConfig) apply(cfg *Config) error {
	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.StoragePath != "" {
		cfg.StoragePath = fc.StoragePath
	}
	if fc.ConnectTimeout != "" {
		d, err := time.ParseDuration(fc.ConnectTimeout)
		if err != nil {
			return fmt.Errorf("connect_timeout: %w", err)
		}
		cfg.ConnectTimeout = d
	}
	if fc.CallTimeout != "" {
		d, err := time.ParseDuration(fc.CallTimeout)
		if err != nil {
			return fmt.Errorf("call_timeout: %w", err)
		}
		cfg.CallTimeout = d
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TIENDA_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TIENDA_STORAGE_PATH"); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv("TIENDA_CONNECT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ConnectTimeout = d
		}
	}
	if v := os.Getenv("TIENDA_CALL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.CallTimeout = d
		}
	}
	if os.Getenv("TIENDA_DEBUG") == "true" {
		cfg.Debug = true
	}
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tienda.db"
	}
	return filepath.Join(home, ".tienda", "tienda.db")
}

// Package config builds the explicit configuration struct threaded into the
// completion gateway, the orchestration loop, and the HTTP server. Sources,
// in increasing precedence: built-in defaults, an optional YAML file, and
// TOOLCHAT_* / GEMINI_API_KEY environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries every runtime knob. Constructed once at startup; components
// receive values, not ambient globals.
type Config struct {
	// ListenAddr is the HTTP bind address, e.g. ":8080".
	ListenAddr string `yaml:"listen_addr"`
	// Model is the completion-service model identifier.
	Model string `yaml:"model"`
	// BaseURL is the completion-service endpoint root.
	BaseURL string `yaml:"base_url"`
	// APIKey authenticates against the completion service. Environment only,
	// never read from the config file.
	APIKey string `yaml:"-"`
	// MaxToolCalls bounds tool invocations within one orchestration run.
	MaxToolCalls int `yaml:"max_tool_calls"`
	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// CompletionTimeout bounds a single outbound completion-service call.
	// The loop itself has no internal deadline; its bound is MaxToolCalls.
	// Environment only (TOOLCHAT_COMPLETION_TIMEOUT, Go duration syntax).
	CompletionTimeout time.Duration `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ListenAddr:        ":8080",
		Model:             "gemini-2.0-flash",
		BaseURL:           "https://generativelanguage.googleapis.com",
		MaxToolCalls:      5,
		LogLevel:          "info",
		CompletionTimeout: 60 * time.Second,
	}
}

// Load builds the effective configuration. path may be empty (no file).
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.MaxToolCalls <= 0 {
		return Config{}, fmt.Errorf("max_tool_calls must be positive, got %d", cfg.MaxToolCalls)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TOOLCHAT_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("TOOLCHAT_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("TOOLCHAT_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("TOOLCHAT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TOOLCHAT_MAX_TOOL_CALLS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxToolCalls = n
		}
	}
	if v := os.Getenv("TOOLCHAT_COMPLETION_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.CompletionTimeout = d
		}
	}
}

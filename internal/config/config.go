// Package config provides configuration loading for launchpadd.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the full launchpadd configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Storage StorageConfig `koanf:"storage"`
	GenAI   GenAIConfig   `koanf:"genai"`
	Plan    PlanConfig    `koanf:"plan"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// StorageConfig configures where project data lives.
type StorageConfig struct {
	DataDir string `koanf:"data_dir"`
}

// GenAIConfig configures the generative model provider.
type GenAIConfig struct {
	// APIKey is the provider credential. Also settable via GEMINI_API_KEY.
	APIKey string `koanf:"api_key"`

	// BaseURL overrides the provider endpoint, for tests and proxies.
	BaseURL string `koanf:"base_url"`

	TextModel  string `koanf:"text_model"`
	ImageModel string `koanf:"image_model"`
	TTSModel   string `koanf:"tts_model"`

	Timeout time.Duration `koanf:"timeout"`
}

// PlanConfig configures the one-click full-plan chain.
type PlanConfig struct {
	// StepDelay is the pause between chain steps, to stay under the
	// provider's request-rate limits.
	StepDelay time.Duration `koanf:"step_delay"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DefaultDataDir returns the default project data directory,
// ~/.local/share/launchpad.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "launchpad"), nil
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) error {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8344
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	if cfg.Storage.DataDir == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return err
		}
		cfg.Storage.DataDir = dir
	}

	if cfg.GenAI.Timeout == 0 {
		cfg.GenAI.Timeout = 2 * time.Minute
	}

	if cfg.Plan.StepDelay == 0 {
		cfg.Plan.StepDelay = 2 * time.Second
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	return nil
}

// Validate checks config for errors. A missing API key is not an error
// here: the provider client reports it per call, so read-only commands
// still work without a credential.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be > 0")
	}
	if c.Storage.DataDir == "" {
		return fmt.Errorf("storage data_dir cannot be empty")
	}
	if c.GenAI.Timeout <= 0 {
		return fmt.Errorf("genai timeout must be > 0")
	}
	if c.Plan.StepDelay < 0 {
		return fmt.Errorf("plan step_delay cannot be negative")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging format must be 'json' or 'console', got %q", c.Logging.Format)
	}
	return nil
}

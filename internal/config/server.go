// Package config loads application configuration from YAML files.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "tutorial-hub/pkg/config"
)

// Duration wraps time.Duration so YAML files can use Go duration strings
// such as "30s" or "1h30m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// ServerConfig represents HTTP server configuration.
type ServerConfig struct {
	Server struct {
		Addr            string   `yaml:"addr"`
		ReadTimeout     Duration `yaml:"read_timeout"`
		WriteTimeout    Duration `yaml:"write_timeout"`
		IdleTimeout     Duration `yaml:"idle_timeout"`
		HandlerTimeout  Duration `yaml:"handler_timeout"`
		ShutdownTimeout Duration `yaml:"shutdown_timeout"`
		MaxBodyBytes    int64    `yaml:"max_body_bytes"`
	} `yaml:"server"`
}

// DefaultServerConfig returns a ServerConfig with production defaults.
func DefaultServerConfig() *ServerConfig {
	var cfg ServerConfig
	cfg.Server.Addr = ":8080"
	cfg.Server.ReadTimeout = Duration(5 * time.Second)
	cfg.Server.WriteTimeout = Duration(10 * time.Second)
	cfg.Server.IdleTimeout = Duration(120 * time.Second)
	cfg.Server.HandlerTimeout = Duration(10 * time.Second)
	cfg.Server.ShutdownTimeout = Duration(10 * time.Second)
	cfg.Server.MaxBodyBytes = 1 << 20 // 1MiB
	return &cfg
}

// LoadServerConfig loads server configuration from a YAML file.
// Missing fields fall back to defaults; a missing file returns the defaults
// unchanged so the binary runs without any config file.
// The path parameter is expected to come from a trusted source (command-line
// argument or hardcoded default).
func LoadServerConfig(path string) (*ServerConfig, error) {
	cfg := DefaultServerConfig()

	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyServerDefaults(cfg)

	if err := validateServerConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// applyServerDefaults fills zero-valued fields with defaults so a partial
// YAML file only overrides what it names.
func applyServerDefaults(cfg *ServerConfig) {
	def := DefaultServerConfig()
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = def.Server.Addr
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = def.Server.ReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = def.Server.WriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = def.Server.IdleTimeout
	}
	if cfg.Server.HandlerTimeout == 0 {
		cfg.Server.HandlerTimeout = def.Server.HandlerTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = def.Server.MaxBodyBytes
	}
}

// validateServerConfig validates the loaded configuration.
func validateServerConfig(cfg *ServerConfig) error {
	if cfg.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	for name, d := range map[string]Duration{
		"read_timeout":     cfg.Server.ReadTimeout,
		"write_timeout":    cfg.Server.WriteTimeout,
		"idle_timeout":     cfg.Server.IdleTimeout,
		"handler_timeout":  cfg.Server.HandlerTimeout,
		"shutdown_timeout": cfg.Server.ShutdownTimeout,
	} {
		if err := pkgconfig.ValidatePositiveDuration(d.Std()); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive")
	}
	return nil
}

// ConfigPath returns the server config file path.
// CONFIG_FILE overrides the default "config/server.yaml".
func ConfigPath() string {
	return pkgconfig.GetEnvString("CONFIG_FILE", "config/server.yaml")
}

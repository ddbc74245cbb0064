package config

import (
	"fmt"

	pkgconfig "github.com/weiawesome/pxid/pkg/config"
	"github.com/weiawesome/pxid/pkg/prefixid"
)

type Config struct {
	Server ServerConfig
	ID     IDConfig `mapstructure:"id"`
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type IDConfig struct {
	// Profile selects the rule set: permissive, strict or unbounded.
	Profile  string `mapstructure:"profile"`
	MaxBatch int    `mapstructure:"max_batch"`
}

type LogConfig struct {
	Level  string
	Pretty bool
}

var defaults = map[string]any{
	"server.host":  "0.0.0.0",
	"server.port":  8090,
	"id.profile":   prefixid.Permissive.Name,
	"id.max_batch": prefixid.MaxBatch,
	"log.level":    "info",
	"log.pretty":   false,
}

// Load reads ./config/config.yaml (optional) and the environment.
func Load() (*Config, error) {
	return LoadFrom("./config", "config")
}

// LoadFrom reads <path>/<name>.yaml (optional) and the environment.
func LoadFrom(path, name string) (*Config, error) {
	v, err := pkgconfig.Load(path, name, defaults)
	if err != nil {
		return nil, err
	}

	v.BindEnv("server.port", "PORT")
	v.BindEnv("id.profile", "ID_PROFILE")
	v.BindEnv("id.max_batch", "ID_MAX_BATCH")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if _, err := prefixid.ProfileByName(c.ID.Profile); err != nil {
		return err
	}
	if c.ID.MaxBatch < 1 || c.ID.MaxBatch > prefixid.MaxBatch {
		return fmt.Errorf("id.max_batch must be between 1 and %d, got %d", prefixid.MaxBatch, c.ID.MaxBatch)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// Profile resolves the configured id profile.
func (c *Config) Profile() prefixid.Profile {
	p, err := prefixid.ProfileByName(c.ID.Profile)
	if err != nil {
		return prefixid.Permissive
	}
	return p
}

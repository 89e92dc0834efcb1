// Package config loads the service configuration from config.toml, an
// optional config.<STUDIZE_ENV>.toml overlay, and STUDIZE_* environment
// variables.
package config

import (
	"fmt"
	"os"
	"time"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/studize/pkg/database"
	"github.com/JaimeStill/studize/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvStudizeEnv             = "STUDIZE_ENV"
	EnvStudizeShutdownTimeout = "STUDIZE_SHUTDOWN_TIMEOUT"
	EnvStudizeVersion         = "STUDIZE_VERSION"
)

var databaseEnv = &database.Env{
	Enabled:         "STUDIZE_DB_ENABLED",
	Host:            "STUDIZE_DB_HOST",
	Port:            "STUDIZE_DB_PORT",
	Name:            "STUDIZE_DB_NAME",
	User:            "STUDIZE_DB_USER",
	Password:        "STUDIZE_DB_PASSWORD",
	SSLMode:         "STUDIZE_DB_SSL_MODE",
	MaxOpenConns:    "STUDIZE_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "STUDIZE_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "STUDIZE_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "STUDIZE_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	ContainerName:    "STUDIZE_STORAGE_CONTAINER_NAME",
	ConnectionString: "STUDIZE_STORAGE_CONNECTION_STRING",
	ServiceURL:       "STUDIZE_STORAGE_SERVICE_URL",
}

// Config is the root configuration.
type Config struct {
	Server          ServerConfig         `toml:"server"`
	API             APIConfig            `toml:"api"`
	Roster          RosterConfig         `toml:"roster"`
	Analysis        AnalysisConfig       `toml:"analysis"`
	Storage         storage.Config       `toml:"storage"`
	Database        database.Config      `toml:"database"`
	Agent           gaconfig.AgentConfig `toml:"agent"`
	ShutdownTimeout string               `toml:"shutdown_timeout"`
	Version         string               `toml:"version"`
}

// Env returns the STUDIZE_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvStudizeEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. Without a config.toml, defaults and environment
// variables provide everything.
func Load() (*Config, error) {
	return LoadFile(BaseConfigFile)
}

// LoadFile is Load with an explicit base file path. The overlay is looked
// up in the working directory.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(path); err == nil {
		loaded, err := load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if overlay := overlayPath(); overlay != "" {
		o, err := load(overlay)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", overlay, err)
		}
		cfg.Merge(o)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.API.Merge(&overlay.API)
	c.Roster.Merge(&overlay.Roster)
	c.Analysis.Merge(&overlay.Analysis)
	c.Storage.Merge(&overlay.Storage)
	c.Database.Merge(&overlay.Database)
	c.Agent.Merge(&overlay.Agent)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Roster.Finalize(); err != nil {
		return fmt.Errorf("roster: %w", err)
	}
	if err := c.Analysis.Finalize(); err != nil {
		return fmt.Errorf("analysis: %w", err)
	}
	if c.Roster.Source == SourceBlob {
		if err := c.Storage.Finalize(storageEnv); err != nil {
			return fmt.Errorf("storage: %w", err)
		}
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := FinalizeAgent(&c.Agent); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	if c.Server.WriteTimeoutDuration() <= c.Analysis.TimeoutDuration() {
		return fmt.Errorf(
			"server write_timeout (%s) must exceed analysis timeout (%s)",
			c.Server.WriteTimeout, c.Analysis.Timeout,
		)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvStudizeShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvStudizeVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvStudizeEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

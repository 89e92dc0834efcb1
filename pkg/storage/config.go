package storage

import (
	"fmt"
	"os"
)

// Config holds Azure Blob Storage parameters. Either ConnectionString or
// ServiceURL must be set; with only ServiceURL the default Azure credential
// chain authenticates the client.
type Config struct {
	ContainerName    string `toml:"container_name"`
	ConnectionString string `toml:"connection_string"`
	ServiceURL       string `toml:"service_url"`
}

// Env names the environment variables that override Config fields.
type Env struct {
	ContainerName    string
	ConnectionString string
	ServiceURL       string
}

// Finalize applies defaults, environment overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	if c.ContainerName == "" {
		c.ContainerName = "rosters"
	}
	if env != nil {
		override(&c.ContainerName, env.ContainerName)
		override(&c.ConnectionString, env.ConnectionString)
		override(&c.ServiceURL, env.ServiceURL)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.ContainerName != "" {
		c.ContainerName = overlay.ContainerName
	}
	if overlay.ConnectionString != "" {
		c.ConnectionString = overlay.ConnectionString
	}
	if overlay.ServiceURL != "" {
		c.ServiceURL = overlay.ServiceURL
	}
}

func (c *Config) validate() error {
	if c.ContainerName == "" {
		return fmt.Errorf("container_name required")
	}
	if c.ConnectionString == "" && c.ServiceURL == "" {
		return fmt.Errorf("connection_string or service_url required")
	}
	return nil
}

func override(dst *string, name string) {
	if name == "" {
		return
	}
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

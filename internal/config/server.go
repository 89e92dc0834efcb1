package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

const (
	EnvServerHost              = "STUDIZE_SERVER_HOST"
	EnvServerPort              = "STUDIZE_SERVER_PORT"
	EnvServerReadTimeout       = "STUDIZE_SERVER_READ_TIMEOUT"
	EnvServerReadHeaderTimeout = "STUDIZE_SERVER_READ_HEADER_TIMEOUT"
	EnvServerWriteTimeout      = "STUDIZE_SERVER_WRITE_TIMEOUT"
	EnvServerShutdownTimeout   = "STUDIZE_SERVER_SHUTDOWN_TIMEOUT"
)

// ServerConfig holds HTTP listener settings. WriteTimeout must outlast a
// generation call, so it defaults well above the analysis timeout.
type ServerConfig struct {
	Host              string `toml:"host"`
	Port              int    `toml:"port"`
	ReadTimeout       string `toml:"read_timeout"`
	ReadHeaderTimeout string `toml:"read_header_timeout"`
	WriteTimeout      string `toml:"write_timeout"`
	ShutdownTimeout   string `toml:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	return duration(c.ReadTimeout)
}

func (c *ServerConfig) ReadHeaderTimeoutDuration() time.Duration {
	return duration(c.ReadHeaderTimeout)
}

func (c *ServerConfig) WriteTimeoutDuration() time.Duration {
	return duration(c.WriteTimeout)
}

func (c *ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return duration(c.ShutdownTimeout)
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ServerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	mergeString(&c.Host, overlay.Host)
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	mergeString(&c.ReadTimeout, overlay.ReadTimeout)
	mergeString(&c.ReadHeaderTimeout, overlay.ReadHeaderTimeout)
	mergeString(&c.WriteTimeout, overlay.WriteTimeout)
	mergeString(&c.ShutdownTimeout, overlay.ShutdownTimeout)
}

func (c *ServerConfig) loadDefaults() {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == "" {
		c.ReadTimeout = "30s"
	}
	if c.ReadHeaderTimeout == "" {
		c.ReadHeaderTimeout = "10s"
	}
	if c.WriteTimeout == "" {
		c.WriteTimeout = "5m"
	}
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
}

func (c *ServerConfig) loadEnv() {
	if v := os.Getenv(EnvServerHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv(EnvServerReadTimeout); v != "" {
		c.ReadTimeout = v
	}
	if v := os.Getenv(EnvServerReadHeaderTimeout); v != "" {
		c.ReadHeaderTimeout = v
	}
	if v := os.Getenv(EnvServerWriteTimeout); v != "" {
		c.WriteTimeout = v
	}
	if v := os.Getenv(EnvServerShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
}

func (c *ServerConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	timeouts := []struct {
		name  string
		value string
	}{
		{"read_timeout", c.ReadTimeout},
		{"read_header_timeout", c.ReadHeaderTimeout},
		{"write_timeout", c.WriteTimeout},
		{"shutdown_timeout", c.ShutdownTimeout},
	}
	for _, t := range timeouts {
		if d, err := time.ParseDuration(t.value); err != nil || d <= 0 {
			return fmt.Errorf("invalid %s: %q", t.name, t.value)
		}
	}
	return nil
}

func duration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}

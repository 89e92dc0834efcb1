package openapi

import "os"

// Config holds the document title and description.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// ConfigEnv names the environment variables that override Config fields.
type ConfigEnv struct {
	Title       string
	Description string
}

// Finalize applies defaults and environment overrides.
func (c *Config) Finalize(env *ConfigEnv) error {
	if c.Title == "" {
		c.Title = "Studize API"
	}
	if c.Description == "" {
		c.Description = "Generated insight summaries for students in the class roster."
	}
	if env != nil {
		if v := getenv(env.Title); v != "" {
			c.Title = v
		}
		if v := getenv(env.Description); v != "" {
			c.Description = v
		}
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
}

func getenv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}

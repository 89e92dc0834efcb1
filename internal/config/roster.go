package config

import (
	"fmt"
	"os"
	"time"

	"github.com/JaimeStill/studize/pkg/formatting"
)

// Roster source kinds.
const (
	SourceFile = "file"
	SourceBlob = "blob"
)

const (
	EnvRosterSource     = "STUDIZE_ROSTER_SOURCE"
	EnvRosterPath       = "STUDIZE_ROSTER_PATH"
	EnvRosterBlobKey    = "STUDIZE_ROSTER_BLOB_KEY"
	EnvRosterSheet      = "STUDIZE_ROSTER_SHEET"
	EnvRosterNameColumn = "STUDIZE_ROSTER_NAME_COLUMN"
	EnvRosterMaxSize    = "STUDIZE_ROSTER_MAX_SIZE"

	EnvAnalysisTimeout = "STUDIZE_ANALYSIS_TIMEOUT"
)

// RosterConfig locates the student workbook. Source "file" reads Path from
// disk; "blob" reads BlobKey from the storage container.
type RosterConfig struct {
	Source     string `toml:"source"`
	Path       string `toml:"path"`
	BlobKey    string `toml:"blob_key"`
	Sheet      string `toml:"sheet"`
	NameColumn string `toml:"name_column"`
	MaxSize    string `toml:"max_size"`
}

// MaxSizeBytes returns MaxSize in bytes.
func (c *RosterConfig) MaxSizeBytes() int64 {
	n, err := formatting.ParseBytes(c.MaxSize)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return n
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *RosterConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *RosterConfig) Merge(overlay *RosterConfig) {
	mergeString(&c.Source, overlay.Source)
	mergeString(&c.Path, overlay.Path)
	mergeString(&c.BlobKey, overlay.BlobKey)
	mergeString(&c.Sheet, overlay.Sheet)
	mergeString(&c.NameColumn, overlay.NameColumn)
	mergeString(&c.MaxSize, overlay.MaxSize)
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func (c *RosterConfig) loadDefaults() {
	if c.Source == "" {
		c.Source = SourceFile
	}
	if c.Path == "" {
		c.Path = "studize_test_student_data.xlsx"
	}
	if c.NameColumn == "" {
		c.NameColumn = "Name"
	}
	if c.MaxSize == "" {
		c.MaxSize = "10MB"
	}
}

func (c *RosterConfig) loadEnv() {
	if v := os.Getenv(EnvRosterSource); v != "" {
		c.Source = v
	}
	if v := os.Getenv(EnvRosterPath); v != "" {
		c.Path = v
	}
	if v := os.Getenv(EnvRosterBlobKey); v != "" {
		c.BlobKey = v
	}
	if v := os.Getenv(EnvRosterSheet); v != "" {
		c.Sheet = v
	}
	if v := os.Getenv(EnvRosterNameColumn); v != "" {
		c.NameColumn = v
	}
	if v := os.Getenv(EnvRosterMaxSize); v != "" {
		c.MaxSize = v
	}
}

func (c *RosterConfig) validate() error {
	switch c.Source {
	case SourceFile:
		if c.Path == "" {
			return fmt.Errorf("path required for file source")
		}
	case SourceBlob:
		if c.BlobKey == "" {
			return fmt.Errorf("blob_key required for blob source")
		}
	default:
		return fmt.Errorf("invalid source %q: must be %s or %s", c.Source, SourceFile, SourceBlob)
	}

	if n, err := formatting.ParseBytes(c.MaxSize); err != nil || n <= 0 {
		return fmt.Errorf("invalid max_size: %q", c.MaxSize)
	}
	return nil
}

// AnalysisConfig bounds each generation call.
type AnalysisConfig struct {
	Timeout string `toml:"timeout"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *AnalysisConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AnalysisConfig) Finalize() error {
	if c.Timeout == "" {
		c.Timeout = "2m"
	}
	if v := os.Getenv(EnvAnalysisTimeout); v != "" {
		c.Timeout = v
	}
	if d, err := time.ParseDuration(c.Timeout); err != nil || d <= 0 {
		return fmt.Errorf("invalid timeout: %q", c.Timeout)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *AnalysisConfig) Merge(overlay *AnalysisConfig) {
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

// Package config loads the tool's HCL configuration. Every field has a
// working default: the config file is optional, and a missing file is not
// an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"grimm.is/palisade/internal/brand"
)

// Config is the top-level configuration.
type Config struct {
	// Tool is the firewall command to drive. Overriding it is mainly for
	// tests and for distros that install ufw outside PATH.
	Tool string `hcl:"tool,optional"`

	// Helper is the privilege escalation helper prepended to every
	// mutating invocation when not running as root.
	Helper string `hcl:"helper,optional"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `hcl:"log_level,optional"`

	// ProfilesFile points at a YAML file of user-defined quick profiles,
	// merged over the built-in ones.
	ProfilesFile string `hcl:"profiles_file,optional"`

	History *HistoryConfig `hcl:"history,block"`
}

// HistoryConfig controls the persistent command history.
type HistoryConfig struct {
	Enabled       bool   `hcl:"enabled,optional"`
	Path          string `hcl:"path,optional"`
	RetentionDays int    `hcl:"retention_days,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Tool:         "ufw",
		Helper:       "pkexec",
		LogLevel:     "info",
		ProfilesFile: filepath.Join(brand.GetConfigDir(), "profiles.yaml"),
		History: &HistoryConfig{
			Enabled:       true,
			Path:          filepath.Join(brand.GetStateDir(), "history.db"),
			RetentionDays: 90,
		},
	}
}

// Load reads the config file at path, falling back to defaults for any
// field the file leaves unset. A missing file yields the full defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fileCfg Config
	if err := hclsimple.Decode(path, data, nil, &fileCfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.merge(&fileCfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads from the standard config file location.
func LoadDefault() (*Config, error) {
	return Load(brand.ConfigFilePath())
}

func (c *Config) merge(o *Config) {
	if o.Tool != "" {
		c.Tool = o.Tool
	}
	if o.Helper != "" {
		c.Helper = o.Helper
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.ProfilesFile != "" {
		c.ProfilesFile = o.ProfilesFile
	}
	if o.History != nil {
		// the block's zero values are meaningful for Enabled, so the
		// whole block replaces the default when present
		if o.History.Path == "" {
			o.History.Path = c.History.Path
		}
		if o.History.RetentionDays == 0 {
			o.History.RetentionDays = c.History.RetentionDays
		}
		c.History = o.History
	}
}

// Validate checks fields that would otherwise fail deep inside a command.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (want debug, info, warn or error)", c.LogLevel)
	}
	if c.Tool == "" {
		return fmt.Errorf("tool must not be empty")
	}
	return nil
}

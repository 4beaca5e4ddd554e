package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the checked directory.
const FileName = ".envchk.config"

// Config represents the envchk configuration file
type Config struct {
	Ignores IgnoresConfig `yaml:"ignores"`
}

// IgnoresConfig contains ignore rules for report entries. Entries match
// variable names either literally or as glob patterns ("AWS_*").
type IgnoresConfig struct {
	Missing []string `yaml:"missing"` // declared in the example but provided by the platform
	Extra   []string `yaml:"extra"`   // deliberately local-only variables
}

// LoadConfig loads the .envchk.config file from the specified directory
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, FileName)

	// No config file, return default config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// ShouldIgnoreMissing checks if a variable should be ignored when reporting as missing
func (c *Config) ShouldIgnoreMissing(name string) bool {
	return matchAny(c.Ignores.Missing, name)
}

// ShouldIgnoreExtra checks if a variable should be ignored when reporting as extra
func (c *Config) ShouldIgnoreExtra(name string) bool {
	return matchAny(c.Ignores.Extra, name)
}

// matchAny reports whether name matches any pattern, literally or as a
// glob. Malformed patterns never match.
func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if pattern == name {
			return true
		}
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

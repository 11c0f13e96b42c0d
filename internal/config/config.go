// Package config loads the optional lifecast.yaml runtime configuration.
// Flags always win over config values, config over builtins; a missing file
// just means defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = "lifecast.yaml"

// DefaultTimeline is the timeline used when neither flag nor config names one.
const DefaultTimeline = "prime"

// Config models lifecast.yaml.
type Config struct {
	// Timeline is the default timeline label.
	Timeline string `yaml:"timeline,omitempty"`
	// Trials is the default Monte Carlo trial count (0 skips aggregation).
	Trials int `yaml:"trials,omitempty"`
	// PackDirs lists directories scanned for content-pack files. Relative
	// paths resolve against the config file's directory.
	PackDirs []string `yaml:"pack_dirs,omitempty"`
	// LogDir, when set, enables the file logger in that directory.
	LogDir string `yaml:"log_dir,omitempty"`
}

// Default returns the builtin configuration.
func Default() Config {
	return Config{Timeline: DefaultTimeline}
}

// Load reads a config file. An empty path looks for lifecast.yaml in the
// working directory; a missing file at that default location yields Default()
// without error, while an explicitly named file must exist.
func Load(path string) (Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultFileName
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	parsed.applyDefaults()
	parsed.normalize(filepath.Dir(path))
	if err := parsed.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return parsed, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Timeline) == "" {
		c.Timeline = DefaultTimeline
	}
}

func (c *Config) normalize(base string) {
	c.Timeline = strings.TrimSpace(c.Timeline)
	c.LogDir = resolvePath(base, c.LogDir)
	kept := c.PackDirs[:0]
	for _, dir := range c.PackDirs {
		if resolved := resolvePath(base, dir); resolved != "" {
			kept = append(kept, resolved)
		}
	}
	c.PackDirs = kept
}

func (c Config) validate() error {
	if c.Trials < 0 {
		return fmt.Errorf("trials must be >= 0, got %d", c.Trials)
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

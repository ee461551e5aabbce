// Package config loads the optional devserve configuration file and the
// environment overrides layered on top of it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the devserve commands. Zero values
// mean "not set"; each command applies its own defaults afterwards.
type Config struct {
	Port    int    `toml:"port" yaml:"port"`
	Dir     string `toml:"dir" yaml:"dir"`
	Index   string `toml:"index" yaml:"index"`
	Reload  bool   `toml:"reload" yaml:"reload"`
	NoColor bool   `toml:"no_color" yaml:"no_color"`
}

// DefaultFiles are the config file names looked up in the working
// directory when no explicit path is given, in order of preference.
var DefaultFiles = []string{"devserve.toml", "devserve.yaml", "devserve.yml"}

// Load reads and decodes the config file at path. The decoder is chosen
// by extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
	return cfg, nil
}

// Discover looks for a default-named config file in dir and loads the
// first one found. A missing file is not an error; the returned Config is
// nil in that case.
func Discover(dir string) (*Config, string, error) {
	for _, name := range DefaultFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		cfg, err := Load(p)
		if err != nil {
			return nil, p, err
		}
		return cfg, p, nil
	}
	return nil, "", nil
}

// Resolve loads the explicit config file when path is given, otherwise
// discovers a default-named one in the working directory, and applies
// the environment overrides to the result. With nothing to find it
// returns an empty Config.
func Resolve(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		c, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = c
	} else if wd, err := os.Getwd(); err == nil {
		c, _, err := Discover(wd)
		if err != nil {
			return nil, err
		}
		if c != nil {
			cfg = c
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv loads .env from the working directory when present and
// overlays the PORT and DEVSERVE_DIR variables. Environment beats the
// config file; CLI arguments beat both.
func (c *Config) ApplyEnv() error {
	_ = godotenv.Load() // .env は任意

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT must be a number, got %q", v)
		}
		c.Port = p
	}
	if v := os.Getenv("DEVSERVE_DIR"); v != "" {
		c.Dir = v
	}
	return nil
}

// Package config loads the player configuration.
//
// Values are layered: the embedded defaults are decoded first, then an
// optional YAML or TOML file, then the command line flags that were set
// explicitly.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"emperror.dev/errors"
	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/playerui/pkg/component"
)

//go:embed default.yaml
var defaultYAML []byte

// Config is the player configuration.
type Config struct {
	// ID is the player id; component ids derive from it.
	ID string `yaml:"id" toml:"id"`
	// Tooltips attaches a tooltip to every labelled button.
	Tooltips bool `yaml:"tooltips" toml:"tooltips"`
	// Language selects the localization table.
	Language string `yaml:"language" toml:"language"`
	// Languages maps a language to its key → text table.
	Languages map[string]map[string]string `yaml:"languages" toml:"languages"`
	// Children are the player's top-level components.
	Children []component.ChildSpec `yaml:"children" toml:"children"`
	// Components holds player-level options per component name.
	Components map[string]component.Options `yaml:"components" toml:"components"`
	// Media is the initial media state.
	Media MediaConfig `yaml:"media" toml:"media"`
	// Debug lowers the log level to debug.
	Debug bool `yaml:"debug" toml:"debug"`
	// Log configures the logger.
	Log LogConfig `yaml:"log" toml:"log"`
}

// MediaConfig is the initial media state in seconds.
type MediaConfig struct {
	Duration    float64 `yaml:"duration" toml:"duration"`
	CurrentTime float64 `yaml:"currentTime" toml:"currentTime"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is a zerolog level name.
	Level string `yaml:"level" toml:"level"`
	// Format is "console" or "json".
	Format string `yaml:"format" toml:"format"`
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode default config")
	}
	return cfg, nil
}

// Load returns the defaults overridden by the file at path. An empty path
// loads the defaults only.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to read config %s", path)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return errors.Wrapf(err, "failed to decode config %s", path)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, c); err != nil {
			return errors.Wrapf(err, "failed to decode config %s", path)
		}
	default:
		return errors.Errorf("unsupported config format %q for %s", ext, path)
	}
	return nil
}

// Validate checks values that cannot be repaired by falling back.
func (c *Config) Validate() error {
	if c.Language != "" {
		if _, ok := c.Languages[c.Language]; !ok {
			return errors.Errorf("language %q has no table", c.Language)
		}
	}
	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
			return errors.Wrapf(err, "invalid log level %q", c.Log.Level)
		}
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return errors.Errorf("invalid log format %q", c.Log.Format)
	}
	if c.Media.Duration < 0 || c.Media.CurrentTime < 0 {
		return errors.New("media times must not be negative")
	}
	return nil
}

// ComponentOptions returns the player-level options for name.
func (c *Config) ComponentOptions(name string) component.Options {
	opts, ok := c.Components[name]
	if !ok {
		return component.Options{}
	}
	return opts.Merge()
}

// Localize translates key with the selected language table.
func (c *Config) Localize(key string) string {
	if text, ok := c.Languages[c.Language][key]; ok && text != "" {
		return text
	}
	return key
}

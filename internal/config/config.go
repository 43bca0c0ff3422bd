package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/zesterer/ir/colors"
	"github.com/zesterer/ir/internal/dump"
)

// DefaultFiles are looked up in the working directory when no config file
// is given explicitly, in this order.
var DefaultFiles = []string{"ir.toml", "ir.yaml", "ir.yml"}

// Config holds the settings of the ir command
type Config struct {
	Color     colors.Mode `toml:"color" yaml:"color"`
	Format    dump.Format `toml:"format" yaml:"format"`
	Jobs      int         `toml:"jobs" yaml:"jobs"`
	Extension string      `toml:"extension" yaml:"extension"`
	Verbosity int         `toml:"verbosity" yaml:"verbosity"`
	Summary   bool        `toml:"summary" yaml:"summary"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Color:     colors.Auto,
		Format:    dump.Text,
		Jobs:      0,
		Extension: ".ir",
		Verbosity: 0,
	}
}

// Load reads path on top of the defaults. The format is picked from the
// file extension; anything that is not YAML is read as TOML.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrapf(err, "parsing config %s", path)
		}
	default:
		meta, err := toml.Decode(string(content), cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing config %s", path)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Errorf("parsing config %s: unknown key %q", path, undecoded[0].String())
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Discover loads path when given, otherwise the first of DefaultFiles found
// in dir. With neither it returns the defaults and an empty path.
func Discover(path, dir string) (*Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}

	for _, name := range DefaultFiles {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			cfg, err := Load(candidate)
			return cfg, candidate, err
		}
	}
	return Default(), "", nil
}

// Validate reports the first unusable setting and normalises the format name
func (c *Config) Validate() error {
	if !c.Color.Valid() {
		return errors.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	format, err := dump.ParseFormat(string(c.Format))
	if err != nil {
		return err
	}
	c.Format = format
	if c.Jobs < 0 {
		return errors.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	if c.Verbosity < 0 {
		return errors.Errorf("verbosity must not be negative, got %d", c.Verbosity)
	}
	if c.Extension != "" && !strings.HasPrefix(c.Extension, ".") {
		return errors.Errorf("extension must start with a dot, got %q", c.Extension)
	}
	return nil
}

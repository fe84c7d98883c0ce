// Package config loads pumlgen settings from defaults, a pumlgen.toml file
// and PUMLGEN_* environment variables, in increasing precedence.
package config

import (
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/calumari/pumlgen/internal/errors"
	"github.com/calumari/pumlgen/internal/generator/languages"
)

// FileName is the project configuration file searched for upwards from the
// working directory.
const FileName = "pumlgen.toml"

// EnvPrefix prefixes environment overrides, e.g. PUMLGEN_OUTPUT_DIR.
const EnvPrefix = "PUMLGEN"

// Config is the effective configuration.
type Config struct {
	Languages []string       `mapstructure:"languages" toml:"languages"`
	Output    OutputConfig   `mapstructure:"output" toml:"output"`
	Indent    map[string]int `mapstructure:"indent" toml:"indent,omitempty"`
	Go        GoConfig       `mapstructure:"go" toml:"go"`
	Banner    bool           `mapstructure:"banner" toml:"banner"`
	Log       LogConfig      `mapstructure:"log" toml:"log"`
	Watch     WatchConfig    `mapstructure:"watch" toml:"watch"`

	// File is the configuration file that was read, if any.
	File string `mapstructure:"-" toml:"-"`
}

// OutputConfig selects where generated files go. An empty Dir prints to
// stdout.
type OutputConfig struct {
	Dir string `mapstructure:"dir" toml:"dir"`
}

// GoConfig holds Go generator settings.
type GoConfig struct {
	Package string `mapstructure:"package" toml:"package"`
}

// LogConfig configures the logger.
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json"`
	Level string `mapstructure:"level" toml:"level"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms"`
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, err := languages.Resolve(c.Languages); err != nil {
		return errors.Wrap(err, "languages")
	}
	for lang, n := range c.Indent {
		if _, ok := languages.Lookup(lang); !ok {
			return errors.WithHint(errors.Newf("indent.%s: unknown language", lang), "keys under [indent] are language names such as typescript")
		}
		if n < 0 {
			return errors.Newf("indent.%s must be >= 0, got %d", lang, n)
		}
	}
	if c.Watch.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}
	return nil
}

// Indents returns the indent overrides keyed by canonical language key.
func (c *Config) Indents() map[string]int {
	out := make(map[string]int, len(c.Indent))
	for name, n := range c.Indent {
		if l, ok := languages.Lookup(name); ok {
			out[l.Key] = n
		}
	}
	return out
}

// Write encodes c as TOML, suitable for a pumlgen.toml file.
func Write(w io.Writer, c *Config) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(false)
	return errors.Wrap(enc.Encode(c), "encode config")
}

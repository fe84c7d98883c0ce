package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/calumari/pumlgen/internal/errors"
)

// SetDefaults configures default values for all options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("languages", []string{"java"})
	v.SetDefault("output.dir", "")
	v.SetDefault("go.package", "model")
	v.SetDefault("banner", true)
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("watch.debounce_ms", 300)
}

// Load reads the configuration. An explicit path must exist; otherwise
// pumlgen.toml is searched for from the working directory upwards and is
// optional.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = findProjectConfig()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	c, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	c.File = path
	return c, nil
}

// LoadWithViper unmarshals and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &c, nil
}

// findProjectConfig walks up from the working directory looking for
// pumlgen.toml. It returns "" when none is found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

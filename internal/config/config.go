// Package config loads the optional .chef.toml project file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the tunables the CLI honours. The zero value does not hold
// the reference interpreter's defaults; Default and Load supply them.
type Config struct {
	MaxCallDepth  int    `toml:"max_call_depth"`
	DefaultRecipe string `toml:"default_recipe"`
	NoColor       bool   `toml:"no_color"`
}

// DefaultMaxCallDepth is applied when a loaded file omits max_call_depth
// or no file is found.
const DefaultMaxCallDepth = 64

// DefaultRecipePath is read when no recipe file argument is given and no
// config overrides it.
const DefaultRecipePath = "hello.chef"

// Default returns the configuration the CLI uses when no .chef.toml is
// present.
func Default() Config {
	return Config{
		MaxCallDepth:  DefaultMaxCallDepth,
		DefaultRecipe: DefaultRecipePath,
	}
}

// Load reads path as a TOML document. A missing file is not an error; it
// yields Default(). Any other read or decode error is returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, err
	}

	if cfg.MaxCallDepth <= 0 {
		cfg.MaxCallDepth = DefaultMaxCallDepth
	}
	if cfg.DefaultRecipe == "" {
		cfg.DefaultRecipe = DefaultRecipePath
	}

	return cfg, nil
}

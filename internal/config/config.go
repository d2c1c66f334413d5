// Package config loads the settings of the lox command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

const (
	ModeAST    = "ast"
	ModeTokens = "tokens"
)

type Config struct {
	Prompt  string `toml:"prompt"`
	History string `toml:"history"`
	Mode    string `toml:"mode"`
	Color   bool   `toml:"color"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Prompt:  "> ",
		History: filepath.Join(xdg.DataHome, "lox", ".lox_history"),
		Mode:    ModeAST,
		Color:   true,
	}
}

// Path is the default location of the configuration file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "lox", "config.toml")
}

// Load reads the file at path over the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeAST, ModeTokens:
		return nil
	default:
		return fmt.Errorf("config: mode must be %q or %q, got %q", ModeAST, ModeTokens, c.Mode)
	}
}

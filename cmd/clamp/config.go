package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/fwojciec/clamp"
)

const defaultMaxLength = 400

// Config is the persisted config file schema. Absent keys keep their
// defaults because unmarshalling writes into a prefilled struct.
type Config struct {
	MaxLength int         `toml:"max_length"`
	Theme     ThemeConfig `toml:"theme"`
}

// ThemeConfig holds ANSI color indices (0-15, or -1 for the terminal
// default).
type ThemeConfig struct {
	Body    int `toml:"body"`
	Heading int `toml:"heading"`
	Code    int `toml:"code"`
	Accent  int `toml:"accent"`
	Muted   int `toml:"muted"`
	Error   int `toml:"error"`
}

func defaultConfig() Config {
	t := clamp.DefaultTheme()
	return Config{
		MaxLength: defaultMaxLength,
		Theme: ThemeConfig{
			Body:    t.Body,
			Heading: t.Heading,
			Code:    t.Code,
			Accent:  t.Accent,
			Muted:   t.Muted,
			Error:   t.Error,
		},
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".clamp", "config.toml")
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing default file is not an error; a missing explicit
// file is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if path == "" {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) theme() clamp.Theme {
	return clamp.Theme{
		Body:    c.Theme.Body,
		Heading: c.Theme.Heading,
		Code:    c.Theme.Code,
		Accent:  c.Theme.Accent,
		Muted:   c.Theme.Muted,
		Error:   c.Theme.Error,
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// config holds the rendering defaults read from vellum.toml. Flags
// override whatever the file provides.
type config struct {
	Width  int     `toml:"width"`
	Ribbon float64 `toml:"ribbon"`
	Mode   string  `toml:"mode"`
}

const defaultConfigFile = "vellum.toml"

func defaultConfig() config {
	return config{Width: 80, Ribbon: 1.0, Mode: "pretty"}
}

// loadConfig reads path, or vellum.toml in the working directory when
// path is empty. A missing default file is not an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Width <= 0 {
		return cfg, fmt.Errorf("config %s: width must be positive, got %d", path, cfg.Width)
	}
	switch cfg.Mode {
	case "pretty", "smart", "compact", "unbounded":
	default:
		return cfg, fmt.Errorf("config %s: unknown mode %q", path, cfg.Mode)
	}
	return cfg, nil
}

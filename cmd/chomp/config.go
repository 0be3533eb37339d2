package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type config struct {
	Verbosity int `toml:"verbosity"`
}

// loadConfig reads the optional TOML config. An empty path means defaults.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

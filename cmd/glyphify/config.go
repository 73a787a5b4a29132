package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// configEnv names the environment variable holding the defaults file path
// when --config is not given.
const configEnv = "GLYPHIFY_CONFIG"

// fileConfig holds defaults read from a YAML file. Command line flags take
// precedence over every field.
type fileConfig struct {
	// Width and Height are in character cells; either disables terminal
	// size detection.
	Width    int  `yaml:"width"`
	Height   int  `yaml:"height"`
	Columns  int  `yaml:"columns"`
	Color256 bool `yaml:"color256"`
	Teletext bool `yaml:"teletext"`
	NoOpt    bool `yaml:"no_optimization"`

	Gamma      float64 `yaml:"gamma"`
	Brightness float64 `yaml:"brightness"`
	Contrast   float64 `yaml:"contrast"`
	Sharpen    float64 `yaml:"sharpen"`
	Invert     bool    `yaml:"invert"`

	Font string `yaml:"font"`
}

// loadConfig reads the defaults file at path. An empty path yields the
// zero config.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

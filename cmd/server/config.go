package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config is the optional YAML server configuration. Flags override it.
type config struct {
	Addr    string `yaml:"addr"`
	DataDir string `yaml:"data_dir"`
	KNP     struct {
		Juman []string `yaml:"juman"`
		KNP   []string `yaml:"knp"`
	} `yaml:"knp"`
}

func defaultConfig() config {
	cfg := config{
		Addr:    ":8080",
		DataDir: "data",
	}
	cfg.KNP.Juman = []string{"jumanpp"}
	cfg.KNP.KNP = []string{"knp", "-tab", "-anaphora"}
	return cfg
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

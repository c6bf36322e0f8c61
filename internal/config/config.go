package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel = "bicycle"
	DefaultWheel = "knife_edge_wheel"
)

// Config describes a model composition: which composite to build, which
// wheel kinds to mount and whether to put it on the ground or under a rider.
type Config struct {
	Model      string `yaml:"model"`
	Name       string `yaml:"name"`
	RearWheel  string `yaml:"rear_wheel"`
	FrontWheel string `yaml:"front_wheel"`
	Ground     bool   `yaml:"ground"`
	Rider      bool   `yaml:"rider"`
	Simplify   bool   `yaml:"simplify"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      DefaultModel,
		Name:       "bicycle",
		RearWheel:  DefaultWheel,
		FrontWheel: DefaultWheel,
		Simplify:   true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var wheelKinds = map[string]bool{
	"knife_edge_wheel": true,
	"toroidal_wheel":   true,
}

// Validate rejects compositions the builder cannot realize.
func (c *Config) Validate() error {
	switch c.Model {
	case "bicycle", "rolling_disc":
	default:
		return fmt.Errorf("config: unknown model %q", c.Model)
	}
	if c.Name == "" {
		return fmt.Errorf("config: model name must not be empty")
	}
	if !wheelKinds[c.RearWheel] {
		return fmt.Errorf("config: unknown rear wheel kind %q", c.RearWheel)
	}
	if !wheelKinds[c.FrontWheel] {
		return fmt.Errorf("config: unknown front wheel kind %q", c.FrontWheel)
	}
	if c.Model == "rolling_disc" && c.Rider {
		return fmt.Errorf("config: a rolling disc cannot carry a rider")
	}
	return nil
}

package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jub0bs/isolation"
)

// DefaultListen is the listen address used when the config file names none.
const DefaultListen = ":8080"

// Config holds the sample server's settings, as read from a YAML file.
type Config struct {
	Listen      string   `yaml:"listen"`
	ExemptPaths []string `yaml:"exempt_paths"`
	H2C         bool     `yaml:"h2c"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{Listen: DefaultListen}
}

// LoadConfig reads and decodes the YAML config file at path.
// An empty path yields DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func parseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
	if _, err := isolation.NewMiddleware(cfg.Isolation()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Isolation returns the middleware configuration described by cfg.
func (cfg *Config) Isolation() isolation.Config {
	return isolation.Config{ExemptPaths: cfg.ExemptPaths}
}

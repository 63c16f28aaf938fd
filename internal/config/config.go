package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig mirrors sitemapper.yaml. Pointer fields distinguish
// "not set" from an explicit zero value.
type ProjectConfig struct {
	DocumentRoot string `yaml:"document_root"`
	Gzip         *bool  `yaml:"gzip,omitempty"`
	MaxURLs      *int   `yaml:"max_urls,omitempty"`
	MaxBytes     *int64 `yaml:"max_bytes,omitempty"`
}

const (
	ConfigFileName = "sitemapper.yaml"
	EnvFileName    = ".env"
)

// Load reads the project config. path may be a directory holding
// sitemapper.yaml or the config file itself.
func Load(path string) (*ProjectConfig, error) {
	configPath := path
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		configPath = filepath.Join(path, ConfigFileName)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return &cfg, nil
}

// Validate rejects limits that no document could be built with.
func (c *ProjectConfig) Validate() error {
	if c.MaxURLs != nil && *c.MaxURLs < 1 {
		return fmt.Errorf("max_urls must be at least 1, got %d", *c.MaxURLs)
	}
	if c.MaxBytes != nil && *c.MaxBytes < 1 {
		return fmt.Errorf("max_bytes must be at least 1, got %d", *c.MaxBytes)
	}
	return nil
}

// Save writes cfg as sitemapper.yaml inside dir.
func Save(dir string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0644)
}

// LoadEnv loads the .env file in dir into the process environment.
// Variables already set are kept. A missing file is not an error.
func LoadEnv(dir string) error {
	envPath := filepath.Join(dir, EnvFileName)
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("load %s: %w", envPath, err)
	}
	return nil
}

// Package config loads project configuration from disk.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/testforge/testforge/internal/domain"
)

const (
	yamlFileName = ".testforge.yaml"
	jsonFileName = ".test-workflows-config.json"
)

// FileLoader implements domain.ConfigLoader. It reads .testforge.yaml,
// falling back to the legacy .test-workflows-config.json, and returns the
// defaults when neither exists. Keys absent from the file keep their
// default values.
type FileLoader struct{}

// New creates a FileLoader.
func New() *FileLoader { return &FileLoader{} }

func (l *FileLoader) Load(projectPath string) (domain.Config, error) {
	if cfg, found, err := l.loadYAML(filepath.Join(projectPath, yamlFileName)); found || err != nil {
		return cfg, err
	}
	if cfg, found, err := l.loadJSON(filepath.Join(projectPath, jsonFileName)); found || err != nil {
		return cfg, err
	}
	return domain.DefaultConfig(), nil
}

func (l *FileLoader) loadYAML(path string) (domain.Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Config{}, false, nil
		}
		return domain.Config{}, true, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, true, fmt.Errorf("parsing %s: %w", yamlFileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, true, fmt.Errorf("invalid %s: %w", yamlFileName, err)
	}

	return cfg, true, nil
}

func (l *FileLoader) loadJSON(path string) (domain.Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Config{}, false, nil
		}
		return domain.Config{}, true, err
	}

	cfg := domain.DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, true, fmt.Errorf("parsing %s: %w", jsonFileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, true, fmt.Errorf("invalid %s: %w", jsonFileName, err)
	}

	return cfg, true, nil
}

// Write saves a config as YAML; used by the init command to scaffold a
// project.
func Write(projectPath string, cfg domain.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(filepath.Join(projectPath, yamlFileName), data, 0o644)
}

// Package config provides configuration management for the estates toolkit.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the estates configuration.
type Config struct {
	Estates EstatesConfig `yaml:"estates"`
}

// EstatesConfig contains the main settings.
type EstatesConfig struct {
	// Workbook is the path to the estate portfolio .xlsx workbook.
	Workbook string `yaml:"workbook"`

	// Server holds the dashboard API settings.
	Server ServerConfig `yaml:"server"`

	// Rankings bounds the top-N derivations shown by the views.
	Rankings RankingsConfig `yaml:"rankings"`
}

// ServerConfig contains the dashboard API settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// RankingsConfig bounds the ranking derivations.
type RankingsConfig struct {
	TopRisks       int `yaml:"top_risks"`
	TopHotspots    int `yaml:"top_hotspots"`
	TopContractors int `yaml:"top_contractors"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Estates: EstatesConfig{
			Workbook: "estate_projects_template.xlsx",
			Server: ServerConfig{
				Addr: ":8080",
			},
			Rankings: RankingsConfig{
				TopRisks:       5,
				TopHotspots:    5,
				TopContractors: 8,
			},
		},
	}
}

// Load loads configuration from a file, applied over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Save saves the configuration to a file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FindConfig searches for a configuration file from the given path upward.
func FindConfig(startPath string) (string, error) {
	candidates := []string{
		".estates/config.yaml",
		"estates.yaml",
		"estates.yml",
	}

	dir := startPath
	for {
		for _, candidate := range candidates {
			path := filepath.Join(dir, candidate)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no estates configuration found")
}

// LoadFromDir loads configuration from the given directory, falling back to
// defaults when no config file exists.
func LoadFromDir(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// WorkbookPath returns the resolved workbook path.
func (c *Config) WorkbookPath(baseDir string) string {
	if filepath.IsAbs(c.Estates.Workbook) {
		return c.Estates.Workbook
	}
	return filepath.Join(baseDir, c.Estates.Workbook)
}

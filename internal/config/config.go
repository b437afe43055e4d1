// Package config loads the optional iconsync.yaml project file.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ScanConfig configures the template scan.
type ScanConfig struct {
	Roots []string `yaml:"roots"`
}

// FontsConfig configures the font sync stage.
type FontsConfig struct {
	StylesheetPath string `yaml:"stylesheet_path"`
	Dir            string `yaml:"dir"`
	UserAgent      string `yaml:"user_agent,omitempty"`
}

// RewriteConfig configures the icon-class rewrite tool.
type RewriteConfig struct {
	IconsDir string `yaml:"icons_dir"`
	ViewsDir string `yaml:"views_dir"`
}

// ProjectConfig is the root of iconsync.yaml.
type ProjectConfig struct {
	Scan    ScanConfig    `yaml:"scan"`
	Fonts   FontsConfig   `yaml:"fonts"`
	Rewrite RewriteConfig `yaml:"rewrite"`
}

const ConfigFileName = "iconsync.yaml"

// Load reads iconsync.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

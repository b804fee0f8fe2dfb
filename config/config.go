// Package config holds run configuration, optionally loaded from a YAML
// file and overridden by flags and environment variables in main.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything a scrape run needs.
type Config struct {
	BaseURL      string  `yaml:"base_url"`
	UserAgent    string  `yaml:"user_agent"`
	MaxPages     int     `yaml:"max_pages"`
	DelaySeconds float64 `yaml:"delay_seconds"`
	OutputDir    string  `yaml:"output_dir"`
	CSVName      string  `yaml:"csv_name"`
	JSONName     string  `yaml:"json_name"`
	DBPath       string  `yaml:"db_path"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		BaseURL:      "https://www.olx.in/items/q-car-cover",
		MaxPages:     3,
		DelaySeconds: 1.5,
		OutputDir:    "output",
		CSVName:      "olx_car_covers.csv",
		JSONName:     "olx_car_covers.json",
	}
}

// Delay returns the inter-page pause as a duration.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelaySeconds * float64(time.Second))
}

// LoadFile overlays values from a YAML config file onto base. A missing
// file is not an error; a file that exists but cannot be parsed is.
func LoadFile(path string, base *Config) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	merged := *base
	if file.BaseURL != "" {
		merged.BaseURL = file.BaseURL
	}
	if file.UserAgent != "" {
		merged.UserAgent = file.UserAgent
	}
	if file.MaxPages > 0 {
		merged.MaxPages = file.MaxPages
	}
	if file.DelaySeconds > 0 {
		merged.DelaySeconds = file.DelaySeconds
	}
	if file.OutputDir != "" {
		merged.OutputDir = file.OutputDir
	}
	if file.CSVName != "" {
		merged.CSVName = file.CSVName
	}
	if file.JSONName != "" {
		merged.JSONName = file.JSONName
	}
	if file.DBPath != "" {
		merged.DBPath = file.DBPath
	}

	return &merged, nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/benwaldner/candlestick/patterns"
	"gopkg.in/yaml.v3"
)

// Config represents a complete scan configuration
type Config struct {
	Data    DataConfig    `json:"data" yaml:"data"`
	Scan    ScanConfig    `json:"scan" yaml:"scan"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// DataConfig names the candle data to scan
type DataConfig struct {
	File   string `json:"file" yaml:"file"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"` // label for journal records; defaults to the file name
}

// ScanConfig selects which patterns to scan for
type ScanConfig struct {
	Patterns []string `json:"patterns,omitempty" yaml:"patterns,omitempty"` // empty means all registered patterns
}

// JournalConfig contains match journaling parameters
type JournalConfig struct {
	Type        string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	MatchesFile string `json:"matches_file,omitempty" yaml:"matches_file,omitempty"`
	DBPath      string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Data.File == "" {
		return fmt.Errorf("data.file is required")
	}
	for _, name := range c.Scan.Patterns {
		if _, ok := patterns.Lookup(name); !ok {
			return fmt.Errorf("unknown pattern: %s", name)
		}
	}
	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.MatchesFile == "" {
			return fmt.Errorf("journal matches_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Data: DataConfig{
			File: "./candles.csv",
		},
		Scan: ScanConfig{
			// empty: scan every registered pattern
		},
		Journal: JournalConfig{
			Type:        "csv",
			MatchesFile: "./matches.csv",
		},
	}
}

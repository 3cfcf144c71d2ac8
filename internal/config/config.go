// Package config loads the inventory configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"loot-grid/assets"
	"loot-grid/internal/catalog"
	"loot-grid/internal/inventory"
)

// Config holds everything needed to build an inventory session.
type Config struct {
	Limits LimitsConfig     `yaml:"limits"`
	Grid   GridConfig       `yaml:"grid"`
	Items  []catalog.Record `yaml:"items"`
}

// LimitsConfig holds the aggregate capacity limits.
type LimitsConfig struct {
	MaxVolume int `yaml:"max_volume"`
	MaxMass   int `yaml:"max_mass"`
}

// GridConfig holds the slot grid dimensions.
type GridConfig struct {
	RowSize int `yaml:"row_size"`
	MinRows int `yaml:"min_rows"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file. Missing fields take their
// defaults; an absent items list means the built-in loot list.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Limits.MaxVolume == 0 {
		c.Limits.MaxVolume = inventory.DefaultMaxVolume
	}
	if c.Limits.MaxMass == 0 {
		c.Limits.MaxMass = inventory.DefaultMaxMass
	}
	if c.Grid.RowSize == 0 {
		c.Grid.RowSize = inventory.DefaultRowSize
	}
	if c.Grid.MinRows == 0 {
		c.Grid.MinRows = inventory.DefaultMinRows
	}
	if len(c.Items) == 0 {
		c.Items = append([]catalog.Record(nil), assets.Loot...)
	}
}

// Validate rejects values the inventory cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Limits.MaxVolume < 0:
		return fmt.Errorf("invalid config: max_volume must be positive, got %d", c.Limits.MaxVolume)
	case c.Limits.MaxMass < 0:
		return fmt.Errorf("invalid config: max_mass must be positive, got %d", c.Limits.MaxMass)
	case c.Grid.RowSize < 0:
		return fmt.Errorf("invalid config: row_size must be positive, got %d", c.Grid.RowSize)
	case c.Grid.MinRows < 0:
		return fmt.Errorf("invalid config: min_rows must be positive, got %d", c.Grid.MinRows)
	}
	if _, err := catalog.New(c.Items); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Catalog builds the catalog described by Items.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	return catalog.New(c.Items)
}

// Options returns coordinator options for these limits and dimensions.
func (c *Config) Options() inventory.Options {
	return inventory.Options{
		RowSize:   c.Grid.RowSize,
		MinRows:   c.Grid.MinRows,
		MaxVolume: c.Limits.MaxVolume,
		MaxMass:   c.Limits.MaxMass,
	}
}

// Package config handles server and generator configuration.
package config

import (
	"fmt"
	"time"

	"cartographer.dev/internal/generation"
	"cartographer.dev/internal/render"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig      `yaml:"server"`
	Render  RenderConfig      `yaml:"render"`
	Map     generation.Params `yaml:"map"`
	Store   StoreConfig       `yaml:"store"`
	Logging LoggingConfig     `yaml:"logging"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// RenderConfig holds raster sizes
type RenderConfig struct {
	PreviewWidth  int    `yaml:"preview_width"`
	PreviewHeight int    `yaml:"preview_height"`
	MaxWidth      int    `yaml:"max_width"`
	MaxHeight     int    `yaml:"max_height"`
	ExportDir     string `yaml:"export_dir"`
}

// StoreConfig selects the preset backend
type StoreConfig struct {
	Driver string `yaml:"driver"` // sqlite or memory
	Path   string `yaml:"path"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Store drivers
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Default returns a Config with the default slider positions
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
		Render: RenderConfig{
			PreviewWidth:  1024,
			PreviewHeight: 768,
			MaxWidth:      render.MaxDimension,
			MaxHeight:     render.MaxDimension,
			ExportDir:     "exports",
		},
		Map: generation.DefaultParams(),
		Store: StoreConfig{
			Driver: DriverSQLite,
			Path:   "data/presets.db",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if err := c.Map.Validate(); err != nil {
		return fmt.Errorf("map defaults: %w", err)
	}
	if c.Render.MaxWidth > render.MaxDimension || c.Render.MaxHeight > render.MaxDimension {
		return fmt.Errorf("render limits exceed %d: %w", render.MaxDimension, render.ErrInvalidSize)
	}
	if err := render.ValidateSize(c.Render.PreviewWidth, c.Render.PreviewHeight); err != nil {
		return fmt.Errorf("preview size: %w", err)
	}
	if c.Render.PreviewWidth > c.Render.MaxWidth || c.Render.PreviewHeight > c.Render.MaxHeight {
		return fmt.Errorf("preview size above render limits: %w", render.ErrInvalidSize)
	}
	switch c.Store.Driver {
	case DriverSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store path is required for the sqlite driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}

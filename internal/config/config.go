// Package config loads the optional teeforge.toml and resolves it into the
// options the preview, renderer and GUI take.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"teeforge/internal/applog"
	"teeforge/pkg/catalog"
	"teeforge/pkg/preview"
	"teeforge/pkg/raster"
	"teeforge/pkg/theme"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "teeforge.toml"

// Config represents teeforge.toml.
type Config struct {
	Theme    string       `toml:"theme"`
	Style    string       `toml:"style"`
	LogLevel string       `toml:"log_level"`
	Catalog  string       `toml:"catalog"`
	Canvas   CanvasConfig `toml:"canvas"`
	Export   ExportConfig `toml:"export"`
}

// CanvasConfig sizes the preview canvas in logical pixels.
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// ExportConfig controls rendered previews.
type ExportConfig struct {
	Format     string  `toml:"format"`
	Scale      float64 `toml:"scale"`
	ShirtColor string  `toml:"shirt_color"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	opts := preview.DefaultOptions()
	return &Config{
		Theme:    theme.Light.String(),
		LogLevel: "info",
		Canvas:   CanvasConfig{Width: opts.CanvasWidth, Height: opts.CanvasHeight},
		Export: ExportConfig{
			Format:     string(raster.FormatPNG),
			Scale:      1,
			ShirtColor: "#ffffff",
		},
	}
}

// Load reads the config at path over the defaults. An empty path reads
// DefaultFile if it exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	optional := path == ""
	if optional {
		path = DefaultFile
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field that has a fixed vocabulary or range.
func (c *Config) Validate() error {
	if _, err := c.ThemeValue(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.ExportFormat(); err != nil {
		return err
	}
	if _, err := c.ShirtColor(); err != nil {
		return err
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Export.Scale <= 0 {
		return fmt.Errorf("export scale must be positive, got %g", c.Export.Scale)
	}
	return nil
}

// ThemeValue returns the configured theme.
func (c *Config) ThemeValue() (theme.Theme, error) {
	if strings.TrimSpace(c.Theme) == "" {
		return theme.Light, nil
	}
	return theme.Parse(strings.TrimSpace(c.Theme))
}

// Level returns the configured log level.
func (c *Config) Level() (log.Level, error) {
	return applog.ParseLevel(strings.TrimSpace(c.LogLevel))
}

// ExportFormat returns the configured export format.
func (c *Config) ExportFormat() (raster.Format, error) {
	if c.Export.Format == "" {
		return raster.FormatPNG, nil
	}
	return raster.ParseFormat(c.Export.Format)
}

// ShirtColor returns the configured garment color.
func (c *Config) ShirtColor() (color.NRGBA, error) {
	if c.Export.ShirtColor == "" {
		return raster.DefaultRenderOptions().ShirtColor, nil
	}
	return raster.ParseHex(c.Export.ShirtColor)
}

// LoadCatalog returns the configured catalog, or the embedded one.
func (c *Config) LoadCatalog() (*catalog.Catalog, error) {
	if c.Catalog == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(c.Catalog)
}

// PreviewOptions resolves the compositor options. The catalog is loaded
// from disk when configured.
func (c *Config) PreviewOptions(logger *log.Logger) ([]preview.Option, error) {
	cat, err := c.LoadCatalog()
	if err != nil {
		return nil, err
	}
	return []preview.Option{
		preview.CanvasSize(c.Canvas.Width, c.Canvas.Height),
		preview.WithCatalog(cat),
		preview.WithLogger(logger),
	}, nil
}

// RenderOptions resolves the rasterizer options for exports.
func (c *Config) RenderOptions() (raster.RenderOptions, error) {
	opts := raster.DefaultRenderOptions()
	col, err := c.ShirtColor()
	if err != nil {
		return opts, err
	}
	t, err := c.ThemeValue()
	if err != nil {
		return opts, err
	}
	opts.ShirtColor = col
	opts.Theme = t
	if c.Export.Scale > 0 {
		opts.Scale = c.Export.Scale
	}
	return opts, nil
}

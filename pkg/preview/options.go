package preview

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"teeforge/pkg/catalog"
)

// Options configures a Compositor.
type Options struct {
	// CanvasWidth and CanvasHeight size the preview in pixels.
	// Default: 360 × 480 (3:4)
	CanvasWidth  float64
	CanvasHeight float64

	// Catalog resolves style ids.
	// Default: catalog.Default()
	Catalog *catalog.Catalog

	// Logger receives debug output for resets, lock changes and submits.
	// Default: discards everything
	Logger *log.Logger

	// Now stamps submitted payloads.
	// Default: time.Now
	Now func() time.Time
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		CanvasWidth:  360,
		CanvasHeight: 480,
		Catalog:      catalog.Default(),
		Logger:       log.New(io.Discard),
		Now:          time.Now,
	}
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// CanvasSize sets the preview size. Non-positive values are ignored.
func CanvasSize(w, h float64) Option {
	return func(o *Options) {
		if w > 0 && h > 0 {
			o.CanvasWidth, o.CanvasHeight = w, h
		}
	}
}

// WithCatalog sets the style catalog. Nil and empty catalogs are ignored.
func WithCatalog(c *catalog.Catalog) Option {
	return func(o *Options) {
		if c != nil && c.Len() > 0 {
			o.Catalog = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithClock sets the time source used for payload timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}

// NewOptions creates options from functional options.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

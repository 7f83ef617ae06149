// Package catalog holds the selectable garment styles.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// Style is one selectable garment.
type Style struct {
	ID    string  `yaml:"id"`
	Name  string  `yaml:"name"`
	Image string  `yaml:"image,omitempty"`
	Price float64 `yaml:"price"`

	// Silhouette names the vector outline drawn when Image is not
	// available: crew, slim, boxy or vneck.
	Silhouette string `yaml:"silhouette,omitempty"`
}

// PriceLabel formats the price the way the preview shows it.
func (s Style) PriceLabel() string {
	return fmt.Sprintf("$%.2f", s.Price)
}

// Catalog is an ordered, non-empty list of styles.
type Catalog struct {
	styles []Style
}

type file struct {
	Styles []Style `yaml:"styles"`
}

// ErrEmpty is returned when a catalog source lists no styles.
var ErrEmpty = errors.New("catalog has no styles")

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultStyles)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded styles: %v", err))
	}
	return c
}

// Parse decodes a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Styles) == 0 {
		return nil, ErrEmpty
	}

	seen := make(map[string]bool, len(f.Styles))
	for i, s := range f.Styles {
		if s.ID == "" {
			return nil, fmt.Errorf("style %d has no id", i)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("duplicate style id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return &Catalog{styles: f.Styles}, nil
}

// Load reads a YAML catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Styles returns the styles in catalog order.
func (c *Catalog) Styles() []Style {
	out := make([]Style, len(c.styles))
	copy(out, c.styles)
	return out
}

// Len returns the number of styles.
func (c *Catalog) Len() int {
	return len(c.styles)
}

// First returns the first style, which doubles as the fallback. A zero
// Catalog, which Parse never returns, yields the zero Style.
func (c *Catalog) First() Style {
	if len(c.styles) == 0 {
		return Style{}
	}
	return c.styles[0]
}

// Lookup finds a style by id.
func (c *Catalog) Lookup(id string) (Style, bool) {
	for _, s := range c.styles {
		if s.ID == id {
			return s, true
		}
	}
	return Style{}, false
}

// Resolve returns the style for id, falling back to the first entry for an
// unknown id.
func (c *Catalog) Resolve(id string) Style {
	if s, ok := c.Lookup(id); ok {
		return s
	}
	return c.First()
}

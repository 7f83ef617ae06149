package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	styles := c.Styles()
	require.Len(t, styles, 4)

	ids := make([]string, len(styles))
	for i, s := range styles {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"classic", "slim", "oversized", "vneck"}, ids)
	assert.Equal(t, "$24.99", c.First().PriceLabel())
}

func TestResolveFallback(t *testing.T) {
	c := Default()

	tests := []struct {
		id   string
		want string
	}{
		{"vneck", "V-Neck"},
		{"slim", "Slim Fit"},
		{"", "Classic Fit"},
		{"tank-top", "Classic Fit"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Resolve(tt.id).Name)
		})
	}

	_, ok := c.Lookup("tank-top")
	assert.False(t, ok)
}

func TestStylesIsACopy(t *testing.T) {
	c := Default()
	s := c.Styles()
	s[0].Name = "changed"
	assert.Equal(t, "Classic Fit", c.First().Name)
}

func TestZeroCatalog(t *testing.T) {
	var c Catalog
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, Style{}, c.First())
	assert.Equal(t, Style{}, c.Resolve("classic"))
	assert.Equal(t, 4, Default().Len())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("styles: []"))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse([]byte("styles:\n  - name: nameless\n"))
	assert.ErrorContains(t, err, "no id")

	_, err = Parse([]byte("styles:\n  - id: a\n  - id: a\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = Parse([]byte("styles: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("styles:\n  - id: polo\n    name: Polo\n    price: 31\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Polo", c.Resolve("anything").Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

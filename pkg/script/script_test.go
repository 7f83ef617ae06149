package script

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teeforge/pkg/imageio"
	"teeforge/pkg/preview"
)

func fakeOpener(opened *[]string) Opener {
	return func(path string) (*imageio.Source, error) {
		*opened = append(*opened, path)
		return imageio.FromImage(image.NewNRGBA(image.Rect(0, 0, 10, 10)), filepath.Base(path)), nil
	}
}

const layoutScript = `
image: design.png
style: vneck
text: "TEAM\nBLUE"
steps:
  - drag: {layer: image, from: [0, 0], via: [[10, 10]], to: [40, -20]}
  - zoom: 120
  - rotate: -1
  - drag: {layer: text, from: [5, 5], to: [5, -25]}
  - save: true
  - drag: {from: [0, 0], to: [99, 99]}
`

func TestPlay(t *testing.T) {
	s, err := Parse([]byte(layoutScript))
	require.NoError(t, err)
	s.Dir = "/designs"

	var opened []string
	c := preview.New()
	require.NoError(t, s.Play(c, fakeOpener(&opened)))

	assert.Equal(t, []string{filepath.Join("/designs", "design.png")}, opened)
	assert.Equal(t, "vneck", c.Style().ID)
	assert.Equal(t, []string{"TEAM", "BLUE"}, c.TextLines())
	assert.Equal(t, preview.ImageTransform{X: 40, Y: -20, Scale: 0.9, Rotation: 5}, c.ImageTransform())
	assert.Equal(t, preview.TextTransform{X: 0, Y: -30}, c.TextTransform())
	assert.Equal(t, preview.Committed, c.Lock(), "drag after save is ignored")
}

func TestPlayImageSwapResets(t *testing.T) {
	s, err := Parse([]byte(`
image: a.png
steps:
  - zoom: -1
  - image: b.png
  - touch: {from: [0, 0], to: [3, 4]}
  - image: ""
`))
	require.NoError(t, err)

	var opened []string
	c := preview.New()
	require.NoError(t, s.Play(c, fakeOpener(&opened)))

	assert.Equal(t, []string{"a.png", "b.png"}, opened)
	assert.Nil(t, c.Image())
	assert.Equal(t, preview.DefaultImageTransform(), c.ImageTransform())
}

func TestPlayEditUnlocks(t *testing.T) {
	s, err := Parse([]byte(`
steps:
  - save: true
  - edit: true
  - text: HI
  - style: slim
`))
	require.NoError(t, err)

	c := preview.New()
	require.NoError(t, s.Play(c, nil))
	assert.Equal(t, preview.Editable, c.Lock())
	assert.Equal(t, "HI", c.Text())
	assert.Equal(t, "slim", c.Style().ID)
}

func TestParseRejectsBadSteps(t *testing.T) {
	tests := map[string]string{
		"two actions":   "steps:\n  - {save: true, edit: true}\n",
		"no action":     "steps:\n  - {}\n",
		"unknown layer": "steps:\n  - drag: {layer: sleeve, from: [0, 0], to: [1, 1]}\n",
		"bad yaml":      "steps: [",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src))
			assert.Error(t, err)
		})
	}

	_, err := Parse([]byte(tests["two actions"]))
	assert.True(t, errors.Is(err, ErrStep))
}

func TestPlayOpenError(t *testing.T) {
	s := &Script{Image: "missing.png"}
	err := s.Play(preview.New(), func(string) (*imageio.Source, error) {
		return nil, os.ErrNotExist
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadResolvesRelativeImages(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "logo.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 8, 4))))
	require.NoError(t, f.Close())

	path := filepath.Join(dir, "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("image: logo.png\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir)

	c := preview.New()
	require.NoError(t, s.Play(c, nil))
	require.NotNil(t, c.Image())
	w, h := c.Image().Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 4, h)
}

func TestRead(t *testing.T) {
	s, err := Read(strings.NewReader("style: boxy\n"))
	require.NoError(t, err)
	assert.Equal(t, "boxy", s.Style)
}

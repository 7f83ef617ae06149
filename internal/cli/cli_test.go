package cli

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teeforge/pkg/preview"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writePNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, "logo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, w, h))))
	require.NoError(t, f.Close())
	return path
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "teeforge version 1.0.0")
	assert.Contains(t, out, "commit: abc123")
}

func TestExtraCommands(t *testing.T) {
	ran := false
	extra := &cobra.Command{Use: "gui", RunE: func(*cobra.Command, []string) error {
		ran = true
		return nil
	}}

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand(extra)
	root.SetArgs([]string{"gui", "-v"})
	require.NoError(t, root.Execute())
	assert.True(t, ran)
	assert.Equal(t, LogDebug, c.Logger.GetLevel())
}

func TestStyles(t *testing.T) {
	out, _, err := run(t, "styles")
	require.NoError(t, err)
	for _, want := range []string{"classic", "Slim Fit", "$29.99", "vneck"} {
		assert.Contains(t, out, want)
	}
}

func TestBadConfig(t *testing.T) {
	_, _, err := run(t, "styles", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	logo := writePNG(t, dir, 40, 40)
	output := filepath.Join(dir, "out", "preview.png")

	out, _, err := run(t, "render", "-i", logo, "--text", "HELLO", "--style", "slim", "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Slim Fit")
	assert.Contains(t, out, "translate(0px, 0px) scale(1) rotate(0deg)")

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 360, 480), img.Bounds())
}

func TestRenderScriptWebP(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, 20, 20)
	scriptPath := filepath.Join(dir, "layout.yaml")
	require.NoError(t, os.WriteFile(scriptPath, []byte(`
image: logo.png
steps:
  - drag: {from: [0, 0], to: [10, 20]}
  - rotate: -1
  - save: true
`), 0o644))
	output := filepath.Join(dir, "preview.webp")

	out, _, err := run(t, "render", "-s", scriptPath, "-o", output, "--scale", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "translate(10px, 20px) scale(1) rotate(5deg)")
	assert.Contains(t, out, "180x240")
	assert.Contains(t, out, "committed")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(data[:4]))
}

func TestRenderBadFormat(t *testing.T) {
	_, _, err := run(t, "render", "-o", filepath.Join(t.TempDir(), "x.png"), "--format", "gif")
	assert.Error(t, err)
}

func TestSubmit(t *testing.T) {
	dir := t.TempDir()
	logo := writePNG(t, dir, 10, 10)

	out, _, err := run(t, "submit", "-i", logo, "--text", "TEAM", "--build", "lean", "--height", "172")
	require.NoError(t, err)

	var p preview.Payload
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.NotEmpty(t, p.OrderID)
	assert.Equal(t, "classic", p.Style.ID)
	assert.Equal(t, 172, p.Measurements.HeightCM)
	assert.Equal(t, 80, p.Measurements.WeightKG)
	assert.Equal(t, "lean", p.Measurements.Build)
	assert.Equal(t, []string{"TEAM"}, p.Lines)
	require.NotNil(t, p.Image)
	assert.Equal(t, "logo.png", p.Image.Name)
}

func TestSubmitInvalid(t *testing.T) {
	out, errOut, err := run(t, "submit", "--height", "", "--weight", "500", "--build", "huge")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Height is required")
	assert.Contains(t, errOut, "Weight must be less than 200kg")
	assert.Contains(t, errOut, "Build must be one of")
	assert.Contains(t, err.Error(), "3 invalid field(s)")
}

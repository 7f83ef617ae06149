package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Format is an export encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// ParseFormat converts a name such as "PNG" or ".webp" into a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(name, "."))); f {
	case FormatPNG, FormatWebP:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format %q", name)
}

// FormatFor picks the format from filename's extension, or fallback when
// the extension is not recognised.
func FormatFor(filename string, fallback Format) Format {
	if f, err := ParseFormat(filepath.Ext(filename)); err == nil {
		return f
	}
	return fallback
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	}
	return fmt.Errorf("unsupported export format %q", string(f))
}

// WriteFile encodes img into filename.
func WriteFile(filename string, img image.Image, f Format) (err error) {
	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	if err := Encode(out, img, f); err != nil {
		return fmt.Errorf("failed to encode %s: %w", f, err)
	}
	return nil
}

// Package imageio decodes user supplied design images.
//
// Every decode produces a Source with a fresh identity, so loading the same
// file twice still registers as a new image with the preview.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"github.com/google/uuid"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// MaxPixels bounds the decoded image area.
const MaxPixels = 8192 * 8192

var (
	// ErrTooLarge is returned for images over MaxPixels.
	ErrTooLarge = errors.New("image too large")
	// ErrUnknownFormat is returned when no decoder recognizes the data.
	ErrUnknownFormat = errors.New("unknown image format")
)

// Source is a decoded design image.
type Source struct {
	ID     string
	Name   string
	Format string
	Image  image.Image
}

// Size returns the pixel dimensions of the image.
func (s *Source) Size() (w, h int) {
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}

// format pairs a decoder with the ways to recognize its input. TGA has no
// magic number, so it is only picked by file extension, and no header-only
// reader, so its size is checked after decoding.
type format struct {
	name   string
	match  func([]byte) bool
	exts   []string
	decode func(io.Reader) (image.Image, error)
	config func(io.Reader) (image.Config, error)
}

func prefix(magic ...string) func([]byte) bool {
	return func(b []byte) bool {
		for _, m := range magic {
			if bytes.HasPrefix(b, []byte(m)) {
				return true
			}
		}
		return false
	}
}

func isWebP(b []byte) bool {
	return len(b) >= 12 && string(b[:4]) == "RIFF" && string(b[8:12]) == "WEBP"
}

var formats = []format{
	{"png", prefix("\x89PNG\r\n\x1a\n"), []string{".png"}, png.Decode, png.DecodeConfig},
	{"jpeg", prefix("\xff\xd8"), []string{".jpg", ".jpeg"}, jpeg.Decode, jpeg.DecodeConfig},
	{"gif", prefix("GIF87a", "GIF89a"), []string{".gif"}, gif.Decode, gif.DecodeConfig},
	{"bmp", prefix("BM"), []string{".bmp"}, bmp.Decode, bmp.DecodeConfig},
	{"tiff", prefix("II*\x00", "MM\x00*"), []string{".tif", ".tiff"}, tiff.Decode, tiff.DecodeConfig},
	{"webp", isWebP, []string{".webp"}, webp.Decode, webp.DecodeConfig},
	{"tga", nil, []string{".tga"}, tga.Decode, nil},
}

// Formats lists the names of the supported formats.
func Formats() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.name
	}
	return names
}

// Extensions lists every accepted file extension.
func Extensions() []string {
	var exts []string
	for _, f := range formats {
		exts = append(exts, f.exts...)
	}
	return exts
}

func sniff(data []byte, name string) (format, bool) {
	for _, f := range formats {
		if f.match != nil && f.match(data) {
			return f, true
		}
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, f := range formats {
		for _, e := range f.exts {
			if e == ext {
				return f, true
			}
		}
	}
	return format{}, false
}

// Decode reads an image in any supported format.
func Decode(r io.Reader, name string) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return DecodeBytes(data, name)
}

// DecodeBytes decodes an in-memory image. The format is recognized by its
// magic number first and by the extension of name second.
func DecodeBytes(data []byte, name string) (*Source, error) {
	f, ok := sniff(data, name)
	if !ok {
		return nil, fmt.Errorf("failed to decode image %q: %w", name, ErrUnknownFormat)
	}

	if f.config != nil {
		cfg, err := f.config(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s header %q: %w", f.name, name, err)
		}
		if err := checkSize(name, cfg.Width, cfg.Height); err != nil {
			return nil, err
		}
	}

	img, err := f.decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s image %q: %w", f.name, name, err)
	}

	b := img.Bounds()
	if err := checkSize(name, b.Dx(), b.Dy()); err != nil {
		return nil, err
	}

	return &Source{
		ID:     uuid.NewString(),
		Name:   name,
		Format: f.name,
		Image:  img,
	}, nil
}

func checkSize(name string, w, h int) error {
	if int64(w)*int64(h) > MaxPixels {
		return fmt.Errorf("%s is %dx%d: %w", name, w, h, ErrTooLarge)
	}
	return nil
}

// DecodeFile loads and decodes the image at path.
func DecodeFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	return Decode(f, filepath.Base(path))
}

// FromImage wraps an already decoded image.
func FromImage(img image.Image, name string) *Source {
	return &Source{ID: uuid.NewString(), Name: name, Format: "memory", Image: img}
}

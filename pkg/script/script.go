// Package script replays recorded preview gestures from YAML, so a layout
// can be reproduced headlessly and rendered to a file.
//
// A script names the starting image, style and text and then lists steps,
// each holding exactly one action:
//
//	image: design.png
//	style: vneck
//	text: "TEAM\nBLUE"
//	steps:
//	  - drag: {layer: image, from: [0, 0], to: [40, -20]}
//	  - zoom: 120
//	  - rotate: -120
//	  - save: true
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"teeforge/pkg/geom"
	"teeforge/pkg/imageio"
	"teeforge/pkg/preview"
)

// ErrStep is wrapped by errors for malformed steps.
var ErrStep = errors.New("invalid step")

// Script is a parsed gesture script.
type Script struct {
	Image string `yaml:"image,omitempty"`
	Style string `yaml:"style,omitempty"`
	Text  string `yaml:"text,omitempty"`
	Steps []Step `yaml:"steps,omitempty"`

	// Dir resolves relative image paths. Load sets it to the script's
	// directory.
	Dir string `yaml:"-"`
}

// Step is one action. Zoom and Rotate carry a wheel deltaY.
type Step struct {
	Drag   *Drag    `yaml:"drag,omitempty"`
	Touch  *Drag    `yaml:"touch,omitempty"`
	Zoom   *float64 `yaml:"zoom,omitempty"`
	Rotate *float64 `yaml:"rotate,omitempty"`
	Save   bool     `yaml:"save,omitempty"`
	Edit   bool     `yaml:"edit,omitempty"`
	Text   *string  `yaml:"text,omitempty"`
	Style  *string  `yaml:"style,omitempty"`
	Image  *string  `yaml:"image,omitempty"`
}

// Drag presses at From, moves through Via and releases at To.
type Drag struct {
	Layer string       `yaml:"layer,omitempty"`
	From  [2]float64   `yaml:"from"`
	Via   [][2]float64 `yaml:"via,omitempty"`
	To    [2]float64   `yaml:"to"`
}

// Kind names the step's action.
func (s Step) Kind() string {
	var kinds []string
	if s.Drag != nil {
		kinds = append(kinds, "drag")
	}
	if s.Touch != nil {
		kinds = append(kinds, "touch")
	}
	if s.Zoom != nil {
		kinds = append(kinds, "zoom")
	}
	if s.Rotate != nil {
		kinds = append(kinds, "rotate")
	}
	if s.Save {
		kinds = append(kinds, "save")
	}
	if s.Edit {
		kinds = append(kinds, "edit")
	}
	if s.Text != nil {
		kinds = append(kinds, "text")
	}
	if s.Style != nil {
		kinds = append(kinds, "style")
	}
	if s.Image != nil {
		kinds = append(kinds, "image")
	}
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

func (d *Drag) layer() (preview.Layer, error) {
	switch d.Layer {
	case "", "image":
		return preview.LayerImage, nil
	case "text":
		return preview.LayerText, nil
	}
	return preview.LayerNone, fmt.Errorf("%w: unknown layer %q", ErrStep, d.Layer)
}

func (d *Drag) points() []geom.Point {
	pts := []geom.Point{geom.Pt(d.From[0], d.From[1])}
	for _, v := range d.Via {
		pts = append(pts, geom.Pt(v[0], v[1]))
	}
	return append(pts, geom.Pt(d.To[0], d.To[1]))
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Read parses a script from r.
func Read(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Load parses the script file at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Dir = filepath.Dir(path)
	return s, nil
}

// Validate checks that every step holds exactly one known action.
func (s *Script) Validate() error {
	for i, st := range s.Steps {
		kind := st.Kind()
		if kind == "" {
			return fmt.Errorf("%w %d: want exactly one action", ErrStep, i+1)
		}
		for _, d := range []*Drag{st.Drag, st.Touch} {
			if d == nil {
				continue
			}
			if _, err := d.layer(); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}
	return nil
}

// Opener decodes the image at path.
type Opener func(path string) (*imageio.Source, error)

// Play applies the script to c. Gestures the compositor rejects, such as a
// drag while locked, are ignored the same way the live preview ignores them.
func (s *Script) Play(c *preview.Compositor, open Opener) error {
	if open == nil {
		open = imageio.DecodeFile
	}

	if s.Image != "" {
		if err := s.setImage(c, s.Image, open); err != nil {
			return err
		}
	}
	if s.Style != "" {
		c.SetStyle(s.Style)
	}
	if s.Text != "" {
		c.SetText(s.Text)
	}

	for i, st := range s.Steps {
		if err := s.apply(c, st, open); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Kind(), err)
		}
	}
	return nil
}

func (s *Script) apply(c *preview.Compositor, st Step, open Opener) error {
	switch st.Kind() {
	case "drag":
		layer, err := st.Drag.layer()
		if err != nil {
			return err
		}
		pts := st.Drag.points()
		c.PointerDown(layer, pts[0])
		for _, p := range pts[1:] {
			c.PointerMove(layer, p)
		}
		c.PointerUp(layer)
	case "touch":
		layer, err := st.Touch.layer()
		if err != nil {
			return err
		}
		pts := st.Touch.points()
		c.TouchStart(layer, pts[:1])
		for _, p := range pts[1:] {
			c.TouchMove(layer, []geom.Point{p})
		}
		c.TouchEnd(layer)
	case "zoom":
		c.Wheel(*st.Zoom, false)
	case "rotate":
		c.Wheel(*st.Rotate, true)
	case "save":
		c.Save()
	case "edit":
		c.Edit()
	case "text":
		c.SetText(*st.Text)
	case "style":
		c.SetStyle(*st.Style)
	case "image":
		return s.setImage(c, *st.Image, open)
	default:
		return fmt.Errorf("%w: want exactly one action", ErrStep)
	}
	return nil
}

func (s *Script) setImage(c *preview.Compositor, path string, open Opener) error {
	if path == "" {
		c.SetImage(nil)
		return nil
	}
	if !filepath.IsAbs(path) && s.Dir != "" {
		path = filepath.Join(s.Dir, path)
	}
	src, err := open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	c.SetImage(src)
	return nil
}

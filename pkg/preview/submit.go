package preview

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"teeforge/pkg/form"
)

// Payload is the configuration assembled on submit.
type Payload struct {
	OrderID      string            `json:"orderId"`
	SubmittedAt  time.Time         `json:"submittedAt"`
	Style        StyleInfo         `json:"style"`
	Measurements form.Measurements `json:"measurements"`
	Lines        []string          `json:"lines"`
	Image        *ImageInfo        `json:"image,omitempty"`
	TextOffset   TextTransform     `json:"textOffset"`
	Locked       bool              `json:"locked"`
}

// StyleInfo identifies the chosen garment.
type StyleInfo struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ImageInfo describes the placed image.
type ImageInfo struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Format    string         `json:"format"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Transform ImageTransform `json:"transform"`
	CSS       string         `json:"css"`
}

// Submit validates m and assembles the payload from the current layout.
// The text field is taken from the compositor so the payload matches what
// the preview shows.
func (c *Compositor) Submit(m form.Measurements) (*Payload, error) {
	m.Text = c.rawText
	if err := form.Validate(m); err != nil {
		return nil, fmt.Errorf("invalid measurements: %w", err)
	}

	style := c.Style()
	p := &Payload{
		OrderID:      uuid.NewString(),
		SubmittedAt:  c.opts.Now(),
		Style:        StyleInfo{ID: style.ID, Name: style.Name, Price: style.Price},
		Measurements: m,
		Lines:        c.TextLines(),
		TextOffset:   c.text.Transform(),
		Locked:       c.lock.Locked(),
	}

	if c.source != nil {
		w, h := c.source.Size()
		t := c.image.Transform()
		p.Image = &ImageInfo{
			ID:        c.source.ID,
			Name:      c.source.Name,
			Format:    c.source.Format,
			Width:     w,
			Height:    h,
			Transform: t,
			CSS:       t.CSS(),
		}
	}

	c.opts.Logger.Debug("submitted", "order", p.OrderID, "style", style.ID, "locked", p.Locked)
	return p, nil
}

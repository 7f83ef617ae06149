// Package gesture turns press/move/release input into a stream of layer
// positions.
//
// A Tracker follows one layer. On press it records the offset between the
// pointer and the layer's position; every move then places the layer at
// pointer minus that offset, so the layer follows the pointer without
// accumulating per-move error.
package gesture

import "teeforge/pkg/geom"

// State represents the current state of a tracker.
type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// Session is the live part of one press-move-release interaction.
type Session struct {
	Active bool
	Anchor geom.Point // pointer at press minus layer position at press
}

// Tracker tracks at most one gesture session for a single layer.
// It is not safe for concurrent use.
type Tracker struct {
	session Session
}

// NewTracker creates an idle tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Press opens a session if enabled and none is active. A press during an
// active session keeps its anchor.
func (t *Tracker) Press(pointer, layer geom.Point, enabled bool) bool {
	if !enabled || t.session.Active {
		return false
	}
	t.session = Session{Active: true, Anchor: pointer.Sub(layer)}
	return true
}

// Move returns the layer position for pointer. ok is false when no session
// is active or input is disabled.
func (t *Tracker) Move(pointer geom.Point, enabled bool) (pos geom.Point, ok bool) {
	if !enabled || !t.session.Active {
		return geom.Point{}, false
	}
	return pointer.Sub(t.session.Anchor), true
}

// Release closes the session. Calling it while idle is a no-op.
func (t *Tracker) Release() {
	t.session = Session{}
}

// Dragging reports whether a session is active.
func (t *Tracker) Dragging() bool {
	return t.session.Active
}

// State returns the tracker state.
func (t *Tracker) State() State {
	if t.session.Active {
		return StateDragging
	}
	return StateIdle
}

// Session returns a copy of the current session.
func (t *Tracker) Session() Session {
	return t.session
}

// FirstTouch picks the first finger of a touch list. Additional fingers are
// ignored; an empty list reports false.
func FirstTouch(touches []geom.Point) (geom.Point, bool) {
	if len(touches) == 0 {
		return geom.Point{}, false
	}
	return touches[0], true
}

package preview

// LockState gates gesture input on both layers.
type LockState int

const (
	Editable LockState = iota
	Committed
)

func (s LockState) String() string {
	if s == Committed {
		return "committed"
	}
	return "editable"
}

// LockController is the Save/Edit toggle. Transitions are unconditional.
type LockController struct {
	state    LockState
	onChange func(LockState)
}

// Save commits the layout; gestures are ignored until Edit.
func (l *LockController) Save() {
	l.set(Committed)
}

// Edit reopens the layout for gestures.
func (l *LockController) Edit() {
	l.set(Editable)
}

// Toggle flips between the two states.
func (l *LockController) Toggle() {
	if l.state == Committed {
		l.Edit()
	} else {
		l.Save()
	}
}

// State returns the current state.
func (l *LockController) State() LockState {
	return l.state
}

// Locked reports whether the layout is committed.
func (l *LockController) Locked() bool {
	return l.state == Committed
}

func (l *LockController) set(s LockState) {
	if l.state == s {
		return
	}
	l.state = s
	if l.onChange != nil {
		l.onChange(s)
	}
}

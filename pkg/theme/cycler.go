package theme

// Registrar installs a process-wide key listener and returns the function
// that removes it.
type Registrar interface {
	Register(fn func()) (remove func())
}

// RegistrarFunc adapts a function to Registrar.
type RegistrarFunc func(fn func()) (remove func())

// Register calls f.
func (f RegistrarFunc) Register(fn func()) func() {
	return f(fn)
}

// Cycler owns the current theme and the shortcut listener that advances it.
// Install on mount and Uninstall on unmount; installing twice keeps a single
// listener. It is not safe for concurrent use.
type Cycler struct {
	current  Theme
	onChange func(Theme)
	remove   func()
}

// NewCycler creates a cycler starting at initial. onChange may be nil.
func NewCycler(initial Theme, onChange func(Theme)) *Cycler {
	return &Cycler{current: initial, onChange: onChange}
}

// Current returns the active theme.
func (c *Cycler) Current() Theme {
	return c.current
}

// Cycle advances to the next theme and returns it.
func (c *Cycler) Cycle() Theme {
	c.current = c.current.Next()
	if c.onChange != nil {
		c.onChange(c.current)
	}
	return c.current
}

// Install registers the cycling listener with r.
func (c *Cycler) Install(r Registrar) {
	if c.remove != nil {
		return
	}
	c.remove = r.Register(func() { c.Cycle() })
}

// Uninstall removes the listener. It is a no-op when not installed.
func (c *Cycler) Uninstall() {
	if c.remove == nil {
		return
	}
	c.remove()
	c.remove = nil
}

// Installed reports whether a listener is registered.
func (c *Cycler) Installed() bool {
	return c.remove != nil
}

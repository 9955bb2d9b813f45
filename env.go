package vcui

import (
	"fmt"
	"image"
)

// Env is the context shared by all controllers and widgets of one application.
//
// Order of use: NewEnv, build the controller tree, Run, tear the tree down
// (Deactivate/Close the root), then Env.Close.
type Env struct {
	Bus     *Bus
	Backend Backend
	Fonts   *FontCache
	Config  Config

	// Call takes functions to run on the frame loop, between frames.
	// Goroutines must not touch widgets or controllers directly, send a function instead.
	Call chan func()

	closed bool
}

// NewEnv validates cfg and returns a context drawing with backend b.
func NewEnv(b Backend, cfg Config) (*Env, error) {
	if b == nil {
		return nil, ErrNoBackend
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new env: %w", err)
	}
	return &Env{
		Bus:     NewBus(),
		Backend: b,
		Fonts:   NewFontCache(b),
		Config:  cfg,
		Call:    make(chan func(), 1),
	}, nil
}

// Font returns the configured default font.
func (e *Env) Font() (Font, error) {
	return e.Fonts.Get(e.Config.Font.Name, e.Config.Font.Size)
}

// NewSurface returns a new surface from the backend.
func (e *Env) NewSurface(size image.Point) (Surface, error) {
	s, err := e.Backend.NewSurface(clampSize(size))
	if err != nil {
		return nil, fmt.Errorf("new surface %v: %w", size, err)
	}
	return s, nil
}

// Activate subscribes vc: its declared hooks, its adopted widgets, and its own
// input handlers if it is Interactive. On error nothing stays subscribed.
func (e *Env) Activate(vc ViewController) error {
	c := vc.Base()
	if c.active {
		return nil
	}
	g := c.subscriptions(e.Bus)
	err := connect(vc, g)
	if err != nil {
		g.Close()
		return err
	}
	c.active = true
	return nil
}

// Deactivate removes all subscriptions of vc and its children. Deactivating an inactive controller is a no-op.
func (e *Env) Deactivate(vc ViewController) {
	c := vc.Base()
	if !c.active {
		return
	}
	if ct, ok := vc.(Container); ok {
		for _, child := range ct.Children() {
			e.Deactivate(child)
		}
	}
	c.subs.Close()
	c.active = false
}

// Close ends the context. Subscriptions still present are a teardown order mistake and are logged.
func (e *Env) Close() {
	if e.closed {
		return
	}
	e.closed = true
	n := 0
	for c := Category(0); c < numCategories; c++ {
		n += e.Bus.Len(c)
	}
	if n > 0 {
		logf("env closed with %d subscriptions left\n", n)
	}
}

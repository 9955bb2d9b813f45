package vcui

import (
	"fmt"
	"image"
)

// Hook is a set of lifecycle hooks a controller declares it wants called from the event bus.
type Hook uint8

const (
	HookResize Hook = 1 << iota // DidResize on window resize
	HookUpdate                  // DidUpdate at the end of every frame's dispatch

	hookAll = HookResize | HookUpdate
)

func (h Hook) String() string {
	s := ""
	if h&HookResize != 0 {
		s += "|resize"
	}
	if h&HookUpdate != 0 {
		s += "|update"
	}
	if h&^hookAll != 0 {
		s += fmt.Sprintf("|%#x", uint8(h&^hookAll))
	}
	if s == "" {
		return "none"
	}
	return s[1:]
}

// ViewController is a node in the controller tree. It owns a surface it renders itself and its children into.
//
// Render draws only, it does not change state. Update advances state, x and y
// are the screen position of the controller's surface, needed to convert
// pointer positions to local coordinates.
//
// Implementations embed Controller, and may implement the optional interfaces
// Navigator, DidNavigator, Resizer, Updater, DimensionUpdater, Interactive and Container.
type ViewController interface {
	Base() *Controller
	Surface() Surface
	Render()
	Update(x, y int, delta float64)
	// Hooks returns the hooks to subscribe on activation. It must not change over the controller's life.
	Hooks() Hook
}

// Navigator is called after the controller became the active child of a container, before the first render.
type Navigator interface {
	OnNavigatedTo()
}

// DidNavigator is called after OnNavigatedTo.
type DidNavigator interface {
	DidNavigate()
}

// Resizer is called with the new window size, if HookResize is declared.
type Resizer interface {
	DidResize(size image.Point)
}

// Updater is called at the end of each frame's event dispatch, if HookUpdate is declared.
type Updater interface {
	DidUpdate()
}

// DimensionUpdater rescales the controller's surface and propagates the new size to its children.
type DimensionUpdater interface {
	UpdateDimensions(size image.Point) error
}

// Interactive is implemented by widgets and controllers that handle input.
// Connect adds their handlers to s; closing s disconnects them.
type Interactive interface {
	Connect(s *Subscriptions) error
}

// Container is implemented by controllers with child controllers. Env.Deactivate
// deactivates the children before the container. Containers activate their children
// themselves, typically with Navigate from OnNavigatedTo.
type Container interface {
	Children() []ViewController
}

// Controller holds the state common to all view controllers. Embed it and call Init.
type Controller struct {
	Env *Env

	surface Surface
	adopted []Interactive
	subs    *Subscriptions
	active  bool
}

// Init sets up the controller with a new surface of size.
func (c *Controller) Init(env *Env, size image.Point) error {
	if env == nil {
		return ErrNoBackend
	}
	s, err := env.NewSurface(size)
	if err != nil {
		return err
	}
	c.Env = env
	c.surface = s
	return nil
}

func (c *Controller) Base() *Controller {
	return c
}

func (c *Controller) Surface() Surface {
	return c.surface
}

// SetSurface replaces the controller's surface.
func (c *Controller) SetSurface(s Surface) {
	c.surface = s
}

// Hooks declares no hooks. Controllers wanting DidResize or DidUpdate override it.
func (c *Controller) Hooks() Hook {
	return 0
}

// Active reports whether the controller's subscriptions are live.
func (c *Controller) Active() bool {
	return c.active
}

// Subscriptions returns the subscription group the controller is connected with, nil before first activation.
func (c *Controller) Subscriptions() *Subscriptions {
	return c.subs
}

// Adopt registers widgets whose handlers live as long as the controller is active.
// If the controller is active they are connected right away.
func (c *Controller) Adopt(widgets ...Interactive) error {
	c.adopted = append(c.adopted, widgets...)
	if !c.active {
		return nil
	}
	for _, w := range widgets {
		if err := w.Connect(c.subs); err != nil {
			return err
		}
	}
	return nil
}

// UpdateDimensions rescales the surface to size, dimensions below 0 become 0.
func (c *Controller) UpdateDimensions(size image.Point) error {
	s, err := c.Env.Backend.Scale(c.surface, clampSize(size))
	if err != nil {
		return fmt.Errorf("update dimensions %v: %w", size, err)
	}
	c.surface = s
	return nil
}

func (c *Controller) subscriptions(bus *Bus) *Subscriptions {
	if c.subs == nil {
		c.subs = NewSubscriptions(bus)
	}
	return c.subs
}

func connect(vc ViewController, g *Subscriptions) error {
	hooks := vc.Hooks()
	if hooks&^hookAll != 0 {
		return invalid(ErrInvalidHook, "hooks", hooks)
	}
	if hooks&HookResize != 0 {
		r, ok := vc.(Resizer)
		if !ok {
			return fmt.Errorf("%T declares resize hook without DidResize: %w", vc, ErrInvalidHook)
		}
		if err := g.Add(CategoryWindowResize, func(e Event) { r.DidResize(e.Size) }); err != nil {
			return err
		}
	}
	if hooks&HookUpdate != 0 {
		u, ok := vc.(Updater)
		if !ok {
			return fmt.Errorf("%T declares update hook without DidUpdate: %w", vc, ErrInvalidHook)
		}
		if err := g.Add(CategoryUpdate, func(Event) { u.DidUpdate() }); err != nil {
			return err
		}
	}
	for _, w := range vc.Base().adopted {
		if err := w.Connect(g); err != nil {
			return err
		}
	}
	if i, ok := vc.(Interactive); ok {
		if err := i.Connect(g); err != nil {
			return err
		}
	}
	return nil
}

// Navigate activates vc and calls its OnNavigatedTo and DidNavigate hooks.
// Containers use it for a newly selected child, applications for their root.
func Navigate(env *Env, vc ViewController) error {
	if err := env.Activate(vc); err != nil {
		return err
	}
	if n, ok := vc.(Navigator); ok {
		n.OnNavigatedTo()
	}
	if n, ok := vc.(DidNavigator); ok {
		n.DidNavigate()
	}
	return nil
}

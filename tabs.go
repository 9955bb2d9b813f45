package vcui

import (
	"fmt"
	"image"
	"io"
)

// TabBarController shows a tab bar at the top and the controller of the selected tab below it.
// Only the selected controller is active.
type TabBarController struct {
	Controller

	bar   *TabBar
	items []TabItem
	index int
	child ViewController
}

var (
	_ ViewController   = &TabBarController{}
	_ Resizer          = &TabBarController{}
	_ DimensionUpdater = &TabBarController{}
	_ Navigator        = &TabBarController{}
	_ Container        = &TabBarController{}
)

// NewTabBarController returns a controller of size with a tab per item, the first selected.
func NewTabBarController(env *Env, size image.Point, items []TabItem) (*TabBarController, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("tab bar without tabs: %w", ErrNoController)
	}
	titles := make([]string, len(items))
	for i, it := range items {
		if it.New == nil && it.Instance == nil {
			return nil, fmt.Errorf("tab %d %q: %w", i, it.Title, ErrNoController)
		}
		titles[i] = it.Title
	}
	c := &TabBarController{items: items, index: -1}
	if err := c.Controller.Init(env, size); err != nil {
		return nil, err
	}
	bar, err := NewTabBar(env, size.X, titles)
	if err != nil {
		return nil, err
	}
	bar.Changed = func(index int) {
		if err := c.Select(index); err != nil {
			logf("tab bar: select %d: %s\n", index, err)
		}
	}
	c.bar = bar
	if err := c.Select(0); err != nil {
		return nil, err
	}
	return c, nil
}

// Bar returns the tab bar widget.
func (c *TabBarController) Bar() *TabBar {
	return c.bar
}

// Selected returns the index of the selected tab and its controller.
func (c *TabBarController) Selected() (int, ViewController) {
	return c.index, c.child
}

func (c *TabBarController) viewSize() image.Point {
	size := c.Surface().Size()
	return clampSize(image.Pt(size.X, size.Y-c.bar.Height()))
}

func (c *TabBarController) controller(i int) (ViewController, error) {
	it := c.items[i]
	if it.Instance != nil {
		vc := it.Instance
		if d, ok := vc.(DimensionUpdater); ok && vc.Surface().Size() != c.viewSize() {
			if err := d.UpdateDimensions(c.viewSize()); err != nil {
				return nil, err
			}
		}
		return vc, nil
	}
	vc, err := it.New(c.Env, c.viewSize())
	if err != nil {
		return nil, fmt.Errorf("tab %d %q: %w", i, it.Title, err)
	}
	if vc == nil {
		return nil, fmt.Errorf("tab %d %q: %w", i, it.Title, ErrNoController)
	}
	return vc, nil
}

// Select makes tab i the visible one. Selecting the selected tab, or another tab
// with the same instance, leaves the active controller alone.
// The new controller is built before the old one is torn down, so on error the old one stays.
func (c *TabBarController) Select(i int) error {
	if i < 0 || i >= len(c.items) {
		return invalid(ErrIndex, "select tab", i)
	}
	if i == c.index {
		return nil
	}
	next, err := c.controller(i)
	if err != nil {
		return err
	}
	if next == c.child {
		c.index = i
		c.bar.Selected = i
		return nil
	}
	if c.child != nil {
		c.Env.Deactivate(c.child)
		if c.items[c.index].Instance == nil {
			if cl, ok := c.child.(io.Closer); ok {
				if err := cl.Close(); err != nil {
					logf("tab bar: close tab %d: %s\n", c.index, err)
				}
			}
		}
	}
	c.child = next
	c.index = i
	c.bar.Selected = i
	if !c.Active() {
		return nil
	}
	return Navigate(c.Env, next)
}

// OnNavigatedTo navigates to the selected tab's controller.
func (c *TabBarController) OnNavigatedTo() {
	if c.child.Base().Active() {
		return
	}
	if err := Navigate(c.Env, c.child); err != nil {
		logf("tab bar: navigate tab %d: %s\n", c.index, err)
	}
}

func (c *TabBarController) Connect(s *Subscriptions) error {
	return c.bar.Connect(s)
}

// Children returns the selected controller, the only one that can be active.
func (c *TabBarController) Children() []ViewController {
	return []ViewController{c.child}
}

func (c *TabBarController) Hooks() Hook {
	return HookResize
}

func (c *TabBarController) DidResize(size image.Point) {
	if err := c.UpdateDimensions(size); err != nil {
		logf("tab bar: resize: %s\n", err)
	}
}

// UpdateDimensions resizes the controller, the bar to the new width, and the selected controller to the rest.
func (c *TabBarController) UpdateDimensions(size image.Point) error {
	if err := c.Controller.UpdateDimensions(size); err != nil {
		return err
	}
	if err := c.bar.UpdateDimensions(size.X); err != nil {
		return err
	}
	if d, ok := c.child.(DimensionUpdater); ok {
		return d.UpdateDimensions(c.viewSize())
	}
	return nil
}

func (c *TabBarController) Update(x, y int, delta float64) {
	c.bar.Update(x, y)
	c.child.Update(x, y+c.bar.Height(), delta)
}

// Render draws the selected controller below the bar, then the bar.
func (c *TabBarController) Render() {
	dst := c.Surface()
	c.child.Render()
	dst.Blit(c.child.Surface(), image.Pt(0, c.bar.Height()), nil)
	c.bar.Render()
	dst.Blit(c.bar.Surface(), image.ZP, nil)
}

package vcui

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

// tab is a tab content controller that fills itself with one color.
type tab struct {
	Controller

	color   color.Color
	closed  int
	updated image.Point
}

func (c *tab) Update(x, y int, delta float64) { c.updated = image.Pt(x, y) }
func (c *tab) Render()                        { c.Surface().Fill(c.color) }

func (c *tab) Close() error {
	c.closed++
	return nil
}

type tabFactory struct {
	color  color.Color
	builds int
	last   *tab
	err    error
}

func (f *tabFactory) New(env *Env, size image.Point) (ViewController, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.builds++
	c := &tab{color: f.color}
	if err := c.Init(env, size); err != nil {
		return nil, err
	}
	f.last = c
	return c, nil
}

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func newTestTabs(t *testing.T) (*Env, *TabBarController, *tabFactory, *tab, *tabFactory) {
	t.Helper()
	env := newTestEnv(t)
	f0 := &tabFactory{color: red}
	inst := &tab{color: green}
	require.NoError(t, inst.Init(env, image.Pt(10, 10)))
	f2 := &tabFactory{color: blue}
	c, err := NewTabBarController(env, image.Pt(800, 600), []TabItem{
		{Title: "one", New: f0.New},
		{Title: "two", Instance: inst},
		{Title: "three", New: f2.New},
	})
	require.NoError(t, err)
	require.NoError(t, Navigate(env, c))
	return env, c, f0, inst, f2
}

func TestTabBarControllerNew(t *testing.T) {
	env := newTestEnv(t)
	_, err := NewTabBarController(env, image.Pt(800, 600), nil)
	require.ErrorIs(t, err, ErrNoController)
	_, err = NewTabBarController(env, image.Pt(800, 600), []TabItem{{Title: "empty"}})
	require.ErrorIs(t, err, ErrNoController)

	f := &tabFactory{err: errors.New("boom")}
	_, err = NewTabBarController(env, image.Pt(800, 600), []TabItem{{Title: "bad", New: f.New}})
	require.Error(t, err)
}

func TestTabSelect(t *testing.T) {
	env, c, f0, inst, f2 := newTestTabs(t)
	i, vc := c.Selected()
	require.Equal(t, 0, i)
	require.True(t, vc == ViewController(f0.last))
	require.Equal(t, 1, f0.builds)
	require.True(t, f0.last.Active())
	require.Equal(t, image.Pt(800, 520), f0.last.Surface().Size())

	// reselecting does nothing
	require.NoError(t, c.Select(0))
	require.Equal(t, 1, f0.builds)

	first := f0.last
	require.NoError(t, c.Select(1))
	require.False(t, first.Active())
	require.Equal(t, 1, first.closed)
	require.True(t, inst.Active())
	require.Equal(t, image.Pt(800, 520), inst.Surface().Size(), "instance resized to the view")
	require.Equal(t, 1, c.Bar().Selected)

	require.NoError(t, c.Select(2))
	require.False(t, inst.Active())
	require.Zero(t, inst.closed, "instances are kept")
	require.Equal(t, 1, f2.builds)

	require.NoError(t, c.Select(1))
	_, vc = c.Selected()
	require.True(t, vc == ViewController(inst))
	require.Equal(t, 1, f2.last.closed)

	require.NoError(t, c.Select(0))
	require.Equal(t, 2, f0.builds)

	require.ErrorIs(t, c.Select(3), ErrIndex)
	require.ErrorIs(t, c.Select(-1), ErrIndex)

	env.Deactivate(c)
	require.Zero(t, subscriptionCount(env))
}

func TestTabSelectError(t *testing.T) {
	_, c, f0, _, f2 := newTestTabs(t)
	f2.err = errors.New("no tab today")
	require.Error(t, c.Select(2))
	i, vc := c.Selected()
	require.Equal(t, 0, i)
	require.True(t, vc == ViewController(f0.last))
	require.True(t, f0.last.Active())
	require.Zero(t, f0.last.closed)
	require.Equal(t, 0, c.Bar().Selected)
}

func TestTabSharedInstance(t *testing.T) {
	env := newTestEnv(t)
	s := &hooked{}
	require.NoError(t, s.Init(env, image.Pt(10, 10)))
	c, err := NewTabBarController(env, image.Pt(800, 600), []TabItem{{Title: "a", Instance: s}, {Title: "b", Instance: s}})
	require.NoError(t, err)
	require.NoError(t, Navigate(env, c))
	require.Equal(t, []string{"connect", "navigated", "did-navigate"}, s.calls)

	require.NoError(t, c.Select(1))
	require.Equal(t, []string{"connect", "navigated", "did-navigate"}, s.calls, "same instance stays active")
	require.True(t, s.Active())
	i, vc := c.Selected()
	require.Equal(t, 1, i)
	require.True(t, vc == ViewController(s))
	require.Equal(t, 1, c.Bar().Selected)
}

func TestTabInactiveSelect(t *testing.T) {
	env := newTestEnv(t)
	f0 := &tabFactory{color: red}
	f1 := &tabFactory{color: green}
	c, err := NewTabBarController(env, image.Pt(800, 600), []TabItem{{Title: "a", New: f0.New}, {Title: "b", New: f1.New}})
	require.NoError(t, err)
	require.False(t, f0.last.Active())
	require.NoError(t, c.Select(1))
	require.False(t, f1.last.Active())
	require.Zero(t, subscriptionCount(env))

	require.NoError(t, Navigate(env, c))
	require.True(t, f1.last.Active())
}

func TestTabClick(t *testing.T) {
	env, c, _, inst, _ := newTestTabs(t)
	c.Update(0, 0, 16)
	env.Bus.Dispatch([]Event{ButtonDownEvent(image.Pt(400, 40), ButtonLeft), ButtonUpEvent(image.Pt(400, 40), ButtonLeft)})
	i, _ := c.Selected()
	require.Equal(t, 1, i)
	require.True(t, inst.Active())

	// below the bar is the tab's area
	c.Update(0, 0, 16)
	env.Bus.Dispatch([]Event{ButtonDownEvent(image.Pt(700, 100), ButtonLeft), ButtonUpEvent(image.Pt(700, 100), ButtonLeft)})
	i, _ = c.Selected()
	require.Equal(t, 1, i)

	env.Bus.Dispatch([]Event{ButtonDownEvent(image.Pt(700, 10), ButtonLeft), ButtonUpEvent(image.Pt(700, 10), ButtonLeft)})
	i, _ = c.Selected()
	require.Equal(t, 2, i)
}

func TestTabUpdateRender(t *testing.T) {
	_, c, f0, _, _ := newTestTabs(t)
	c.Update(5, 7, 16)
	require.Equal(t, image.Pt(5, 87), f0.last.updated)

	c.Render()
	dst := c.Surface().(*Bitmap)
	require.Equal(t, red, dst.At(image.Pt(400, 300)))
	require.Equal(t, red, dst.At(image.Pt(10, 80)))
	// bar color between the titles, marker under the selected tab
	require.Equal(t, color.RGBA{0x28, 0x28, 0x28, 0xff}, dst.At(image.Pt(266, 2)))
	require.Equal(t, color.RGBA{0xb4, 0xb4, 0xb4, 0xff}, dst.At(image.Pt(5, 79)))
	require.Equal(t, color.RGBA{0x28, 0x28, 0x28, 0xff}, dst.At(image.Pt(300, 79)))
}

func TestTabResize(t *testing.T) {
	env, c, f0, _, _ := newTestTabs(t)
	env.Bus.Dispatch([]Event{ResizeEvent(1000, 700)})
	require.Equal(t, image.Pt(1000, 700), c.Surface().Size())
	require.Equal(t, image.Pt(1000, 80), c.Bar().Surface().Size())
	require.Equal(t, image.Pt(1000, 620), f0.last.Surface().Size())

	b := c.Bar().Buttons()
	require.Len(t, b, 3)
	require.Equal(t, 0, b[0].Rect.Min.X)
	require.Equal(t, 1000, b[2].Rect.Max.X)
	require.Equal(t, 80, b[1].Rect.Dy())
}

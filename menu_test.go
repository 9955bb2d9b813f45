package vcui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMenuController(t *testing.T) {
	env := newTestEnv(t)
	_, err := NewMenuController(env, image.Pt(800, 600), Top)
	require.ErrorIs(t, err, ErrInvalidOrientation)

	m, err := NewMenuController(env, image.Pt(800, 600), Right)
	require.NoError(t, err)
	require.Equal(t, Right, m.Side())
	require.Equal(t, image.Pt(400, 600), m.Surface().Size())
	require.Equal(t, image.Pt(400, 1600), m.Content().Size())
	require.Equal(t, image.Pt(400, 0), m.Position(image.Pt(800, 600)))

	require.NoError(t, m.SetSide(Left))
	require.Equal(t, image.ZP, m.Position(image.Pt(800, 600)))
	require.ErrorIs(t, m.SetSide(Center), ErrInvalidOrientation)
	require.Equal(t, Left, m.Side())

	small, err := NewMenuController(env, image.Pt(300, 200), Left)
	require.NoError(t, err)
	require.Equal(t, image.Pt(300, 200), small.Surface().Size())
}

func TestMenuItems(t *testing.T) {
	env := newTestEnv(t)
	m, err := NewMenuController(env, image.Pt(800, 600), Right)
	require.NoError(t, err)
	var hits []int
	for i := 0; i < 3; i++ {
		i := i
		_, err := m.AddItem("item", func() { hits = append(hits, i) })
		require.NoError(t, err)
	}
	require.Len(t, m.Items(), 3)
	require.Equal(t, image.Rect(0, 140, 400, 200), m.Items()[1].Rect)

	require.NoError(t, Navigate(env, m))
	m.Update(400, 0, 16)
	click(env, image.Pt(410, 150), ButtonLeft)
	require.Equal(t, []int{1}, hits)

	m.ScrollToY(-50)
	m.Update(400, 0, 16)
	click(env, image.Pt(410, 150), ButtonLeft)
	require.Equal(t, []int{1, 2}, hits)
	click(env, image.Pt(10, 150), ButtonLeft)
	require.Equal(t, []int{1, 2}, hits, "left of the panel")

	env.Deactivate(m)
	require.Zero(t, subscriptionCount(env))
	click(env, image.Pt(410, 150), ButtonLeft)
	require.Len(t, hits, 2)
}

func TestMenuResize(t *testing.T) {
	env := newTestEnv(t)
	m, err := NewMenuController(env, image.Pt(800, 600), Right)
	require.NoError(t, err)
	require.NoError(t, Navigate(env, m))
	m.ScrollToY(-300)

	require.NoError(t, m.UpdateDimensions(image.Pt(1200, 900)))
	require.Equal(t, image.Pt(400, 900), m.Surface().Size())
	require.Equal(t, image.Pt(400, 1900), m.Content().Size())
	require.Equal(t, image.Pt(800, 0), m.Position(image.Pt(1200, 900)))
	_, y := m.Offset()
	require.Equal(t, -300.0, y)

	m.Update(800, 0, 16)
	m.Render()
	dst := m.Surface().(*Bitmap)
	require.Equal(t, m.Background, dst.At(image.Pt(5, 890)))
	require.Equal(t, image.Pt(200, menuTitleY), m.Title.Position)
}

func TestMenuItemsClipped(t *testing.T) {
	env := newTestEnv(t)
	m, err := NewMenuController(env, image.Pt(800, 600), Right)
	require.NoError(t, err)
	var hits []int
	for i := 0; i < 3; i++ {
		i := i
		_, err := m.AddItem("item", func() { hits = append(hits, i) })
		require.NoError(t, err)
	}
	require.NoError(t, Navigate(env, m))
	m.ScrollToY(-150)
	m.Update(400, 80, 16)
	require.Equal(t, image.Rect(400, 80, 776, 680), *m.Items()[0].Clip)

	// item 0 is scrolled above the panel
	click(env, image.Pt(410, 30), ButtonLeft)
	require.Empty(t, hits)
	click(env, image.Pt(410, 100), ButtonLeft)
	require.Equal(t, []int{1}, hits)

	// the thumb lies over item 2
	env.Bus.Dispatch([]Event{ButtonDownEvent(image.Pt(790, 180), ButtonLeft)})
	a, err := m.Axis(Vertical)
	require.NoError(t, err)
	require.True(t, a.Dragging)
	require.Equal(t, []int{1}, hits)
	env.Bus.Dispatch([]Event{ButtonUpEvent(image.Pt(790, 180), ButtonLeft)})
	_, y := m.Offset()
	require.InDelta(t, -150, y, 1e-9)
}

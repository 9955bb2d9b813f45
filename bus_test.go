package vcui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBusOrder(t *testing.T) {
	b := NewBus()
	var l []string
	add := func(c Category, name string) {
		_, err := b.Subscribe(c, func(e Event) {
			l = append(l, name+":"+e.Type.String())
		})
		require.NoError(t, err)
	}
	add(CategoryUpdate, "update")
	add(CategoryMousePress, "press")
	add(CategoryKeyDown, "keydown")
	add(CategoryAny, "any")
	add(CategoryEarlyUpdate, "early")

	b.Dispatch([]Event{KeyDownEvent('a', 'a'), ButtonDownEvent(image.Pt(1, 2), ButtonLeft)})
	require.Equal(t, []string{
		"early:keydown", // zero Event
		"any:keydown",
		"keydown:keydown",
		"any:mousebuttondown",
		"press:mousepress",
		"update:keydown",
	}, l)

	// no held buttons, no aggregate
	l = nil
	b.Dispatch([]Event{ButtonUpEvent(image.Pt(1, 2), ButtonLeft)})
	require.Equal(t, []string{"early:keydown", "any:mousebuttonup", "update:keydown"}, l)
}

func TestBusSubscribe(t *testing.T) {
	b := NewBus()
	_, err := b.Subscribe(numCategories, func(Event) {})
	require.ErrorIs(t, err, ErrInvalidCategory)
	_, err = b.Subscribe(CategoryAny, nil)
	require.ErrorIs(t, err, ErrInvalidCategory)

	t1, err := b.Subscribe(CategoryAny, func(Event) {})
	require.NoError(t, err)
	t2, err := b.Subscribe(CategoryAny, func(Event) {})
	require.NoError(t, err)
	require.NotZero(t, t1)
	require.NotEqual(t, t1, t2)
	require.Equal(t, 2, b.Len(CategoryAny))

	require.True(t, b.Unsubscribe(t1))
	require.False(t, b.Unsubscribe(t1))
	require.False(t, b.Unsubscribe(Token(1000)))
	require.Equal(t, 1, b.Len(CategoryAny))
}

func TestBusChangesDuringPass(t *testing.T) {
	b := NewBus()
	var added, removed int
	var victim Token
	_, err := b.Subscribe(CategoryUpdate, func(Event) {
		b.Unsubscribe(victim)
		_, err := b.Subscribe(CategoryUpdate, func(Event) { added++ })
		require.NoError(t, err)
	})
	require.NoError(t, err)
	victim, err = b.Subscribe(CategoryUpdate, func(Event) { removed++ })
	require.NoError(t, err)

	b.Dispatch(nil)
	require.Equal(t, 0, removed, "unsubscribed in the same pass")
	require.Equal(t, 0, added, "subscribed during the pass")

	b.Dispatch(nil)
	require.Equal(t, 0, removed)
	require.Equal(t, 1, added)
	require.Equal(t, 3, b.Len(CategoryUpdate))
}

func TestBusHeld(t *testing.T) {
	b := NewBus()
	var presses []Event
	_, err := b.Subscribe(CategoryMousePress, func(e Event) { presses = append(presses, e) })
	require.NoError(t, err)

	b.Dispatch([]Event{ButtonDownEvent(image.Pt(5, 5), ButtonLeft), ButtonDownEvent(image.Pt(5, 5), ButtonRight)})
	require.Equal(t, Button1|Button3, b.Held())

	b.Dispatch([]Event{MotionEvent(image.Pt(7, 9), image.Pt(2, 4), Button1|Button3)})
	require.Equal(t, image.Pt(7, 9), b.Pointer())
	require.Len(t, presses, 2)
	require.Equal(t, image.Pt(7, 9), presses[1].Pos)
	require.True(t, presses[1].Held(ButtonLeft))
	require.True(t, presses[1].Held(ButtonRight))
	require.False(t, presses[1].Held(ButtonMiddle))

	// release of a button that is not held is ignored
	b.Dispatch([]Event{ButtonUpEvent(image.Pt(7, 9), ButtonMiddle)})
	require.Equal(t, Button1|Button3, b.Held())

	b.Dispatch([]Event{ButtonUpEvent(image.Pt(7, 9), ButtonLeft), ButtonUpEvent(image.Pt(7, 9), ButtonRight)})
	require.Zero(t, b.Held())
	require.Len(t, presses, 3)
	b.Dispatch(nil)
	require.Len(t, presses, 3)
}

func TestBusNestedDispatch(t *testing.T) {
	b := NewBus()
	n := 0
	_, err := b.Subscribe(CategoryUpdate, func(Event) {
		n++
		b.Dispatch(nil)
	})
	require.NoError(t, err)
	b.Dispatch(nil)
	require.Equal(t, 1, n)
}

func TestSubscriptions(t *testing.T) {
	b := NewBus()
	s := NewSubscriptions(b)
	require.ErrorIs(t, s.Add(Category(200), func(Event) {}), ErrInvalidCategory)
	n := 0
	require.NoError(t, s.Add(CategoryAny, func(Event) { n++ }))
	require.NoError(t, s.Add(CategoryKeyDown, func(Event) { n++ }))
	require.Equal(t, 2, s.Len())

	b.Dispatch([]Event{KeyDownEvent(KeyEnter, 0)})
	require.Equal(t, 2, n)

	s.Close()
	s.Close()
	require.Zero(t, s.Len())
	require.Zero(t, b.Len(CategoryAny))
	b.Dispatch([]Event{KeyDownEvent(KeyEnter, 0)})
	require.Equal(t, 2, n)
}

func TestCategory(t *testing.T) {
	require.Equal(t, "mousepress", CategoryMousePress.String())
	require.False(t, numCategories.Valid())
	require.Equal(t, "Category(42)", Category(42).String())
	c, ok := EventWindowResize.category()
	require.True(t, ok)
	require.Equal(t, CategoryWindowResize, c)
	_, ok = EventQuit.category()
	require.False(t, ok)
	require.Equal(t, 0, Mask(0))
	require.Equal(t, Button5, Mask(WheelDown))
}

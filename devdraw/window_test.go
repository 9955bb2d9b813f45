package devdraw

import (
	"image"
	"image/color"
	"testing"

	"9fans.net/go/draw"
	"github.com/stretchr/testify/require"

	"github.com/mjl-/vcui"
)

func mouse(x, y, buttons int) draw.Mouse {
	return draw.Mouse{Point: image.Pt(x, y), Buttons: buttons}
}

func TestMouseEvents(t *testing.T) {
	require.Empty(t, mouseEvents(mouse(1, 1, 0), mouse(1, 1, 0)))

	l := mouseEvents(mouse(1, 1, 0), mouse(4, 3, vcui.Button1))
	require.Equal(t, []vcui.Event{
		vcui.MotionEvent(image.Pt(4, 3), image.Pt(3, 2), vcui.Button1),
		vcui.ButtonDownEvent(image.Pt(4, 3), vcui.ButtonLeft),
	}, l)

	l = mouseEvents(mouse(4, 3, vcui.Button1), mouse(4, 3, vcui.Button3|vcui.Button5))
	require.Equal(t, []vcui.Event{
		vcui.ButtonUpEvent(image.Pt(4, 3), vcui.ButtonLeft),
		vcui.ButtonDownEvent(image.Pt(4, 3), vcui.ButtonRight),
		vcui.ButtonDownEvent(image.Pt(4, 3), vcui.WheelDown),
	}, l)
}

func TestKeyEvents(t *testing.T) {
	require.Equal(t, []vcui.Event{vcui.KeyDownEvent('a', 'a'), vcui.KeyUpEvent('a')}, keyEvents('a'))
	require.Equal(t, []vcui.Event{vcui.KeyDownEvent(vcui.KeyEnter, 0), vcui.KeyUpEvent(vcui.KeyEnter)}, keyEvents('\n'))
	require.Equal(t, vcui.KeyUp, keyEvents(draw.KeyUp)[0].Code)
	require.Equal(t, vcui.KeyPageDown, keyEvents(draw.KeyPageDown)[0].Code)
	require.Zero(t, keyEvents(draw.KeyLeft)[0].Char)
	require.Equal(t, vcui.KeyBackspace, keyEvents('\b')[0].Code)
	require.Zero(t, keyEvents('\b')[0].Char)
	require.Equal(t, 'é', keyEvents('é')[0].Char)
}

func TestDrawColor(t *testing.T) {
	require.Equal(t, draw.Color(0xff0000ff), drawColor(color.RGBA{255, 0, 0, 255}))
	require.Equal(t, draw.Color(0x00000000), drawColor(color.Transparent))
	// premultiplied
	require.Equal(t, draw.Color(0x7f00007f), drawColor(color.NRGBA{255, 0, 0, 127}))
}

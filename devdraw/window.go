package devdraw

import (
	"fmt"
	"image"
	"io"
	"log"

	"9fans.net/go/draw"

	"github.com/mjl-/vcui"
)

// Window is a devdraw window as a vcui.Window.
type Window struct {
	*Backend

	events   chan vcui.Event
	mousectl *draw.Mousectl
	keyctl   *draw.Keyboardctl
	stop     chan struct{}
}

var _ vcui.Window = &Window{}

// Open opens a window titled name. Dim is the initial size, e.g. "800x600", empty for the devdraw default.
// Input is read on a goroutine and delivered on Events.
func Open(name, dim string) (*Window, error) {
	errch := make(chan error, 1)
	display, err := draw.Init(errch, "", name, dim)
	if err != nil {
		return nil, fmt.Errorf("devdraw init: %w", err)
	}
	w := &Window{
		Backend:  NewBackend(display),
		events:   make(chan vcui.Event, 64),
		mousectl: display.InitMouse(),
		keyctl:   display.InitKeyboard(),
		stop:     make(chan struct{}, 1),
	}
	go w.pump(errch)
	return w, nil
}

func (w *Window) pump(errch <-chan error) {
	defer close(w.events)
	var prev draw.Mouse
	for {
		select {
		case m := <-w.mousectl.C:
			m.Point = m.Point.Sub(w.origin())
			for _, e := range mouseEvents(prev, m) {
				w.events <- e
			}
			prev = m
		case k := <-w.keyctl.C:
			for _, e := range keyEvents(k) {
				w.events <- e
			}
		case <-w.mousectl.Resize:
			if err := w.Display.Attach(draw.Refmesg); err != nil {
				log.Printf("devdraw: attach after resize: %s\n", err)
				continue
			}
			size := w.Size()
			w.events <- vcui.ResizeEvent(size.X, size.Y)
		case <-w.stop:
			return
		case err := <-errch:
			if err != io.EOF {
				log.Printf("devdraw: %s\n", err)
			}
			// devdraw went away, typically because the window was closed
			w.events <- vcui.Event{Type: vcui.EventQuit}
			return
		}
	}
}

func (w *Window) origin() image.Point {
	return w.Display.ScreenImage.R.Min
}

func (w *Window) Events() <-chan vcui.Event {
	return w.events
}

func (w *Window) Size() image.Point {
	return w.Display.ScreenImage.R.Size()
}

// Present draws s on the screen and flushes.
func (w *Window) Present(s vcui.Surface) error {
	ds, err := w.surface(s)
	if err != nil {
		return err
	}
	screen := w.Display.ScreenImage
	screen.Draw(screen.R, ds.img, nil, image.ZP)
	return w.Display.Flush()
}

func (w *Window) Close() error {
	w.stop <- struct{}{}
	return w.Display.Close()
}

// mouseEvents translates the change between two mouse states into events: a motion
// event if the pointer moved, then a button down or up for each button whose state changed.
// Devdraw reports wheel steps as buttons 4 and 5, as vcui does.
func mouseEvents(prev, cur draw.Mouse) []vcui.Event {
	var l []vcui.Event
	if cur.Point != prev.Point {
		l = append(l, vcui.MotionEvent(cur.Point, cur.Point.Sub(prev.Point), cur.Buttons))
	}
	for b := vcui.ButtonLeft; b <= vcui.WheelDown; b++ {
		m := vcui.Mask(b)
		switch {
		case cur.Buttons&m != 0 && prev.Buttons&m == 0:
			l = append(l, vcui.ButtonDownEvent(cur.Point, b))
		case cur.Buttons&m == 0 && prev.Buttons&m != 0:
			l = append(l, vcui.ButtonUpEvent(cur.Point, b))
		}
	}
	return l
}

// keyEvents returns a key down and up for k, devdraw only reports key presses.
func keyEvents(k rune) []vcui.Event {
	code, char := int(k), k
	switch k {
	case '\n', '\r':
		code = vcui.KeyEnter
	case draw.KeyDelete:
		code = vcui.KeyDelete
	case draw.KeyEscape:
		code = vcui.KeyEscape
	case draw.KeyUp:
		code, char = vcui.KeyUp, 0
	case draw.KeyDown:
		code, char = vcui.KeyDown, 0
	case draw.KeyLeft:
		code, char = vcui.KeyLeft, 0
	case draw.KeyRight:
		code, char = vcui.KeyRight, 0
	case draw.KeyPageUp:
		code, char = vcui.KeyPageUp, 0
	case draw.KeyPageDown:
		code, char = vcui.KeyPageDown, 0
	}
	switch code {
	case vcui.KeyEnter, vcui.KeyDelete, vcui.KeyEscape, vcui.KeyBackspace, vcui.KeyTab:
		char = 0
	}
	return []vcui.Event{vcui.KeyDownEvent(code, char), vcui.KeyUpEvent(code)}
}

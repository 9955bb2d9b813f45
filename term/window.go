package term

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/mjl-/vcui"
)

// Window is a tcell screen as a vcui.Window. Ctrl-C is delivered as a quit event.
type Window struct {
	Backend

	screen tcell.Screen
	events chan vcui.Event
}

var _ vcui.Window = &Window{}

// Open initializes the terminal and returns a window on it.
func Open() (*Window, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return NewWindow(s)
}

// NewWindow initializes s, enables the mouse and starts reading its events.
func NewWindow(s tcell.Screen) (*Window, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.EnableMouse()
	s.Clear()
	w := &Window{screen: s, events: make(chan vcui.Event, 64)}
	go w.pump()
	return w, nil
}

// Screen returns the underlying tcell screen.
func (w *Window) Screen() tcell.Screen {
	return w.screen
}

func (w *Window) pump() {
	defer close(w.events)
	var t translator
	for {
		ev := w.screen.PollEvent()
		if ev == nil {
			// screen finalized
			return
		}
		for _, e := range t.events(ev) {
			w.events <- e
		}
	}
}

func (w *Window) Events() <-chan vcui.Event {
	return w.events
}

func (w *Window) Size() image.Point {
	x, y := w.screen.Size()
	return image.Pt(x, y)
}

func style(c Cell) tcell.Style {
	return tcell.StyleDefault.
		Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B))).
		Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B)))
}

// Present writes the cells of s to the screen and shows it.
func (w *Window) Present(s vcui.Surface) error {
	ss, ok := s.(*Surface)
	if !ok {
		return fmt.Errorf("term: present %T: %w", s, vcui.ErrNoBackend)
	}
	for y := 0; y < ss.size.Y; y++ {
		for x := 0; x < ss.size.X; x++ {
			c := ss.cells[y*ss.size.X+x]
			if c.Wide {
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			w.screen.SetContent(x, y, r, nil, style(c))
		}
	}
	w.screen.Show()
	return nil
}

// Close restores the terminal.
func (w *Window) Close() error {
	w.screen.Fini()
	return nil
}

// translator turns tcell events into vcui events. It keeps the mouse state,
// tcell reports the buttons held, not the changes.
type translator struct {
	pos     image.Point
	buttons int
}

var mouseButtons = []struct {
	tcell tcell.ButtonMask
	vcui  int
}{
	{tcell.Button1, vcui.ButtonLeft},
	{tcell.Button3, vcui.ButtonMiddle},
	{tcell.Button2, vcui.ButtonRight},
}

var keys = map[tcell.Key]int{
	tcell.KeyEnter:      vcui.KeyEnter,
	tcell.KeyTab:        vcui.KeyTab,
	tcell.KeyBackspace:  vcui.KeyBackspace,
	tcell.KeyBackspace2: vcui.KeyBackspace,
	tcell.KeyDelete:     vcui.KeyDelete,
	tcell.KeyEscape:     vcui.KeyEscape,
	tcell.KeyUp:         vcui.KeyUp,
	tcell.KeyDown:       vcui.KeyDown,
	tcell.KeyLeft:       vcui.KeyLeft,
	tcell.KeyRight:      vcui.KeyRight,
	tcell.KeyPgUp:       vcui.KeyPageUp,
	tcell.KeyPgDn:       vcui.KeyPageDown,
}

func (t *translator) events(ev tcell.Event) []vcui.Event {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return []vcui.Event{vcui.ResizeEvent(w, h)}
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return []vcui.Event{{Type: vcui.EventQuit}}
		}
		if ev.Key() == tcell.KeyRune {
			r := ev.Rune()
			return []vcui.Event{vcui.KeyDownEvent(int(r), r), vcui.KeyUpEvent(int(r))}
		}
		code, ok := keys[ev.Key()]
		if !ok {
			return nil
		}
		return []vcui.Event{vcui.KeyDownEvent(code, 0), vcui.KeyUpEvent(code)}
	case *tcell.EventMouse:
		return t.mouse(ev)
	}
	return nil
}

func (t *translator) mouse(ev *tcell.EventMouse) []vcui.Event {
	x, y := ev.Position()
	pos := image.Pt(x, y)
	held := 0
	for _, b := range mouseButtons {
		if ev.Buttons()&b.tcell != 0 {
			held |= vcui.Mask(b.vcui)
		}
	}

	var l []vcui.Event
	if pos != t.pos {
		l = append(l, vcui.MotionEvent(pos, pos.Sub(t.pos), held))
	}
	for _, b := range mouseButtons {
		m := vcui.Mask(b.vcui)
		switch {
		case held&m != 0 && t.buttons&m == 0:
			l = append(l, vcui.ButtonDownEvent(pos, b.vcui))
		case held&m == 0 && t.buttons&m != 0:
			l = append(l, vcui.ButtonUpEvent(pos, b.vcui))
		}
	}
	// wheel steps have no release in tcell
	if ev.Buttons()&tcell.WheelUp != 0 {
		l = append(l, vcui.ButtonDownEvent(pos, vcui.WheelUp), vcui.ButtonUpEvent(pos, vcui.WheelUp))
	}
	if ev.Buttons()&tcell.WheelDown != 0 {
		l = append(l, vcui.ButtonDownEvent(pos, vcui.WheelDown), vcui.ButtonUpEvent(pos, vcui.WheelDown))
	}
	t.pos = pos
	t.buttons = held
	return l
}

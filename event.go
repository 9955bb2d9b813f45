package vcui

import (
	"fmt"
	"image"
)

// Mouse buttons, as reported in MouseButtonDown/MouseButtonUp events.
const (
	ButtonLeft   = 1
	ButtonMiddle = 2
	ButtonRight  = 3
	WheelUp      = 4
	WheelDown    = 5
)

// Button masks, for Event.Buttons.
const (
	Button1 = 1 << iota
	Button2
	Button3
	Button4
	Button5
)

// Mask returns the mask bit for button b, or 0 if b is not a valid button.
func Mask(b int) int {
	if b < ButtonLeft || b > WheelDown {
		return 0
	}
	return 1 << uint(b-1)
}

// Key codes for keys without a printable character.
const (
	KeyBackspace = 0x08
	KeyTab       = 0x09
	KeyEnter     = 0x0d
	KeyEscape    = 0x1b
	KeyDelete    = 0x7f
)

// Navigation keys.
const (
	KeyUp = 0x100 + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
)

// EventType identifies a normalized platform event.
type EventType byte

const (
	EventKeyDown = EventType(iota)
	EventKeyUp
	EventMouseMotion
	EventMouseButtonDown
	EventMouseButtonUp
	EventWindowResize
	EventMousePress // synthesized once per frame while buttons are held
	EventQuit
)

var eventTypeNames = [...]string{
	"keydown",
	"keyup",
	"mousemotion",
	"mousebuttondown",
	"mousebuttonup",
	"windowresize",
	"mousepress",
	"quit",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", t)
}

// Event is a normalized input event. Only the fields relevant to its Type are set.
type Event struct {
	Type    EventType
	Pos     image.Point // pointer position in window coordinates
	Rel     image.Point // motion since last motion event
	Button  int         // for button down/up
	Buttons int         // mask of held buttons, for motion and press
	Code    int         // key code
	Char    rune        // key character, 0 if none
	Size    image.Point // for resize
}

// Held reports whether button b is in the event's button mask.
func (e Event) Held(b int) bool {
	return e.Buttons&Mask(b) != 0
}

func KeyDownEvent(code int, char rune) Event {
	return Event{Type: EventKeyDown, Code: code, Char: char}
}

func KeyUpEvent(code int) Event {
	return Event{Type: EventKeyUp, Code: code}
}

func MotionEvent(pos, rel image.Point, buttons int) Event {
	return Event{Type: EventMouseMotion, Pos: pos, Rel: rel, Buttons: buttons}
}

func ButtonDownEvent(pos image.Point, button int) Event {
	return Event{Type: EventMouseButtonDown, Pos: pos, Button: button}
}

func ButtonUpEvent(pos image.Point, button int) Event {
	return Event{Type: EventMouseButtonUp, Pos: pos, Button: button}
}

func ResizeEvent(w, h int) Event {
	return Event{Type: EventWindowResize, Size: image.Pt(w, h)}
}

// Category selects which callbacks an event is delivered to.
type Category byte

const (
	CategoryEarlyUpdate = Category(iota) // start of frame, no event
	CategoryAny                          // every platform event
	CategoryKeyDown
	CategoryKeyUp
	CategoryMouseMotion
	CategoryMouseButtonDown
	CategoryMouseButtonUp
	CategoryWindowResize
	CategoryMousePress // aggregate held-button state, once per frame
	CategoryUpdate     // end of frame, no event
	numCategories
)

var categoryNames = [...]string{
	"early-update",
	"any",
	"keydown",
	"keyup",
	"mousemotion",
	"mousebuttondown",
	"mousebuttonup",
	"windowresize",
	"mousepress",
	"update",
}

func (c Category) Valid() bool {
	return c < numCategories
}

func (c Category) String() string {
	if c.Valid() {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", c)
}

// category returns the category an event type is dispatched to, besides CategoryAny.
func (t EventType) category() (Category, bool) {
	switch t {
	case EventKeyDown:
		return CategoryKeyDown, true
	case EventKeyUp:
		return CategoryKeyUp, true
	case EventMouseMotion:
		return CategoryMouseMotion, true
	case EventMouseButtonDown:
		return CategoryMouseButtonDown, true
	case EventMouseButtonUp:
		return CategoryMouseButtonUp, true
	case EventWindowResize:
		return CategoryWindowResize, true
	case EventMousePress:
		return CategoryMousePress, true
	}
	return 0, false
}

package vcui

import (
	"image"
	"log"
)

// Handler is called for each event in a category it subscribed to.
// For CategoryEarlyUpdate and CategoryUpdate the event is the zero Event.
type Handler func(e Event)

// Token identifies a subscription. Zero is never a valid token.
type Token uint64

type subscription struct {
	token    Token
	category Category
	fn       Handler
	expired  bool
}

// Bus is the registry of callbacks per event category, driving all widget interactivity.
//
// The bus only observes: a subscriber owns its callback and must unsubscribe
// with its token on teardown. Subscriptions made during a dispatch pass fire
// from the next pass on. Unsubscribing during a pass expires the entry at once,
// it is skipped for the rest of the pass and removed when the next pass starts.
type Bus struct {
	LogEvents bool // log every dispatched event

	lists   [numCategories][]*subscription
	tokens  map[Token]*subscription
	next    Token
	expired int
	held    int // mask of held buttons
	pointer image.Point
	inPass  bool
}

func NewBus() *Bus {
	return &Bus{tokens: map[Token]*subscription{}}
}

// Subscribe adds fn to the end of category c's callback list.
func (b *Bus) Subscribe(c Category, fn Handler) (Token, error) {
	if !c.Valid() {
		return 0, invalid(ErrInvalidCategory, "subscribe", c)
	}
	if fn == nil {
		return 0, invalid(ErrInvalidCategory, "subscribe nil handler for", c)
	}
	b.next++
	s := &subscription{token: b.next, category: c, fn: fn}
	b.lists[c] = append(b.lists[c], s)
	b.tokens[s.token] = s
	return s.token, nil
}

// Unsubscribe removes the subscription for t. It reports whether t was subscribed.
func (b *Bus) Unsubscribe(t Token) bool {
	s, ok := b.tokens[t]
	if !ok {
		return false
	}
	delete(b.tokens, t)
	s.expired = true
	b.expired++
	return true
}

// Len returns the number of live subscriptions in category c.
func (b *Bus) Len(c Category) int {
	if !c.Valid() {
		return 0
	}
	n := 0
	for _, s := range b.lists[c] {
		if !s.expired {
			n++
		}
	}
	return n
}

// Held returns the mask of currently held mouse buttons.
func (b *Bus) Held() int {
	return b.held
}

// Pointer returns the last known pointer position.
func (b *Bus) Pointer() image.Point {
	return b.pointer
}

func (b *Bus) compact() {
	if b.expired == 0 {
		return
	}
	for c := range b.lists {
		var l []*subscription
		for _, s := range b.lists[c] {
			if !s.expired {
				l = append(l, s)
			}
		}
		b.lists[c] = l
	}
	b.expired = 0
}

// Dispatch runs one pass over the frame's events, in fixed order: early-update
// callbacks, then for each event in arrival order the "any" callbacks followed by
// the event's own category, then one aggregate mouse-press event if buttons are
// held, then the update callbacks.
func (b *Bus) Dispatch(events []Event) {
	if b.inPass {
		log.Printf("vcui: nested dispatch ignored")
		return
	}
	b.compact()
	lists := b.lists // the pass sees only subscriptions present now
	b.inPass = true
	defer func() {
		b.inPass = false
	}()

	fire := func(l []*subscription, e Event) {
		for _, s := range l {
			if s.expired {
				continue
			}
			s.fn(e)
		}
	}

	fire(lists[CategoryEarlyUpdate], Event{})
	for _, e := range events {
		if b.LogEvents {
			log.Printf("vcui: event %s %+v\n", e.Type, e)
		}
		fire(lists[CategoryAny], e)
		if c, ok := e.Type.category(); ok {
			fire(lists[c], e)
		}
		b.track(e)
	}
	if b.held != 0 {
		fire(lists[CategoryMousePress], Event{Type: EventMousePress, Pos: b.pointer, Buttons: b.held})
	}
	fire(lists[CategoryUpdate], Event{})
}

// track updates pointer position and held buttons after an event was delivered.
func (b *Bus) track(e Event) {
	switch e.Type {
	case EventMouseMotion:
		b.pointer = e.Pos
	case EventMouseButtonDown:
		b.pointer = e.Pos
		b.held |= Mask(e.Button)
	case EventMouseButtonUp:
		b.pointer = e.Pos
		m := Mask(e.Button)
		if b.held&m == 0 {
			logf("release of button %d that was not pressed\n", e.Button)
			return
		}
		b.held &^= m
	}
}

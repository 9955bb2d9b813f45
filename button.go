package vcui

import (
	"image"
	"image/color"
)

// Trigger selects which mouse event runs a button's Click.
type Trigger int

const (
	TriggerClick   = Trigger(iota + 1) // on button down
	TriggerPress                       // every frame the button is held
	TriggerRelease                     // on button up
)

func (t Trigger) category() (Category, error) {
	switch t {
	case TriggerClick:
		return CategoryMouseButtonDown, nil
	case TriggerPress:
		return CategoryMousePress, nil
	case TriggerRelease:
		return CategoryMouseButtonUp, nil
	}
	return 0, invalid(ErrInvalidMode, "button trigger", int(t))
}

// Button is a rectangle with optional centered text, that calls Click when hit.
// A nil Color draws no background.
type Button struct {
	Rect               image.Rectangle
	Text               string
	Font               Font
	Color              color.Color
	HighlightColor     color.Color // background while hovered, nil keeps Color
	TextColor          color.Color
	TextHighlightColor color.Color // nil keeps TextColor
	Disabled           bool
	Click              func()

	// Clip, if set, is the screen area in which the pointer can hit the button.
	Clip *image.Rectangle

	trigger Trigger
	button  int
	hover   bool
	offset  image.Point
	text    StaticText
}

// NewButton returns a grey button at r, triggered by a left click.
func NewButton(env *Env, text string, r image.Rectangle) (*Button, error) {
	f, err := env.Font()
	if err != nil {
		return nil, err
	}
	return &Button{
		Rect:               r,
		Text:               text,
		Font:               f,
		Color:              color.RGBA{235, 235, 235, 255},
		HighlightColor:     color.RGBA{160, 160, 160, 255},
		TextColor:          color.RGBA{25, 25, 25, 255},
		TextHighlightColor: color.RGBA{100, 100, 100, 255},
		trigger:            TriggerClick,
		button:             ButtonLeft,
	}, nil
}

// SetTrigger changes which event and mouse button run Click. It must be called before Connect.
func (ui *Button) SetTrigger(t Trigger, button int) error {
	if _, err := t.category(); err != nil {
		return err
	}
	if Mask(button) == 0 {
		return invalid(ErrInvalidButton, "button", button)
	}
	ui.trigger = t
	ui.button = button
	return nil
}

func (ui *Button) Trigger() (Trigger, int) {
	return ui.trigger, ui.button
}

// Hover reports whether the pointer was over the button at the last motion event.
func (ui *Button) Hover() bool {
	return ui.hover
}

// Update records the screen position of the surface the button is rendered on.
func (ui *Button) Update(x, y int) {
	ui.offset = image.Pt(x, y)
}

// Move shifts the button by dx, dy.
func (ui *Button) Move(dx, dy int) {
	ui.Rect = ui.Rect.Add(image.Pt(dx, dy))
}

func (ui *Button) hit(p image.Point) bool {
	if ui.Clip != nil && !p.In(*ui.Clip) {
		return false
	}
	return RectOf(ui.Rect).Contains(p.Sub(ui.offset))
}

func (ui *Button) Connect(s *Subscriptions) error {
	c, err := ui.trigger.category()
	if err != nil {
		return err
	}
	err = s.Add(CategoryMouseMotion, func(e Event) {
		ui.hover = ui.hit(e.Pos)
	})
	if err != nil {
		return err
	}
	return s.Add(c, func(e Event) {
		if ui.Disabled || ui.Click == nil || !ui.hit(e.Pos) {
			return
		}
		switch e.Type {
		case EventMousePress:
			if !e.Held(ui.button) {
				return
			}
		default:
			if e.Button != ui.button {
				return
			}
		}
		ui.Click()
	})
}

func (ui *Button) Measure() image.Point {
	return ui.Rect.Size()
}

func (ui *Button) Render(dst Surface) {
	bg, fg := ui.Color, ui.TextColor
	if ui.hover && !ui.Disabled {
		if ui.HighlightColor != nil {
			bg = ui.HighlightColor
		}
		if ui.TextHighlightColor != nil {
			fg = ui.TextHighlightColor
		}
	}
	if bg != nil {
		dst.DrawRect(ui.Rect, bg)
	}
	if ui.Text == "" || ui.Font == nil {
		return
	}
	ui.text.Text = ui.Text
	ui.text.Font = ui.Font
	ui.text.Color = fg
	ui.text.halign = Right
	ui.text.valign = Below
	ui.text.Position = centered(ui.Rect, ui.Font.Measure(ui.Text))
	ui.text.Render(dst)
}

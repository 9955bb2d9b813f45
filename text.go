package vcui

import (
	"image"
	"image/color"
	"unicode"
	"unicode/utf8"
)

// StaticText draws a single line of text anchored at Position.
type StaticText struct {
	Position image.Point
	Text     string
	Color    color.Color
	Font     Font

	halign, valign Orientation

	rendered     Surface
	renderedText string
	renderedCol  color.Color
	renderedFont Font
}

// NewStaticText returns white text in the environment's default font, centered on its position.
func NewStaticText(env *Env, text string) (*StaticText, error) {
	f, err := env.Font()
	if err != nil {
		return nil, err
	}
	return &StaticText{
		Text:   text,
		Color:  color.White,
		Font:   f,
		halign: Center,
		valign: Center,
	}, nil
}

// SetAlignment sets how the text is placed relative to Position. See align for the meaning.
func (ui *StaticText) SetAlignment(h, v Orientation) error {
	if err := checkAlign(h, v); err != nil {
		return err
	}
	ui.halign = h
	ui.valign = v
	return nil
}

func (ui *StaticText) Alignment() (h, v Orientation) {
	return ui.halign, ui.valign
}

func (ui *StaticText) Measure() image.Point {
	if ui.Font == nil {
		return image.ZP
	}
	return ui.Font.Measure(ui.Text)
}

// Bounds returns the rectangle the text is drawn in.
func (ui *StaticText) Bounds() image.Rectangle {
	size := ui.Measure()
	p, err := align(ui.Position, size, ui.halign, ui.valign)
	if err != nil {
		p = ui.Position
	}
	return image.Rectangle{p, p.Add(size)}
}

func (ui *StaticText) Render(dst Surface) {
	if ui.Font == nil || ui.Text == "" {
		return
	}
	if ui.rendered == nil || ui.renderedText != ui.Text || ui.renderedCol != ui.Color || ui.renderedFont != ui.Font {
		s, err := ui.Font.Render(ui.Text, ui.Color)
		if err != nil {
			logf("text: render %q: %s\n", ui.Text, err)
			return
		}
		ui.rendered = s
		ui.renderedText = ui.Text
		ui.renderedCol = ui.Color
		ui.renderedFont = ui.Font
	}
	dst.Blit(ui.rendered, ui.Bounds().Min, nil)
}

// EditableText is a StaticText that takes keyboard input while focused.
// A button 1 click on the text focuses it, a click elsewhere removes focus.
//
// Keys:
//	backspace, remove last character
//	enter, call Submit
//	escape, remove focus
type EditableText struct {
	StaticText
	Focused  bool
	MaxRunes int               // 0 means no limit
	Submit   func(text string) // called on enter, if set
	Changed  func(text string) // called after each edit, if set

	offset image.Point
}

func NewEditableText(env *Env, text string) (*EditableText, error) {
	st, err := NewStaticText(env, text)
	if err != nil {
		return nil, err
	}
	return &EditableText{StaticText: *st}, nil
}

// Update records the screen position of the surface the text is rendered on.
func (ui *EditableText) Update(x, y int) {
	ui.offset = image.Pt(x, y)
}

func (ui *EditableText) hitRect() image.Rectangle {
	r := ui.Bounds()
	if ui.Text == "" && ui.Font != nil {
		// keep an empty field clickable
		size := ui.Font.Measure(" ")
		p, err := align(ui.Position, size, ui.halign, ui.valign)
		if err != nil {
			p = ui.Position
		}
		r = image.Rectangle{p, p.Add(size)}
	}
	return r
}

func (ui *EditableText) Connect(s *Subscriptions) error {
	err := s.Add(CategoryMouseButtonDown, func(e Event) {
		if e.Button != ButtonLeft {
			return
		}
		ui.Focused = e.Pos.Sub(ui.offset).In(ui.hitRect())
	})
	if err != nil {
		return err
	}
	return s.Add(CategoryKeyDown, func(e Event) {
		if ui.Focused {
			ui.key(e.Code, e.Char)
		}
	})
}

func (ui *EditableText) key(code int, c rune) {
	switch code {
	case KeyBackspace, KeyDelete:
		if ui.Text == "" {
			return
		}
		_, n := utf8.DecodeLastRuneInString(ui.Text)
		ui.Text = ui.Text[:len(ui.Text)-n]
	case KeyEnter:
		if ui.Submit != nil {
			ui.Submit(ui.Text)
		}
		return
	case KeyEscape:
		ui.Focused = false
		return
	default:
		if c == 0 || !unicode.IsPrint(c) {
			return
		}
		if ui.MaxRunes > 0 && utf8.RuneCountInString(ui.Text) >= ui.MaxRunes {
			return
		}
		ui.Text += string(c)
	}
	if ui.Changed != nil {
		ui.Changed(ui.Text)
	}
}

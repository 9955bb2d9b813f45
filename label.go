package vcui

import (
	"image"
)

// Label is the capability shared by the leaf widgets: Button, StaticText, EditableText and Image.
type Label interface {
	// Render draws the widget onto dst, in dst's coordinates.
	Render(dst Surface)
	// Measure returns the size the widget occupies.
	Measure() image.Point
}

var (
	_ Label = &Button{}
	_ Label = &StaticText{}
	_ Label = &EditableText{}
	_ Label = &Image{}
)

// align returns the top-left corner of a box of size anchored at pos.
//
// Horizontally, Right places the box to the right of pos, Left to the left of it.
// Vertically, Below places it under pos, Over above it. Center centers on pos.
func align(pos, size image.Point, h, v Orientation) (image.Point, error) {
	if err := checkAlign(h, v); err != nil {
		return image.ZP, err
	}
	p := pos
	switch h {
	case Center:
		p.X -= size.X / 2
	case Left:
		p.X -= size.X
	}
	switch v {
	case Center:
		p.Y -= size.Y / 2
	case Over:
		p.Y -= size.Y
	}
	return p, nil
}

func checkAlign(h, v Orientation) error {
	switch h {
	case Center, Left, Right:
	default:
		return invalid(ErrInvalidOrientation, "horizontal alignment", h)
	}
	switch v {
	case Center, Over, Below:
	default:
		return invalid(ErrInvalidOrientation, "vertical alignment", v)
	}
	return nil
}

// centered returns the origin of a box of size centered in r.
func centered(r image.Rectangle, size image.Point) image.Point {
	return image.Pt(r.Min.X+(r.Dx()-size.X)/2, r.Min.Y+(r.Dy()-size.Y)/2)
}

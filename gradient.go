package vcui

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// FillGradient blends from upper to lower color over r (or the whole surface if r is nil).
// Horizontal draws horizontal lines, so color changes from top to bottom; Vertical
// draws vertical lines, changing from left to right.
func FillGradient(s Surface, upper, lower color.Color, o Orientation, r *image.Rectangle) error {
	if err := checkAxis(o); err != nil {
		return err
	}
	area := rect(s.Size())
	if r != nil {
		area = r.Intersect(area)
	}
	if area.Empty() {
		return nil
	}
	c0, _ := colorful.MakeColor(opaque(upper))
	c1, _ := colorful.MakeColor(opaque(lower))

	n := area.Dy()
	if o == Vertical {
		n = area.Dx()
	}
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := c0.BlendRgb(c1, t).Clamped()
		line := image.Rect(area.Min.X, area.Min.Y+i, area.Max.X, area.Min.Y+i+1)
		if o == Vertical {
			line = image.Rect(area.Min.X+i, area.Min.Y, area.Min.X+i+1, area.Max.Y)
		}
		s.DrawRect(line, c)
	}
	return nil
}

// opaque drops alpha, colorful.MakeColor fails on fully transparent colors.
func opaque(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.RGBA64{uint16(r), uint16(g), uint16(b), 0xffff}
}

package vcui

import (
	"image"
	"math"
)

// Rect is a rectangle in surface coordinates: origin and extent.
// Scrollbar geometry is fractional, so it uses float64 and is rounded only when drawn.
type Rect struct {
	X, Y, W, H float64
}

// Rectf returns a Rect, with negative width or height clamped to 0.
func Rectf(x, y, w, h float64) Rect {
	return Rect{x, y, math.Max(w, 0), math.Max(h, 0)}
}

// RectOf converts an image.Rectangle.
func RectOf(r image.Rectangle) Rect {
	r = r.Canon()
	return Rect{float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy())}
}

// Contains reports whether p is inside r. Left and top edges are inclusive, right and bottom exclusive.
func (r Rect) Contains(p image.Point) bool {
	return Within(float64(p.X), float64(p.Y), r)
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Rectangle rounds r to pixels.
func (r Rect) Rectangle() image.Rectangle {
	x0 := int(math.Round(r.X))
	y0 := int(math.Round(r.Y))
	return image.Rect(x0, y0, x0+int(math.Round(r.W)), y0+int(math.Round(r.H)))
}

// Within is the point-in-rectangle test used for all hit-testing.
func Within(x, y float64, r Rect) bool {
	return r.X <= x && x < r.X+r.W && r.Y <= y && y < r.Y+r.H
}

func rect(p image.Point) image.Rectangle {
	return image.Rectangle{image.ZP, p}
}

func minimum(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maximum(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampSize returns size with both dimensions at least 0.
func clampSize(size image.Point) image.Point {
	return image.Pt(maximum(0, size.X), maximum(0, size.Y))
}

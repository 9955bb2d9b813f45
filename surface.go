package vcui

import (
	"image"
	"image/color"
)

// Surface is a 2D drawing target. Widgets draw into surfaces, controllers composite
// surfaces into their own.
type Surface interface {
	Size() image.Point
	Fill(c color.Color)
	// DrawRect fills r with c.
	DrawRect(r image.Rectangle, c color.Color)
	// Blit draws src onto the surface with its top-left at pos. If srcR is not nil,
	// only that part of src is drawn. Transparent source pixels leave the surface as is.
	Blit(src Surface, pos image.Point, srcR *image.Rectangle)
}

// Font measures and renders single-line text.
type Font interface {
	Measure(text string) image.Point
	Render(text string, c color.Color) (Surface, error)
}

// Backend creates surfaces and fonts for one kind of display.
type Backend interface {
	NewSurface(size image.Point) (Surface, error)
	// Scale returns a new surface with the content of s resampled to size.
	Scale(s Surface, size image.Point) (Surface, error)
	// Image converts a decoded image to a surface.
	Image(img image.Image) (Surface, error)
	LoadFont(name string, size int) (Font, error)
}

// Window is a backend with an on-screen presence: a source of input events and a place to present frames.
type Window interface {
	Backend
	// Events returns the channel input events are delivered on. It is closed when the window goes away.
	Events() <-chan Event
	Size() image.Point
	Present(s Surface) error
	Close() error
}

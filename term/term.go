// Package term is a vcui backend for terminals, on tcell.
//
// A surface is a grid of character cells, one cell per vcui pixel. Each cell has a
// background color, and optionally a rune drawn in a foreground color. Fonts are the
// terminal's own: text is one cell high, and as wide as go-runewidth says.
package term

import (
	"fmt"
	"image"
	"image/color"

	"github.com/mattn/go-runewidth"

	"github.com/mjl-/vcui"
)

// Cell is one character cell of a surface.
type Cell struct {
	Rune rune // 0 for none
	Fg   color.RGBA
	Bg   color.RGBA // alpha 0 is transparent
	Wide bool       // continuation of a double width rune in the cell to the left
}

func (c Cell) transparent() bool {
	return c.Rune == 0 && !c.Wide && c.Bg.A == 0
}

// Surface is a grid of cells.
type Surface struct {
	size  image.Point
	cells []Cell
}

var _ vcui.Surface = &Surface{}

func NewSurface(size image.Point) *Surface {
	size = image.Pt(max(0, size.X), max(0, size.Y))
	return &Surface{size, make([]Cell, size.X*size.Y)}
}

func (s *Surface) Size() image.Point {
	return s.size
}

func (s *Surface) bounds() image.Rectangle {
	return image.Rectangle{image.ZP, s.size}
}

// Cell returns the cell at p, the zero Cell if p is outside the surface.
func (s *Surface) Cell(p image.Point) Cell {
	if !p.In(s.bounds()) {
		return Cell{}
	}
	return s.cells[p.Y*s.size.X+p.X]
}

func (s *Surface) set(p image.Point, c Cell) {
	s.cells[p.Y*s.size.X+p.X] = c
}

func rgba(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func (s *Surface) Fill(c color.Color) {
	cell := Cell{Bg: rgba(c)}
	for i := range s.cells {
		s.cells[i] = cell
	}
}

// DrawRect sets the background of the cells in r and clears their runes. Transparent colors draw nothing.
func (s *Surface) DrawRect(r image.Rectangle, c color.Color) {
	bg := rgba(c)
	if bg.A == 0 {
		return
	}
	r = r.Intersect(s.bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.set(image.Pt(x, y), Cell{Bg: bg})
		}
	}
}

// Blit copies the cells of src. Runes over a transparent background keep the destination's background.
func (s *Surface) Blit(src vcui.Surface, pos image.Point, srcR *image.Rectangle) {
	ss, ok := src.(*Surface)
	if !ok {
		return
	}
	sr := ss.bounds()
	if srcR != nil {
		sr = srcR.Intersect(sr)
	}
	for y := sr.Min.Y; y < sr.Max.Y; y++ {
		for x := sr.Min.X; x < sr.Max.X; x++ {
			d := pos.Add(image.Pt(x-sr.Min.X, y-sr.Min.Y))
			if !d.In(s.bounds()) {
				continue
			}
			c := ss.cells[y*ss.size.X+x]
			if c.transparent() {
				continue
			}
			if c.Bg.A == 0 {
				c.Bg = s.Cell(d).Bg
			}
			s.set(d, c)
		}
	}
}

// Backend creates cell surfaces.
type Backend struct{}

var _ vcui.Backend = Backend{}

func (Backend) NewSurface(size image.Point) (vcui.Surface, error) {
	return NewSurface(size), nil
}

// Scale resamples s to size, nearest neighbour.
func (Backend) Scale(s vcui.Surface, size image.Point) (vcui.Surface, error) {
	ss, ok := s.(*Surface)
	if !ok {
		return nil, fmt.Errorf("term: scale %T: %w", s, vcui.ErrNoBackend)
	}
	ns := NewSurface(size)
	if ss.size.X == 0 || ss.size.Y == 0 {
		return ns, nil
	}
	for y := 0; y < ns.size.Y; y++ {
		for x := 0; x < ns.size.X; x++ {
			p := image.Pt(x*ss.size.X/ns.size.X, y*ss.size.Y/ns.size.Y)
			ns.set(image.Pt(x, y), ss.Cell(p))
		}
	}
	return ns, nil
}

// Image converts img to cells, one cell per pixel, as background colors.
func (Backend) Image(img image.Image) (vcui.Surface, error) {
	if img == nil {
		return nil, fmt.Errorf("term: nil image")
	}
	r := img.Bounds()
	s := NewSurface(r.Size())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.set(image.Pt(x-r.Min.X, y-r.Min.Y), Cell{Bg: rgba(img.At(x, y))})
		}
	}
	return s, nil
}

// LoadFont returns the terminal font. Name and size do not change the result, size must be positive.
func (Backend) LoadFont(name string, size int) (vcui.Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("term: font %q size %d: %w", name, size, vcui.ErrInvalidMode)
	}
	return Font{}, nil
}

// Font places one rune per cell, two for double width runes.
type Font struct{}

var _ vcui.Font = Font{}

func (Font) Measure(text string) image.Point {
	if text == "" {
		return image.ZP
	}
	return image.Pt(runewidth.StringWidth(text), 1)
}

func (f Font) Render(text string, c color.Color) (vcui.Surface, error) {
	s := NewSurface(f.Measure(text))
	fg := rgba(c)
	x := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > s.size.X {
			break
		}
		s.set(image.Pt(x, 0), Cell{Rune: r, Fg: fg})
		if w == 2 {
			s.set(image.Pt(x+1, 0), Cell{Fg: fg, Wide: true})
		}
		x += w
	}
	return s, nil
}

// Configure adapts the pixel sizes of cfg to cells: a bar of 3 rows, scrollbars of 1 column
// and wheel steps of a few rows.
func Configure(cfg *vcui.Config) {
	cfg.TabBar.Height = 3
	cfg.Scroll.BackgroundWidth = 1
	cfg.Scroll.ThumbWidth = 1
	cfg.Scroll.Intensity = 0.05
}

// Package devdraw is a vcui backend drawing on a plan9port devdraw window.
package devdraw

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"9fans.net/go/draw"
	xdraw "golang.org/x/image/draw"

	"github.com/mjl-/vcui"
)

// Backend creates surfaces as devdraw images on a display.
type Backend struct {
	Display *draw.Display

	colors map[draw.Color]*draw.Image
}

var _ vcui.Backend = &Backend{}

func NewBackend(display *draw.Display) *Backend {
	return &Backend{Display: display, colors: map[draw.Color]*draw.Image{}}
}

// Surface is a devdraw image. Images are at least 1x1, size is the logical size.
type Surface struct {
	b    *Backend
	img  *draw.Image
	size image.Point
}

var _ vcui.Surface = &Surface{}

// Image returns the devdraw image backing s.
func (s *Surface) Image() *draw.Image {
	return s.img
}

// drawColor converts c to a devdraw color, premultiplied 0xRRGGBBAA.
func drawColor(c color.Color) draw.Color {
	r, g, b, a := c.RGBA()
	return draw.Color(r>>8<<24 | g>>8<<16 | b>>8<<8 | a>>8)
}

// color returns a replicated 1x1 image of c, allocated once.
func (b *Backend) color(c color.Color) *draw.Image {
	dc := drawColor(c)
	if img, ok := b.colors[dc]; ok {
		return img
	}
	img, err := b.Display.AllocImage(image.Rect(0, 0, 1, 1), draw.ARGB32, true, dc)
	if err != nil {
		log.Printf("devdraw: allocimage for color %#x: %s\n", uint32(dc), err)
		return b.Display.Black
	}
	b.colors[dc] = img
	return img
}

func (b *Backend) alloc(size image.Point, fill draw.Color) (*Surface, error) {
	size = image.Pt(max(0, size.X), max(0, size.Y))
	r := image.Rect(0, 0, max(1, size.X), max(1, size.Y))
	img, err := b.Display.AllocImage(r, draw.ABGR32, false, fill)
	if err != nil {
		return nil, fmt.Errorf("allocimage %v: %w", size, err)
	}
	return &Surface{b, img, size}, nil
}

func (b *Backend) NewSurface(size image.Point) (vcui.Surface, error) {
	return b.alloc(size, draw.Black)
}

func (b *Backend) surface(s vcui.Surface) (*Surface, error) {
	ds, ok := s.(*Surface)
	if !ok {
		return nil, fmt.Errorf("devdraw: foreign surface %T: %w", s, vcui.ErrNoBackend)
	}
	return ds, nil
}

// rgba reads the pixels of s back from devdraw.
func (s *Surface) rgba() (*image.RGBA, error) {
	img := image.NewRGBA(s.img.R)
	if _, err := s.img.Unload(s.img.R, img.Pix); err != nil {
		return nil, fmt.Errorf("unload image: %w", err)
	}
	return img, nil
}

func (b *Backend) load(img *image.RGBA) (*Surface, error) {
	s, err := b.alloc(img.Rect.Size(), draw.Transparent)
	if err != nil {
		return nil, err
	}
	if img.Rect.Empty() {
		return s, nil
	}
	if _, err := s.img.Load(img.Rect, img.Pix); err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	return s, nil
}

// Scale resamples s in memory and loads the result as a new image.
func (b *Backend) Scale(s vcui.Surface, size image.Point) (vcui.Surface, error) {
	ds, err := b.surface(s)
	if err != nil {
		return nil, err
	}
	src, err := ds.rgba()
	if err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, max(0, size.X), max(0, size.Y)))
	if !dst.Rect.Empty() {
		xdraw.ApproxBiLinear.Scale(dst, dst.Rect, src, src.Rect, xdraw.Src, nil)
	}
	return b.load(dst)
}

func (b *Backend) Image(img image.Image) (vcui.Surface, error) {
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != image.ZP {
		r := img.Bounds()
		rgba = image.NewRGBA(image.Rectangle{image.ZP, r.Size()})
		xdraw.Draw(rgba, rgba.Rect, img, r.Min, xdraw.Src)
	}
	return b.load(rgba)
}

var fontPaths = map[string]string{
	"monospace": "/mnt/font/GoMono/%da/font",
	"mono":      "/mnt/font/GoMono/%da/font",
	"bold":      "/mnt/font/GoBold/%da/font",
}

// LoadFont opens a devdraw font. Names map to the Go fonts served by fontsrv, an
// absolute path is opened as is. If opening fails the display's default font is used.
func (b *Backend) LoadFont(name string, size int) (vcui.Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("devdraw: font %q size %d: %w", name, size, vcui.ErrInvalidMode)
	}
	path := name
	if len(name) == 0 || name[0] != '/' {
		pattern, ok := fontPaths[name]
		if !ok {
			pattern = "/mnt/font/GoRegular/%da/font"
		}
		path = fmt.Sprintf(pattern, size)
	}
	f, err := b.Display.OpenFont(path)
	if err != nil {
		log.Printf("devdraw: open font %s: %s, using default font\n", path, err)
		f = b.Display.DefaultFont
	}
	return &Font{b, f}, nil
}

func (s *Surface) Size() image.Point {
	return s.size
}

func (s *Surface) Fill(c color.Color) {
	s.img.Draw(s.img.R, s.b.color(c), nil, image.ZP)
}

func (s *Surface) DrawRect(r image.Rectangle, c color.Color) {
	s.img.Draw(r.Intersect(s.img.R), s.b.color(c), nil, image.ZP)
}

func (s *Surface) Blit(src vcui.Surface, pos image.Point, srcR *image.Rectangle) {
	ss, err := s.b.surface(src)
	if err != nil {
		log.Printf("devdraw: blit: %s\n", err)
		return
	}
	sr := image.Rectangle{image.ZP, ss.size}
	if srcR != nil {
		sr = srcR.Intersect(sr)
	}
	if sr.Empty() {
		return
	}
	s.img.Draw(image.Rectangle{pos, pos.Add(sr.Size())}, ss.img, nil, sr.Min)
}

// Font is a devdraw font.
type Font struct {
	b    *Backend
	font *draw.Font
}

var _ vcui.Font = &Font{}

func (f *Font) Measure(text string) image.Point {
	return f.font.StringSize(text)
}

func (f *Font) Render(text string, c color.Color) (vcui.Surface, error) {
	s, err := f.b.alloc(f.Measure(text), draw.Transparent)
	if err != nil {
		return nil, err
	}
	s.img.String(image.ZP, f.b.color(c), image.ZP, f.font, text)
	return s, nil
}

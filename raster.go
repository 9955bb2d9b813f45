package vcui

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Raster is an in-memory Backend. Surfaces are RGBA bitmaps, fonts are the Go fonts.
// It is used for off-screen rendering and tests.
type Raster struct{}

var _ Backend = Raster{}

// Bitmap is the Surface of the Raster backend.
type Bitmap struct {
	RGBA *image.RGBA
}

var _ Surface = &Bitmap{}

func NewBitmap(size image.Point) *Bitmap {
	return &Bitmap{image.NewRGBA(rect(clampSize(size)))}
}

func (b *Bitmap) Size() image.Point {
	return b.RGBA.Rect.Size()
}

func (b *Bitmap) Fill(c color.Color) {
	xdraw.Draw(b.RGBA, b.RGBA.Rect, image.NewUniform(c), image.ZP, xdraw.Src)
}

func (b *Bitmap) DrawRect(r image.Rectangle, c color.Color) {
	xdraw.Draw(b.RGBA, r.Intersect(b.RGBA.Rect), image.NewUniform(c), image.ZP, xdraw.Over)
}

func (b *Bitmap) Blit(src Surface, pos image.Point, srcR *image.Rectangle) {
	sb, ok := src.(*Bitmap)
	if !ok {
		logf("bitmap: cannot blit %T\n", src)
		return
	}
	sr := sb.RGBA.Rect
	if srcR != nil {
		sr = srcR.Intersect(sr)
	}
	dr := image.Rectangle{pos, pos.Add(sr.Size())}
	xdraw.Draw(b.RGBA, dr, sb.RGBA, sr.Min, xdraw.Over)
}

// At returns the color at p, for inspection.
func (b *Bitmap) At(p image.Point) color.RGBA {
	return b.RGBA.RGBAAt(p.X, p.Y)
}

func (Raster) NewSurface(size image.Point) (Surface, error) {
	return NewBitmap(size), nil
}

func (Raster) Scale(s Surface, size image.Point) (Surface, error) {
	sb, ok := s.(*Bitmap)
	if !ok {
		return nil, fmt.Errorf("raster: scale %T: %w", s, ErrNoBackend)
	}
	nb := NewBitmap(size)
	if sb.Size() == nb.Size() {
		copy(nb.RGBA.Pix, sb.RGBA.Pix)
		return nb, nil
	}
	if nb.RGBA.Rect.Empty() || sb.RGBA.Rect.Empty() {
		return nb, nil
	}
	xdraw.ApproxBiLinear.Scale(nb.RGBA, nb.RGBA.Rect, sb.RGBA, sb.RGBA.Rect, xdraw.Src, nil)
	return nb, nil
}

func (Raster) Image(img image.Image) (Surface, error) {
	if img == nil {
		return nil, fmt.Errorf("raster: nil image")
	}
	b := img.Bounds()
	nb := NewBitmap(b.Size())
	xdraw.Draw(nb.RGBA, nb.RGBA.Rect, img, b.Min, xdraw.Src)
	return nb, nil
}

// LoadFont returns a Go font face: "monospace" is Go Mono, "bold" Go Bold, anything else Go Regular.
// If the face cannot be created, the fixed 7x13 face is used.
func (Raster) LoadFont(name string, size int) (Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("raster: font %q size %d: %w", name, size, ErrInvalidMode)
	}
	ttf := goregular.TTF
	switch name {
	case "monospace", "mono":
		ttf = gomono.TTF
	case "bold":
		ttf = gobold.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		logf("raster: parse font %q: %s, using basic font\n", name, err)
		return &faceFont{basicfont.Face7x13}, nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		logf("raster: font %q size %d: %s, using basic font\n", name, size, err)
		return &faceFont{basicfont.Face7x13}, nil
	}
	return &faceFont{face}, nil
}

type faceFont struct {
	face font.Face
}

func (f *faceFont) Measure(text string) image.Point {
	m := f.face.Metrics()
	return image.Pt(font.MeasureString(f.face, text).Ceil(), (m.Ascent + m.Descent).Ceil())
}

func (f *faceFont) Render(text string, c color.Color) (Surface, error) {
	b := NewBitmap(f.Measure(text))
	d := font.Drawer{
		Dst:  b.RGBA,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.Point26_6{X: 0, Y: f.face.Metrics().Ascent},
	}
	d.DrawString(text)
	return b, nil
}

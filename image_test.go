package vcui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func filled(size image.Point, c color.Color) *Bitmap {
	b := NewBitmap(size)
	b.Fill(c)
	return b
}

func TestImagePlaceholder(t *testing.T) {
	env := newTestEnv(t)
	img := NewImage(env, image.Rect(0, 0, 100, 100))
	require.Equal(t, Clip, img.ScaleMode())
	dst := NewBitmap(image.Pt(120, 120))
	img.Render(dst)
	require.Equal(t, placeholderColor, dst.At(image.Pt(5, 5)))
	require.Equal(t, color.RGBA{}, dst.At(image.Pt(110, 110)))

	dst = NewBitmap(image.Pt(120, 120))
	img.ShowPlaceholder = false
	img.Render(dst)
	require.Equal(t, color.RGBA{}, dst.At(image.Pt(5, 5)))

	img.ShowPlaceholder = true
	img.Visible = false
	img.Render(dst)
	require.Equal(t, color.RGBA{}, dst.At(image.Pt(5, 5)))
}

func TestImageScaleModes(t *testing.T) {
	env := newTestEnv(t)
	img := NewImage(env, image.Rect(0, 0, 100, 100))
	require.NoError(t, img.SetSource(filled(image.Pt(200, 100), red)))

	tests := []struct {
		mode   ScaleMode
		scaled image.Point
		area   *image.Rectangle
	}{
		{ScaleToSize, image.Pt(100, 100), nil},
		{ScaleFitWidth, image.Pt(100, 50), nil},
		{ScaleFitHeight, image.Pt(200, 100), nil},
		{ScaleWidth, image.Pt(100, 100), nil},
		{ScaleHeight, image.Pt(200, 100), nil},
		{ScaleFitHeightCut, image.Pt(200, 100), &image.Rectangle{Max: image.Pt(100, 100)}},
		{CutWidth, image.Pt(200, 100), &image.Rectangle{Max: image.Pt(100, 100)}},
		{Clip, image.Pt(200, 100), &image.Rectangle{Max: image.Pt(100, 100)}},
		{NoScale, image.Pt(200, 100), nil},
	}
	for _, tt := range tests {
		require.NoError(t, img.SetScaleMode(tt.mode))
		require.Equal(t, tt.scaled, img.scaled.Size(), "mode %d", tt.mode)
		require.Equal(t, tt.area, img.area, "mode %d", tt.mode)
	}

	require.ErrorIs(t, img.SetScaleMode(ScaleMode(99)), ErrInvalidMode)
	require.Equal(t, NoScale, img.ScaleMode())

	require.NoError(t, img.FitSource())
	require.Equal(t, image.Pt(200, 100), img.Measure())
}

func TestImageRenderClip(t *testing.T) {
	env := newTestEnv(t)
	img := NewImage(env, image.Rect(10, 10, 60, 60))
	require.NoError(t, img.SetSource(filled(image.Pt(200, 100), red)))
	dst := NewBitmap(image.Pt(100, 100))
	img.Render(dst)
	require.Equal(t, red, dst.At(image.Pt(10, 10)))
	require.Equal(t, red, dst.At(image.Pt(59, 59)))
	require.Equal(t, color.RGBA{}, dst.At(image.Pt(60, 60)))
	require.Equal(t, color.RGBA{}, dst.At(image.Pt(9, 30)))

	require.NoError(t, img.SetRect(image.Rect(50, 50, 0, 0)))
	require.Equal(t, image.Rect(0, 0, 50, 50), img.Rect())
}

func TestReadImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(2, 1, blue)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	s, err := ReadImage(Raster{}, &buf)
	require.NoError(t, err)
	require.Equal(t, image.Pt(3, 2), s.Size())
	require.Equal(t, blue, s.(*Bitmap).At(image.Pt(2, 1)))

	_, err = ReadImage(Raster{}, bytes.NewReader([]byte("not an image")))
	require.Error(t, err)
}

func TestImageLoad(t *testing.T) {
	env := newTestEnv(t)
	img := NewImage(env, image.Rect(0, 0, 10, 10))
	require.NoError(t, img.SetSource(filled(image.Pt(5, 5), red)))
	img.Load(filepath.Join(t.TempDir(), "missing.png"))
	require.Nil(t, img.Source())

	dst := NewBitmap(image.Pt(10, 10))
	img.Render(dst)
	require.Equal(t, placeholderColor, dst.At(image.Pt(0, 0)))
}

func TestRasterScale(t *testing.T) {
	var r Raster
	s, err := r.Scale(filled(image.Pt(10, 10), green), image.Pt(40, 20))
	require.NoError(t, err)
	require.Equal(t, image.Pt(40, 20), s.Size())
	require.Equal(t, green, s.(*Bitmap).At(image.Pt(20, 10)))

	s, err = r.Scale(filled(image.Pt(10, 10), green), image.Pt(0, 5))
	require.NoError(t, err)
	require.Equal(t, image.Pt(0, 5), s.Size())

	_, err = r.Scale(nil, image.Pt(1, 1))
	require.Error(t, err)
	_, err = r.LoadFont("monospace", 0)
	require.ErrorIs(t, err, ErrInvalidMode)
	_, err = r.Image(nil)
	require.Error(t, err)
}

func TestBitmapBlit(t *testing.T) {
	dst := filled(image.Pt(10, 10), red)
	src := NewBitmap(image.Pt(4, 4))
	src.DrawRect(image.Rect(0, 0, 2, 2), blue)

	dst.Blit(src, image.Pt(3, 3), nil)
	require.Equal(t, blue, dst.At(image.Pt(3, 3)))
	require.Equal(t, red, dst.At(image.Pt(6, 6)), "transparent source keeps the destination")

	part := image.Rect(1, 1, 2, 2)
	dst.Blit(src, image.Pt(8, 8), &part)
	require.Equal(t, blue, dst.At(image.Pt(8, 8)))
	require.Equal(t, red, dst.At(image.Pt(9, 9)))

	dst.DrawRect(image.Rect(-5, -5, 1, 1), green)
	require.Equal(t, green, dst.At(image.Pt(0, 0)))
	require.Equal(t, red, dst.At(image.Pt(1, 1)))
}

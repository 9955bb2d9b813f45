package vcui

import (
	"image"
	"image/color"
)

// ScaleMode selects how an Image fits its source into its rectangle.
type ScaleMode int

const (
	ScaleToSize       = ScaleMode(iota) // scale to size, aspect ratio not kept
	ScaleFitWidth                       // scale to fit width
	ScaleFitHeight                      // scale to fit height
	ScaleWidth                          // scale width only, aspect ratio not kept
	ScaleHeight                         // scale height only, aspect ratio not kept
	ScaleFitWidthCut                    // scale to fit width, cut at height edge
	ScaleFitHeightCut                   // scale to fit height, cut at width edge
	ScaleWidthCut                       // scale width, cut at height edge, aspect ratio not kept
	ScaleHeightCut                      // scale height, cut at width edge, aspect ratio not kept
	CutWidth                            // no scaling, cut at width edge
	CutHeight                           // no scaling, cut at height edge
	Clip                                // no scaling, clip at width and height
	NoScale                             // no scaling, no clipping
)

func (m ScaleMode) check() error {
	if m < ScaleToSize || m > NoScale {
		return invalid(ErrInvalidMode, "scale mode", int(m))
	}
	return nil
}

var placeholderColor = color.RGBA{200, 200, 200, 255}

// Image draws a surface in a rectangle. Without a source, a placeholder box labeled "Image" is drawn.
type Image struct {
	Visible         bool
	ShowPlaceholder bool // draw the placeholder when there is no source

	env    *Env
	r      image.Rectangle
	mode   ScaleMode
	source Surface
	scaled Surface
	area   *image.Rectangle // part of scaled to draw, nil for all
	label  *StaticText
}

func NewImage(env *Env, r image.Rectangle) *Image {
	return &Image{Visible: true, ShowPlaceholder: true, env: env, r: r, mode: Clip}
}

// Rect returns the rectangle of the image, in the coordinates of the surface it renders onto.
func (ui *Image) Rect() image.Rectangle {
	return ui.r
}

func (ui *Image) SetRect(r image.Rectangle) error {
	ui.r = r.Canon()
	return ui.rescale()
}

func (ui *Image) ScaleMode() ScaleMode {
	return ui.mode
}

func (ui *Image) SetScaleMode(m ScaleMode) error {
	if err := m.check(); err != nil {
		return err
	}
	ui.mode = m
	return ui.rescale()
}

// SetSource sets the surface to draw. A nil source shows the placeholder.
func (ui *Image) SetSource(s Surface) error {
	ui.source = s
	return ui.rescale()
}

func (ui *Image) Source() Surface {
	return ui.source
}

// Load reads the image at path. On failure the error is logged and the placeholder stays.
func (ui *Image) Load(path string) {
	s, err := ReadImagePath(ui.env.Backend, path)
	if err != nil {
		logf("image: %s\n", err)
		ui.source = nil
		ui.scaled = nil
		return
	}
	if err := ui.SetSource(s); err != nil {
		logf("image: %s: %s\n", path, err)
	}
}

// FitSource resizes the rectangle to the size of the source.
func (ui *Image) FitSource() error {
	if ui.source == nil {
		return nil
	}
	ui.r.Max = ui.r.Min.Add(ui.source.Size())
	return ui.rescale()
}

func (ui *Image) Measure() image.Point {
	return ui.r.Size()
}

func (ui *Image) scale(size image.Point) error {
	s, err := ui.env.Backend.Scale(ui.source, size)
	if err != nil {
		return err
	}
	ui.scaled = s
	return nil
}

func (ui *Image) rescale() error {
	if ui.source == nil {
		return nil
	}
	src := ui.source.Size()
	w, h := ui.r.Dx(), ui.r.Dy()
	fitWidth := func() image.Point {
		if src.X == 0 {
			return image.Pt(w, 0)
		}
		return image.Pt(w, src.Y*w/src.X)
	}
	fitHeight := func() image.Point {
		if src.Y == 0 {
			return image.Pt(0, h)
		}
		return image.Pt(src.X*h/src.Y, h)
	}
	area := func(w, h int) *image.Rectangle {
		r := image.Rect(0, 0, w, h)
		return &r
	}

	var err error
	ui.area = nil
	ui.scaled = ui.source
	switch ui.mode {
	case ScaleToSize:
		err = ui.scale(image.Pt(w, h))
	case ScaleFitWidth:
		err = ui.scale(fitWidth())
	case ScaleFitHeight:
		err = ui.scale(fitHeight())
	case ScaleWidth:
		err = ui.scale(image.Pt(w, src.Y))
	case ScaleHeight:
		err = ui.scale(image.Pt(src.X, h))
	case ScaleFitWidthCut:
		err = ui.scale(fitWidth())
		ui.area = area(w, h)
	case ScaleFitHeightCut:
		err = ui.scale(fitHeight())
		ui.area = area(w, h)
	case ScaleWidthCut:
		err = ui.scale(image.Pt(w, src.Y))
		ui.area = area(w, h)
	case ScaleHeightCut:
		err = ui.scale(image.Pt(src.X, h))
		ui.area = area(w, h)
	case CutWidth:
		ui.area = area(w, src.Y)
	case CutHeight:
		ui.area = area(src.X, h)
	case Clip:
		ui.area = area(w, h)
	case NoScale:
	default:
		return ui.mode.check()
	}
	return err
}

func (ui *Image) Render(dst Surface) {
	if !ui.Visible {
		return
	}
	if ui.scaled == nil {
		if ui.ShowPlaceholder {
			ui.placeholder(dst)
		}
		return
	}
	dst.Blit(ui.scaled, ui.r.Min, ui.area)
}

func (ui *Image) placeholder(dst Surface) {
	dst.DrawRect(ui.r, placeholderColor)
	if ui.label == nil {
		t, err := NewStaticText(ui.env, "Image")
		if err != nil {
			logf("image: placeholder label: %s\n", err)
			return
		}
		t.Color = color.Black
		ui.label = t
	}
	ui.label.Position = ui.r.Min.Add(ui.r.Size().Div(2))
	ui.label.Render(dst)
}

package main

import (
	"image"
	"image/color"
	"log"

	"github.com/mjl-/vcui"
)

var (
	top    = color.RGBA{0x20, 0x40, 0x80, 0xff}
	bottom = color.RGBA{0xe0, 0x80, 0x30, 0xff}
)

// gallery scrolls vertically over a gradient three screens high, with an image on top.
type gallery struct {
	vcui.ScrollController

	img *vcui.Image
}

func newGallery(env *vcui.Env, size image.Point, path string) (vcui.ViewController, error) {
	c := &gallery{}
	if err := c.Init(env, size); err != nil {
		return nil, err
	}
	if err := c.SetContentSize(image.Pt(size.X, 3*size.Y)); err != nil {
		return nil, err
	}
	c.img = vcui.NewImage(env, image.Rect(size.X/4, size.Y/4, 3*size.X/4, 3*size.Y/4))
	if err := c.img.SetScaleMode(vcui.ScaleFitWidth); err != nil {
		return nil, err
	}
	if path != "" {
		c.img.Load(path)
	}
	return c, nil
}

func (c *gallery) OnNavigatedTo() {
	c.paint()
}

func (c *gallery) paint() {
	content := c.Content()
	// horizontal lines, top to bottom
	if err := vcui.FillGradient(content, top, bottom, vcui.Horizontal, nil); err != nil {
		log.Printf("gallery: %s\n", err)
	}
	c.img.Render(content)
}

func (c *gallery) UpdateDimensions(size image.Point) error {
	if err := c.ScrollController.UpdateDimensions(size); err != nil {
		return err
	}
	x, y := c.Offset()
	if err := c.SetContentSize(image.Pt(size.X, 3*size.Y)); err != nil {
		return err
	}
	if err := c.img.SetRect(image.Rect(size.X/4, size.Y/4, 3*size.X/4, 3*size.Y/4)); err != nil {
		return err
	}
	c.ScrollTo(x, y)
	c.paint()
	return nil
}

// wide scrolls horizontally over a gradient three screens wide.
type wide struct {
	vcui.ScrollController
}

func newWide(env *vcui.Env, size image.Point) (vcui.ViewController, error) {
	c := &wide{}
	if err := c.Init(env, size); err != nil {
		return nil, err
	}
	if err := c.SetDirection(vcui.Horizontal); err != nil {
		return nil, err
	}
	if err := c.SetVisibility(vcui.VisibilityAlways); err != nil {
		return nil, err
	}
	if err := c.SetContentSize(image.Pt(3*size.X, size.Y)); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *wide) OnNavigatedTo() {
	if err := vcui.FillGradient(c.Content(), bottom, top, vcui.Vertical, nil); err != nil {
		log.Printf("wide: %s\n", err)
	}
}

func (c *wide) UpdateDimensions(size image.Point) error {
	if err := c.ScrollController.UpdateDimensions(size); err != nil {
		return err
	}
	if err := c.SetContentSize(image.Pt(3*size.X, size.Y)); err != nil {
		return err
	}
	c.OnNavigatedTo()
	return nil
}

package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/mjl-/vcui"
)

// home has a counter button and a text field that echoes what was submitted.
type home struct {
	vcui.Controller

	title  *vcui.StaticText
	count  *vcui.Button
	input  *vcui.EditableText
	echo   *vcui.StaticText
	clicks int
}

func newHome(env *vcui.Env, size image.Point) (vcui.ViewController, error) {
	c := &home{}
	if err := c.Init(env, size); err != nil {
		return nil, err
	}
	var err error
	c.title, err = vcui.NewStaticText(env, "vcui demo")
	if err != nil {
		return nil, err
	}
	c.count, err = vcui.NewButton(env, "clicked 0 times", image.Rectangle{})
	if err != nil {
		return nil, err
	}
	c.count.Click = func() {
		c.clicks++
		c.count.Text = fmt.Sprintf("clicked %d times", c.clicks)
	}
	c.input, err = vcui.NewEditableText(env, "type here")
	if err != nil {
		return nil, err
	}
	c.input.MaxRunes = 40
	c.echo, err = vcui.NewStaticText(env, "")
	if err != nil {
		return nil, err
	}
	c.echo.Color = color.RGBA{0xb4, 0xb4, 0xb4, 0xff}
	c.input.Submit = func(text string) {
		c.echo.Text = "submitted: " + text
	}
	c.layout()
	if err := c.Adopt(c.count, c.input); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *home) layout() {
	size := c.Surface().Size()
	fh := c.title.Measure().Y
	mid := size.X / 2
	c.title.Position = image.Pt(mid, size.Y/5)
	bw := c.count.Font.Measure("clicked 0000 times").X + fh
	c.count.Rect = image.Rect(mid-bw/2, size.Y/5+2*fh, mid+bw/2, size.Y/5+4*fh)
	c.input.Position = image.Pt(mid, size.Y/5+6*fh)
	c.echo.Position = image.Pt(mid, size.Y/5+8*fh)
}

func (c *home) UpdateDimensions(size image.Point) error {
	if err := c.Controller.UpdateDimensions(size); err != nil {
		return err
	}
	c.layout()
	return nil
}

func (c *home) Update(x, y int, delta float64) {
	c.count.Update(x, y)
	c.input.Update(x, y)
}

func (c *home) Render() {
	dst := c.Surface()
	dst.Fill(color.RGBA{0x1e, 0x1e, 0x1e, 0xff})
	c.title.Render(dst)
	c.count.Render(dst)
	if c.input.Focused {
		r := c.input.Bounds().Inset(-2)
		dst.DrawRect(r, color.RGBA{0x40, 0x40, 0x60, 0xff})
	}
	c.input.Render(dst)
	c.echo.Render(dst)
}

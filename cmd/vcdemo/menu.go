package main

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/mjl-/vcui"
)

// menuPage shows a side menu over a plain page. The menu items move the menu to
// the other side, scroll it back to the top, and count.
type menuPage struct {
	vcui.Controller

	menu  *vcui.MenuController
	label *vcui.StaticText
	n     int
}

var _ vcui.Container = &menuPage{}

func newMenuPage(env *vcui.Env, size image.Point) (vcui.ViewController, error) {
	c := &menuPage{}
	if err := c.Init(env, size); err != nil {
		return nil, err
	}
	var err error
	c.menu, err = vcui.NewMenuController(env, size, vcui.Right)
	if err != nil {
		return nil, err
	}
	c.label, err = vcui.NewStaticText(env, "pick an item")
	if err != nil {
		return nil, err
	}
	items := []struct {
		text  string
		click func()
	}{
		{"Other side", func() {
			side := vcui.Left
			if c.menu.Side() == vcui.Left {
				side = vcui.Right
			}
			if err := c.menu.SetSide(side); err != nil {
				log.Printf("menu: %s\n", err)
			}
			c.label.Text = "menu on the " + side.String()
		}},
		{"Back to top", func() { c.menu.ScrollTo(0, 0) }},
		{"Count", func() {
			c.n++
			c.label.Text = fmt.Sprintf("counted %d", c.n)
		}},
	}
	for _, it := range items {
		if _, err := c.menu.AddItem(it.text, it.click); err != nil {
			return nil, err
		}
	}
	c.menu.Title.Text = "Menu"
	return c, nil
}

func (c *menuPage) OnNavigatedTo() {
	if err := vcui.Navigate(c.Env, c.menu); err != nil {
		log.Printf("menu: navigate: %s\n", err)
	}
}

func (c *menuPage) Children() []vcui.ViewController {
	return []vcui.ViewController{c.menu}
}

func (c *menuPage) UpdateDimensions(size image.Point) error {
	if err := c.Controller.UpdateDimensions(size); err != nil {
		return err
	}
	return c.menu.UpdateDimensions(size)
}

func (c *menuPage) Update(x, y int, delta float64) {
	p := c.menu.Position(c.Surface().Size())
	c.menu.Update(x+p.X, y+p.Y, delta)
}

func (c *menuPage) Render() {
	dst := c.Surface()
	size := dst.Size()
	dst.Fill(color.RGBA{0x30, 0x30, 0x30, 0xff})
	c.label.Position = image.Pt(size.X/2, size.Y/2)
	if c.menu.Side() == vcui.Left {
		c.label.Position.X = (size.X + c.menu.Surface().Size().X) / 2
	} else {
		c.label.Position.X = (size.X - c.menu.Surface().Size().X) / 2
	}
	c.label.Render(dst)
	c.menu.Render()
	dst.Blit(c.menu.Surface(), c.menu.Position(size), nil)
}

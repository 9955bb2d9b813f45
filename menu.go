package vcui

import (
	"image"
	"image/color"
	"math"
)

const (
	menuWidth      = 400
	menuExtent     = 1000 // content height beyond the visible height
	menuItemHeight = 60
	menuTitleY     = 40
	menuItemsY     = 80
)

// MenuController is a scrollable panel of fixed width, meant to be placed at the
// left or right edge of a parent controller. It has a title and a column of item buttons.
type MenuController struct {
	ScrollController

	Title      *StaticText
	Background color.Color

	side   Orientation
	width  int
	extent int
	items  []*Button
}

var (
	_ ViewController   = &MenuController{}
	_ DimensionUpdater = &MenuController{}
	_ Navigator        = &MenuController{}
)

// NewMenuController returns a menu for a parent of size, at side Left or Right.
func NewMenuController(env *Env, size image.Point, side Orientation) (*MenuController, error) {
	c := &MenuController{
		Background: color.RGBA{50, 50, 50, 255},
		width:      menuWidth,
		extent:     menuExtent,
	}
	if err := c.SetSide(side); err != nil {
		return nil, err
	}
	panel := c.panelSize(size)
	if err := c.ScrollController.Init(env, panel); err != nil {
		return nil, err
	}
	if err := c.SetContentSize(image.Pt(panel.X, panel.Y+c.extent)); err != nil {
		return nil, err
	}
	t, err := NewStaticText(env, "Menu")
	if err != nil {
		return nil, err
	}
	c.Title = t
	return c, nil
}

func (c *MenuController) panelSize(parent image.Point) image.Point {
	return clampSize(image.Pt(minimum(c.width, parent.X), parent.Y))
}

func (c *MenuController) SetSide(o Orientation) error {
	if o != Left && o != Right {
		return invalid(ErrInvalidOrientation, "menu side", o)
	}
	c.side = o
	return nil
}

func (c *MenuController) Side() Orientation {
	return c.side
}

// Position returns where the panel goes in a parent of size.
func (c *MenuController) Position(parent image.Point) image.Point {
	if c.side == Left {
		return image.ZP
	}
	return image.Pt(maximum(0, parent.X-c.Surface().Size().X), 0)
}

// AddItem appends a button to the menu. Its handlers are live while the menu is active.
func (c *MenuController) AddItem(text string, click func()) (*Button, error) {
	r := image.Rect(0, 0, c.width, menuItemHeight).Add(image.Pt(0, menuItemsY+len(c.items)*menuItemHeight))
	b, err := NewButton(c.Env, text, r)
	if err != nil {
		return nil, err
	}
	b.Color = nil
	b.TextColor = color.White
	b.Click = click
	c.items = append(c.items, b)
	if err := c.Adopt(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Items returns the menu's buttons.
func (c *MenuController) Items() []*Button {
	return c.items
}

// OnNavigatedTo draws the content once, so the first frame is complete.
func (c *MenuController) OnNavigatedTo() {
	c.paint()
}

func (c *MenuController) paint() {
	content := c.Content()
	content.Fill(c.Background)
	for _, b := range c.items {
		b.Render(content)
	}
}

// UpdateDimensions resizes the panel for a parent of size. The width stays fixed.
func (c *MenuController) UpdateDimensions(size image.Point) error {
	panel := c.panelSize(size)
	if err := c.ScrollController.UpdateDimensions(panel); err != nil {
		return err
	}
	x, y := c.Offset()
	if err := c.SetContentSize(image.Pt(panel.X, panel.Y+c.extent)); err != nil {
		return err
	}
	c.ScrollTo(x, y)
	c.paint()
	return nil
}

func (c *MenuController) Update(x, y int, delta float64) {
	c.ScrollController.Update(x, y, delta)
	ox, oy := c.Offset()
	area := c.InputArea().Add(image.Pt(x, y))
	for _, b := range c.items {
		b.Update(x+int(math.Round(ox)), y+int(math.Round(oy)))
		b.Clip = &area
	}
	if c.Title != nil {
		c.Title.Position = image.Pt(c.Surface().Size().X/2, menuTitleY)
	}
}

func (c *MenuController) Render() {
	c.paint()
	c.ScrollController.Render()
	if c.Title != nil {
		c.Title.Render(c.Surface())
	}
}

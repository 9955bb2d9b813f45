package vcui

import (
	"image"
	"image/color"
)

// TabItem describes one tab of a TabBarController.
// Either Instance is set, and that controller is kept for the life of the tab bar,
// or New is set, and a controller is built each time the tab is selected and closed
// when another tab is selected.
type TabItem struct {
	Title    string
	New      func(env *Env, size image.Point) (ViewController, error)
	Instance ViewController
}

// TabBar is a row of buttons, one per tab, spread evenly across its width.
type TabBar struct {
	Color         color.Color // of the bar
	SelectedColor color.Color // marker under the selected tab
	Selected      int
	Changed       func(index int) // called on a click on a tab that is not selected

	env     *Env
	surface Surface
	buttons []*Button
	offset  image.Point
}

var _ Interactive = &TabBar{}

// NewTabBar returns a bar of width with one button per title. Height, font and colors come from env.Config.TabBar.
func NewTabBar(env *Env, width int, titles []string) (*TabBar, error) {
	cfg := env.Config.TabBar
	s, err := env.NewSurface(image.Pt(width, cfg.Height))
	if err != nil {
		return nil, err
	}
	font, err := env.Fonts.Get(env.Config.Font.Name, cfg.FontSize)
	if err != nil {
		return nil, err
	}
	ui := &TabBar{
		Color:         mustColor(cfg.Color),
		SelectedColor: mustColor(cfg.HighlightColor),
		env:           env,
		surface:       s,
	}
	for i, t := range titles {
		b, err := NewButton(env, t, image.Rectangle{})
		if err != nil {
			return nil, err
		}
		b.Font = font
		b.Color = nil
		b.HighlightColor = mustColor(cfg.HighlightColor)
		b.TextColor = mustColor(cfg.TextColor)
		b.TextHighlightColor = mustColor(cfg.TextHighlightColor)
		index := i
		b.Click = func() {
			if index == ui.Selected {
				return
			}
			if ui.Changed != nil {
				ui.Changed(index)
			}
		}
		ui.buttons = append(ui.buttons, b)
	}
	ui.layout()
	return ui, nil
}

func (ui *TabBar) layout() {
	size := ui.surface.Size()
	n := len(ui.buttons)
	if n == 0 {
		return
	}
	w := float64(size.X) / float64(n)
	for i, b := range ui.buttons {
		b.Rect = Rectf(w*float64(i), 0, w, float64(size.Y)).Rectangle()
	}
}

// Surface returns the surface the bar renders into.
func (ui *TabBar) Surface() Surface {
	return ui.surface
}

// Height of the bar.
func (ui *TabBar) Height() int {
	return ui.surface.Size().Y
}

// Buttons returns the tab buttons, in tab order.
func (ui *TabBar) Buttons() []*Button {
	return ui.buttons
}

// UpdateDimensions resizes the bar to width, keeping its height, and spreads the buttons again.
func (ui *TabBar) UpdateDimensions(width int) error {
	s, err := ui.env.Backend.Scale(ui.surface, clampSize(image.Pt(width, ui.surface.Size().Y)))
	if err != nil {
		return err
	}
	ui.surface = s
	ui.layout()
	return nil
}

// Update records the screen position of the bar.
func (ui *TabBar) Update(x, y int) {
	ui.offset = image.Pt(x, y)
	for _, b := range ui.buttons {
		b.Update(x, y)
	}
}

func (ui *TabBar) Connect(s *Subscriptions) error {
	for _, b := range ui.buttons {
		if err := b.Connect(s); err != nil {
			return err
		}
	}
	return nil
}

func (ui *TabBar) Measure() image.Point {
	return ui.surface.Size()
}

// Render draws the bar on its own surface.
func (ui *TabBar) Render() {
	ui.surface.Fill(ui.Color)
	for i, b := range ui.buttons {
		if i == ui.Selected && ui.SelectedColor != nil {
			r := b.Rect
			r.Min.Y = r.Max.Y - maximum(2, r.Dy()/20)
			ui.surface.DrawRect(r, ui.SelectedColor)
		}
		b.Render(ui.surface)
	}
}

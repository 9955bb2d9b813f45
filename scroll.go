package vcui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
)

// Visibility selects when scrollbars are drawn.
type Visibility int

const (
	VisibilityNever      = Visibility(iota)
	VisibilityOnFocus    // declared, not supported: rejected
	VisibilityOnActivity // while hovered or dragged, and for a timeout after wheel or drag activity
	VisibilityAlways
)

var visibilityNames = []string{"never", "on-focus", "on-activity", "always"}

func (v Visibility) String() string {
	if v >= 0 && int(v) < len(visibilityNames) {
		return visibilityNames[v]
	}
	return fmt.Sprintf("Visibility(%d)", int(v))
}

// ParseVisibility parses "never", "on-focus", "on-activity" or "always".
func ParseVisibility(s string) (Visibility, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range visibilityNames {
		if s == name {
			return Visibility(i), nil
		}
	}
	return 0, invalid(ErrInvalidMode, "scrollbar visibility", fmt.Sprintf("%q", s))
}

func (v Visibility) check() error {
	switch v {
	case VisibilityNever, VisibilityOnActivity, VisibilityAlways:
		return nil
	case VisibilityOnFocus:
		return invalid(ErrUnsupported, "scrollbar visibility", v)
	}
	return invalid(ErrInvalidMode, "scrollbar visibility", int(v))
}

// scrollbar is the state of one axis.
type scrollbar struct {
	track       Rect // background
	thumb       Rect // empty if the axis does not scroll
	hovered     bool // pointer in track
	highlighted bool // pointer in thumb, or dragging
	dragging    bool
	grab        float64 // pointer offset from thumb origin at drag start
	timeout     float64
	visible     bool
}

// AxisState is a snapshot of one scrollbar's interaction state.
type AxisState struct {
	Hovered, Highlighted, Dragging, Visible bool
	Grab, Timeout                           float64
}

func (sb *scrollbar) state() AxisState {
	return AxisState{sb.hovered, sb.highlighted, sb.dragging, sb.visible, sb.grab, sb.timeout}
}

// ScrollGeometry is the derived scrollbar geometry and the offset it was derived from.
type ScrollGeometry struct {
	Offset          [2]float64 // x, y
	VerticalTrack   Rect
	VerticalThumb   Rect
	HorizontalTrack Rect
	HorizontalThumb Rect
	Gutter          float64
	Vertical        bool // vertical axis scrolls
	Horizontal      bool // horizontal axis scrolls
}

// ScrollController shows a window onto a larger content surface and lets you scroll it
// with the mouse wheel or by dragging the scrollbar thumbs.
//
// Draw content on Content(), then call ScrollController.Render to composite it
// with the scrollbars into Surface(). The offset is the top-left of the window in
// content coordinates, negated: it is always in [visible-content, 0].
type ScrollController struct {
	Controller

	ScrollIntensity float64 // offset change per delta unit for one wheel step
	Timeout         float64 // delta units scrollbars stay visible after activity
	BackgroundWidth int     // of the scrollbar track
	ThumbWidth      int
	Color           color.Color // thumb
	HighlightColor  color.Color // thumb when hovered or dragged
	BackgroundColor color.Color // track

	content    Surface
	direction  Orientation
	visibility Visibility
	x, y       float64
	v, h       scrollbar
	gutter     float64
	origin     image.Point // screen position of the surface, from Update
	delta      float64     // from last Update, scales wheel steps
}

var _ ViewController = &ScrollController{}

// NewScrollController returns a controller with a visible surface of size and content of the same size.
func NewScrollController(env *Env, size image.Point) (*ScrollController, error) {
	c := &ScrollController{}
	if err := c.Init(env, size); err != nil {
		return nil, err
	}
	return c, nil
}

// Init sets up an embedded ScrollController. Settings come from env.Config.Scroll.
func (c *ScrollController) Init(env *Env, size image.Point) error {
	if err := c.Controller.Init(env, size); err != nil {
		return err
	}
	content, err := env.NewSurface(size)
	if err != nil {
		return err
	}
	cfg := env.Config.Scroll
	dir, err := ParseOrientation(cfg.Direction)
	if err != nil {
		return err
	}
	vis, err := ParseVisibility(cfg.Visibility)
	if err != nil {
		return err
	}
	c.content = content
	c.ScrollIntensity = cfg.Intensity
	c.Timeout = cfg.Timeout
	c.BackgroundWidth = cfg.BackgroundWidth
	c.ThumbWidth = cfg.ThumbWidth
	c.Color = mustColor(cfg.Color)
	c.HighlightColor = mustColor(cfg.HighlightColor)
	c.BackgroundColor = mustColor(cfg.BackgroundColor)
	if err := c.SetDirection(dir); err != nil {
		return err
	}
	if err := c.SetVisibility(vis); err != nil {
		return err
	}
	c.Resize()
	return nil
}

// SetDirection sets the axis the mouse wheel scrolls, Vertical or Horizontal.
func (c *ScrollController) SetDirection(o Orientation) error {
	if err := checkAxis(o); err != nil {
		return fmt.Errorf("scroll direction: %w", err)
	}
	c.direction = o
	return nil
}

func (c *ScrollController) Direction() Orientation {
	return c.direction
}

func (c *ScrollController) SetVisibility(v Visibility) error {
	if err := v.check(); err != nil {
		return err
	}
	c.visibility = v
	return nil
}

func (c *ScrollController) Visibility() Visibility {
	return c.visibility
}

// Content returns the surface to draw the scrollable content on.
func (c *ScrollController) Content() Surface {
	return c.content
}

// SetContent replaces the content surface. The offset is clamped to the new size.
func (c *ScrollController) SetContent(s Surface) {
	c.content = s
	c.scrollTo(c.x, c.y)
}

// SetContentSize replaces the content with a new, empty surface of size.
func (c *ScrollController) SetContentSize(size image.Point) error {
	s, err := c.Env.NewSurface(size)
	if err != nil {
		return err
	}
	c.SetContent(s)
	return nil
}

// Offset returns the scroll offset, both values in [visible-content, 0].
func (c *ScrollController) Offset() (x, y float64) {
	return c.x, c.y
}

// ScrollTo sets the offset, clamped so content never scrolls past an edge.
func (c *ScrollController) ScrollTo(x, y float64) {
	c.scrollTo(x, y)
}

// ScrollToX sets only the horizontal offset.
func (c *ScrollController) ScrollToX(x float64) {
	c.scrollTo(x, c.y)
}

// ScrollToY sets only the vertical offset.
func (c *ScrollController) ScrollToY(y float64) {
	c.scrollTo(c.x, y)
}

func (c *ScrollController) scrollTo(x, y float64) {
	vw, vh, cw, ch := c.dims()
	c.x = clamp(x, math.Min(0, vw-cw), 0)
	c.y = clamp(y, math.Min(0, vh-ch), 0)
	c.evaluate()
}

// dims returns the visible and content sizes.
func (c *ScrollController) dims() (vw, vh, cw, ch float64) {
	vs := c.Surface().Size()
	cs := vs
	if c.content != nil {
		cs = c.content.Size()
	}
	return float64(vs.X), float64(vs.Y), float64(cs.X), float64(cs.Y)
}

// Scrollable reports per axis whether the content is larger than the visible surface.
// An axis that does not scroll has no scrollbar and ignores input.
func (c *ScrollController) Scrollable() (horizontal, vertical bool) {
	vw, vh, cw, ch := c.dims()
	return cw > vw, ch > vh
}

// InputArea returns the part of the visible surface, in surface coordinates,
// that is not covered by the track of a scrollable axis.
func (c *ScrollController) InputArea() image.Rectangle {
	r := image.Rectangle{Max: c.Surface().Size()}
	hs, vs := c.Scrollable()
	if vs {
		r.Max.X = maximum(0, r.Max.X-c.BackgroundWidth)
	}
	if hs {
		r.Max.Y = maximum(0, r.Max.Y-c.BackgroundWidth)
	}
	return r
}

// Resize recomputes the scrollbar tracks and thumbs for the current sizes.
func (c *ScrollController) Resize() {
	size := c.Surface().Size()
	w, h := float64(size.X), float64(size.Y)
	bw := float64(c.BackgroundWidth)
	c.v.track = Rectf(w-bw, 0, bw, h)
	c.h.track = Rectf(0, h-bw, w, bw)
	c.scrollTo(c.x, c.y)
}

// evaluate derives the thumbs from the offset and the sizes.
func (c *ScrollController) evaluate() {
	vw, vh, cw, ch := c.dims()
	hs, vs := c.Scrollable()
	bw := float64(c.BackgroundWidth)
	tw := float64(c.ThumbWidth)

	c.gutter = 0
	if hs && vs {
		c.gutter = bw
	}
	start := bw - (bw-tw)/2

	if vs {
		ratio := ch / vh
		c.v.thumb = Rectf(vw-start, -c.y/ratio, tw, vh*(vh/ch)-c.gutter)
	} else {
		c.v = scrollbar{track: c.v.track, timeout: c.v.timeout}
	}
	if hs {
		ratio := cw / vw
		c.h.thumb = Rectf(-c.x/ratio, vh-start, vw*(vw/cw)-c.gutter, tw)
	} else {
		c.h = scrollbar{track: c.h.track, timeout: c.h.timeout}
	}
}

// Geometry returns a snapshot of the derived geometry.
func (c *ScrollController) Geometry() ScrollGeometry {
	hs, vs := c.Scrollable()
	return ScrollGeometry{
		Offset:          [2]float64{c.x, c.y},
		VerticalTrack:   c.v.track,
		VerticalThumb:   c.v.thumb,
		HorizontalTrack: c.h.track,
		HorizontalThumb: c.h.thumb,
		Gutter:          c.gutter,
		Vertical:        vs,
		Horizontal:      hs,
	}
}

// Axis returns the interaction state of the Vertical or Horizontal scrollbar.
func (c *ScrollController) Axis(o Orientation) (AxisState, error) {
	switch o {
	case Vertical:
		return c.v.state(), nil
	case Horizontal:
		return c.h.state(), nil
	}
	return AxisState{}, invalid(ErrInvalidOrientation, "axis", o)
}

func (c *ScrollController) local(p image.Point) (x, y float64) {
	p = p.Sub(c.origin)
	return float64(p.X), float64(p.Y)
}

// Connect subscribes the scrollbar input handlers.
func (c *ScrollController) Connect(s *Subscriptions) error {
	handlers := []struct {
		c  Category
		fn Handler
	}{
		{CategoryWindowResize, func(Event) { c.Resize() }},
		{CategoryMouseMotion, c.mouseMotion},
		{CategoryMousePress, c.mousePress},
		{CategoryMouseButtonDown, c.mouseButtonDown},
		{CategoryMouseButtonUp, c.mouseButtonUp},
	}
	for _, h := range handlers {
		if err := s.Add(h.c, h.fn); err != nil {
			return err
		}
	}
	return nil
}

func (c *ScrollController) hover(x, y float64) {
	hs, vs := c.Scrollable()
	update := func(sb *scrollbar, scrollable, locked bool) {
		if locked || !scrollable {
			sb.hovered = false
			sb.highlighted = sb.dragging
			return
		}
		sb.hovered = Within(x, y, sb.track)
		sb.highlighted = sb.dragging || (sb.hovered && Within(x, y, sb.thumb))
	}
	update(&c.v, vs, c.h.dragging)
	update(&c.h, hs, c.v.dragging)
}

func (c *ScrollController) mouseMotion(e Event) {
	c.hover(c.local(e.Pos))
}

func (c *ScrollController) mouseButtonDown(e Event) {
	hs, vs := c.Scrollable()
	x, y := c.local(e.Pos)
	switch e.Button {
	case ButtonLeft:
		if vs && !c.h.dragging && Within(x, y, c.v.thumb) {
			c.v.dragging = true
			c.v.highlighted = true
			c.v.grab = y - c.v.thumb.Y
		} else if hs && !c.v.dragging && Within(x, y, c.h.thumb) {
			c.h.dragging = true
			c.h.highlighted = true
			c.h.grab = x - c.h.thumb.X
		}
	case WheelUp, WheelDown:
		move := c.ScrollIntensity * c.delta
		if e.Button == WheelDown {
			move = -move
		}
		if c.direction == Vertical {
			if vs {
				c.scrollTo(c.x, c.y+move)
				c.v.timeout = c.Timeout
			}
		} else if hs {
			c.scrollTo(c.x+move, c.y)
			c.h.timeout = c.Timeout
		}
	}
}

// mousePress moves the content while a thumb is dragged, keeping the grab point under the pointer.
func (c *ScrollController) mousePress(e Event) {
	if !e.Held(ButtonLeft) {
		return
	}
	c.drag(e.Pos)
}

func (c *ScrollController) drag(p image.Point) {
	vw, vh, cw, ch := c.dims()
	x, y := c.local(p)
	if c.v.dragging {
		c.scrollTo(c.x, dragOffset(y, c.v.grab, ch, vh))
	} else if c.h.dragging {
		c.scrollTo(dragOffset(x, c.h.grab, cw, vw), c.y)
	}
}

// dragOffset returns the unclamped offset for a thumb dragged to pointer.
func dragOffset(pointer, grab, content, visible float64) float64 {
	return -(pointer - grab) * (content / visible)
}

func (c *ScrollController) mouseButtonUp(e Event) {
	if e.Button != ButtonLeft {
		return
	}
	// the release may come in the same frame as the last motion
	c.drag(e.Pos)
	c.v.dragging = false
	c.h.dragging = false
	c.hover(c.local(e.Pos))
}

// Update advances the scrollbar visibility timers. x and y are the screen position of the surface.
func (c *ScrollController) Update(x, y int, delta float64) {
	c.origin = image.Pt(x, y)
	c.delta = delta
	hs, vs := c.Scrollable()
	c.tick(&c.v, vs, delta)
	c.tick(&c.h, hs, delta)
}

func (c *ScrollController) tick(sb *scrollbar, scrollable bool, delta float64) {
	sb.timeout = math.Max(sb.timeout-delta, 0)
	if sb.dragging {
		sb.timeout = c.Timeout
	}
	switch c.visibility {
	case VisibilityNever:
		sb.visible = false
	case VisibilityAlways:
		sb.visible = scrollable
	default:
		sb.visible = (sb.timeout > 0 || sb.hovered || sb.dragging) && scrollable
	}
}

// Render composites the content at the offset, then the visible scrollbars.
func (c *ScrollController) Render() {
	dst := c.Surface()
	if cs, ds := c.content.Size(), dst.Size(); cs.X < ds.X || cs.Y < ds.Y {
		dst.Fill(color.Black)
	}
	dst.Blit(c.content, image.Pt(int(math.Round(c.x)), int(math.Round(c.y))), nil)
	c.renderBar(dst, &c.v)
	c.renderBar(dst, &c.h)
}

func (c *ScrollController) renderBar(dst Surface, sb *scrollbar) {
	if !sb.visible || sb.thumb.Empty() {
		return
	}
	dst.DrawRect(sb.track.Rectangle(), c.BackgroundColor)
	thumb := c.Color
	if sb.highlighted {
		thumb = c.HighlightColor
	}
	dst.DrawRect(sb.thumb.Rectangle(), thumb)
}

// DidNavigate runs a resize pass, so geometry is right before the first render.
func (c *ScrollController) DidNavigate() {
	c.Resize()
}

// UpdateDimensions rescales the visible surface and recomputes the scrollbars.
func (c *ScrollController) UpdateDimensions(size image.Point) error {
	if err := c.Controller.UpdateDimensions(size); err != nil {
		return err
	}
	c.Resize()
	return nil
}

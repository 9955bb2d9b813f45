package vcui

import (
	"fmt"
	"strings"
)

// Orientation is used for text alignment, scroll direction, gradient direction and menu side.
// Each use accepts only a subset, other values are rejected.
type Orientation int

const (
	Top = Orientation(iota + 1)
	Bottom
	Left
	Right
	Center
	Vertical
	Horizontal
)

// Aliases for vertical text alignment: Over places text above the position, Below under it.
const (
	Over  = Top
	Below = Bottom
)

var orientationNames = map[Orientation]string{
	Top:        "top",
	Bottom:     "bottom",
	Left:       "left",
	Right:      "right",
	Center:     "center",
	Vertical:   "vertical",
	Horizontal: "horizontal",
}

func (o Orientation) String() string {
	if s, ok := orientationNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// ParseOrientation parses the lower case name of an orientation.
func ParseOrientation(s string) (Orientation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for o, name := range orientationNames {
		if name == s {
			return o, nil
		}
	}
	return 0, invalid(ErrInvalidOrientation, "parse orientation", fmt.Sprintf("%q", s))
}

func checkAxis(o Orientation) error {
	if o != Vertical && o != Horizontal {
		return invalid(ErrInvalidOrientation, "axis", o)
	}
	return nil
}

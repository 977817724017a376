package ggbutton

import "github.com/gogpu/ggbutton/shape"

// InteractionState selects the colour set and paint pass of a decorated
// widget.
type InteractionState uint8

// Interaction states. StateDisabled is never stored; it is derived at paint
// time from the widget's enabled flag.
const (
	StateNormal InteractionState = iota
	StateHighlight
	StateClick
	StateDisabled

	stateCount
)

// String returns the state name.
func (s InteractionState) String() string {
	switch s {
	case StateNormal:
		return "Normal"
	case StateHighlight:
		return "Highlight"
	case StateClick:
		return "Click"
	case StateDisabled:
		return "Disabled"
	default:
		return "InteractionState(?)"
	}
}

// ShadowDirection is the compass side or corner the drop shadow falls toward.
type ShadowDirection = shape.Direction

// Shadow directions.
const (
	North     = shape.North
	NorthEast = shape.NorthEast
	East      = shape.East
	SouthEast = shape.SouthEast
	South     = shape.South
	SouthWest = shape.SouthWest
	West      = shape.West
	NorthWest = shape.NorthWest
)

// ParseShadowDirection maps a direction name ("North", "SouthEast", ...)
// back to its value.
func ParseShadowDirection(s string) (ShadowDirection, bool) {
	return shape.ParseDirection(s)
}

// ShadowThickness is the shadow half-width. The pen that strokes the shadow
// is twice as wide.
type ShadowThickness uint8

// Shadow thicknesses.
const (
	ShadowNone ShadowThickness = iota
	ShadowThin
	ShadowNormal
	ShadowThick
)

// Pixels returns the shadow half-width in pixels.
func (t ShadowThickness) Pixels() int {
	if t > ShadowThick {
		return 0
	}
	return int(t)
}

// String returns the thickness name.
func (t ShadowThickness) String() string {
	switch t {
	case ShadowNone:
		return "None"
	case ShadowThin:
		return "Thin"
	case ShadowNormal:
		return "Normal"
	case ShadowThick:
		return "Thick"
	default:
		return "ShadowThickness(?)"
	}
}

// ParseShadowThickness maps a thickness name back to its value.
func ParseShadowThickness(s string) (ShadowThickness, bool) {
	for t := ShadowNone; t <= ShadowThick; t++ {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

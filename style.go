package ggbutton

import "fmt"

// Padding insets the text box inside the face rectangle.
type Padding struct {
	Left, Top, Right, Bottom int
}

// ColorSet holds the colours used for one interaction state.
// Unset Background and Text defer to the widget's native colours.
type ColorSet struct {
	Shadow     Color
	Background Color
	Border     Color
	Text       Color
}

// Style configures how a Decorator paints its widgets. A Decorator owns
// one Style and shares it read-only across every widget it decorates.
type Style struct {
	// CornerRadius is the corner arc radius in pixels. Zero gives square
	// corners.
	CornerRadius int

	// BorderWidth is the outline width in pixels. Zero draws no outline,
	// but still spaces the layout as if it were one pixel wide.
	BorderWidth int

	// TextPadding insets the text inside the face rectangle.
	TextPadding Padding

	ShadowDirection ShadowDirection
	ShadowThickness ShadowThickness

	// Colors is indexed by InteractionState.
	Colors [stateCount]ColorSet
}

// DefaultStyle returns the stock look: 8px corners, a 1px black outline and
// a normal-width shadow toward the bottom right.
func DefaultStyle() Style {
	return Style{
		CornerRadius:    8,
		BorderWidth:     1,
		ShadowDirection: SouthEast,
		ShadowThickness: ShadowNormal,
		Colors: [stateCount]ColorSet{
			StateNormal: {
				Shadow: DarkGray,
				Border: Black,
			},
			StateHighlight: {
				Shadow: Black,
				Border: Blue,
			},
			StateClick: {
				Shadow: Black,
				Border: Black,
				Text:   GhostWhite,
			},
			StateDisabled: {
				Shadow: DarkGray,
				Border: LightGray,
				Text:   Gray,
			},
		},
	}
}

// ColorsFor returns the colour set for a state. Unknown states use the
// normal set.
func (s *Style) ColorsFor(state InteractionState) ColorSet {
	if state >= stateCount {
		state = StateNormal
	}
	return s.Colors[state]
}

// SetColors replaces the colour set for a state.
func (s *Style) SetColors(state InteractionState, cs ColorSet) {
	if state < stateCount {
		s.Colors[state] = cs
	}
}

// Validate reports whether every field is in range.
func (s Style) Validate() error {
	switch {
	case s.CornerRadius < 0:
		return fmt.Errorf("%w: corner radius %d", ErrInvalidStyle, s.CornerRadius)
	case s.BorderWidth < 0:
		return fmt.Errorf("%w: border width %d", ErrInvalidStyle, s.BorderWidth)
	case s.TextPadding.Left < 0 || s.TextPadding.Top < 0 || s.TextPadding.Right < 0 || s.TextPadding.Bottom < 0:
		return fmt.Errorf("%w: negative text padding %+v", ErrInvalidStyle, s.TextPadding)
	case !s.ShadowDirection.Valid():
		return fmt.Errorf("%w: shadow direction %d", ErrInvalidStyle, uint8(s.ShadowDirection))
	case s.ShadowThickness > ShadowThick:
		return fmt.Errorf("%w: shadow thickness %d", ErrInvalidStyle, uint8(s.ShadowThickness))
	}
	return nil
}

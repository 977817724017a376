package ggbutton

import "github.com/gogpu/gg"

// Native carries the widget's own colours, used where the style leaves a
// slot unset.
type Native struct {
	Background gg.RGBA
	Foreground gg.RGBA
}

// Palette is the concrete set of colours for one paint pass.
type Palette struct {
	State      InteractionState
	Shadow     gg.RGBA
	Background gg.RGBA
	Border     gg.RGBA
	Text       gg.RGBA
}

// ResolveColors turns an interaction state into concrete colours.
//
// A widget that is not enabled always paints with the disabled set,
// whatever state was passed in. Fully transparent colours, set or native,
// become TransparentWhite. Unset background and text fall back to the
// native colours; unset shadow and border paint nothing.
func ResolveColors(state InteractionState, enabled bool, style *Style, native Native) Palette {
	if !enabled {
		state = StateDisabled
	}
	if state >= stateCount {
		state = StateNormal
	}
	set := style.ColorsFor(state)

	return Palette{
		State:      state,
		Shadow:     resolve(set.Shadow, TransparentWhite),
		Background: resolve(set.Background, native.Background),
		Border:     resolve(set.Border, TransparentWhite),
		Text:       resolve(set.Text, native.Foreground),
	}
}

func resolve(c Color, fallback gg.RGBA) gg.RGBA {
	if !c.Valid {
		return normalize(fallback)
	}
	return normalize(c.RGBA)
}

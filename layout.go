package ggbutton

import "image"

// Layout holds the two rectangles a paint pass draws into. Both have the
// same size; the shadow sits toward the shadow direction and the face
// sits opposite it.
type Layout struct {
	Shadow image.Rectangle
	Face   image.Rectangle
}

// ResolveLayout computes the shadow and face rectangles for a widget of the
// given size.
//
// Outlines are stroked on inclusive pixel bounds, so the usable area is one
// pixel smaller than the widget on each axis. Along every axis the direction
// touches, the rectangles shrink by twice the border spacing (a zero border
// counts as one pixel) plus the shadow thickness, and the shadow is shifted
// by the thickness toward the direction.
func ResolveLayout(size image.Point, borderWidth, thickness int, dir ShadowDirection) Layout {
	thickness = max(thickness, 0)
	spacing := max(borderWidth, 1)

	w := size.X - 1
	h := size.Y - 1
	if dir.HasTop() || dir.HasBottom() {
		h -= 2*spacing + thickness
	}
	if dir.HasLeft() || dir.HasRight() {
		w -= 2*spacing + thickness
	}
	w = max(w, 0)
	h = max(h, 0)

	var shadow, face image.Point
	switch {
	case dir.HasRight():
		shadow.X = thickness
	case dir.HasLeft():
		face.X = thickness
	}
	switch {
	case dir.HasBottom():
		shadow.Y = thickness
	case dir.HasTop():
		face.Y = thickness
	}

	sz := image.Pt(w, h)
	return Layout{
		Shadow: image.Rectangle{Min: shadow, Max: shadow.Add(sz)},
		Face:   image.Rectangle{Min: face, Max: face.Add(sz)},
	}
}

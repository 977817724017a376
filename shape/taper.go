// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import "github.com/gogpu/gg"

// FlattenTolerance is the chord tolerance used when a partial outline is
// flattened for tapering.
const FlattenTolerance = 0.12

// Taper ramp: segments closer than these distances to an open end are
// drawn 1, 2 and 3 pixels wide.
const (
	taperThin   = 3
	taperMedium = 5
	taperWide   = 8
)

// Segment is one independently stroked piece of a tapered outline.
type Segment struct {
	From, To gg.Point
	Width    float64
}

// TrimFor returns how many flattened points are dropped from each end of
// a partial outline before tapering. The extra points come from the open
// path construction and are not visible pixels.
func TrimFor(dir Direction) int {
	if dir.IsCorner() {
		return 2
	}
	return 1
}

// Taper splits a polyline into segments whose width ramps from 1 at both
// ends up to width in the interior. No segment is ever wider than width.
//
// trim points are dropped from each end first. Fewer than two remaining
// points yield no segments.
func Taper(points []gg.Point, trim int, width float64) []Segment {
	trim = max(trim, 0)
	if len(points) < 2*trim+2 {
		return nil
	}
	pts := points[trim : len(points)-trim]

	n := len(pts) - 1
	segs := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		segs = append(segs, Segment{
			From:  pts[i],
			To:    pts[i+1],
			Width: taperWidth(min(i, n-1-i), width),
		})
	}
	return segs
}

// taperWidth returns the pen width for a segment d segments away from the
// nearest open end.
func taperWidth(d int, width float64) float64 {
	var w float64
	switch {
	case d < taperThin:
		w = 1
	case d < taperMedium:
		w = 2
	case d < taperWide:
		w = 3
	default:
		w = width
	}
	return min(w, width)
}

// Taper flattens the outline and returns its tapered segments for a pen of
// the given width.
func (o *Outline) Taper(width float64) []Segment {
	return Taper(o.Flatten(FlattenTolerance), TrimFor(o.Direction), width)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Arc is one quarter-circle corner of an outline.
// Angles are in degrees, clockwise on screen.
type Arc struct {
	Center gg.Point
	Radius float64
	Start  float64
	Sweep  float64
}

// StartPoint returns the point where the arc begins.
func (a Arc) StartPoint() gg.Point {
	rad := a.Start * math.Pi / 180
	return gg.Pt(a.Center.X+a.Radius*math.Cos(rad), a.Center.Y+a.Radius*math.Sin(rad))
}

// EndPoint returns the point where the arc ends.
func (a Arc) EndPoint() gg.Point {
	rad := (a.Start + a.Sweep) * math.Pi / 180
	return gg.Pt(a.Center.X+a.Radius*math.Cos(rad), a.Center.Y+a.Radius*math.Sin(rad))
}

// Outline is a rounded-rectangle path together with the corner arcs it was
// built from. A zero-radius outline is a plain closed rectangle with no arcs.
type Outline struct {
	Path      *gg.Path
	Arcs      []Arc
	Closed    bool
	Direction Direction
	Bounds    image.Rectangle
}

// corner indexes in clockwise traversal order.
const (
	cornerTopLeft = iota
	cornerTopRight
	cornerBottomRight
	cornerBottomLeft
)

// cornerStart holds the starting angle of each corner arc.
var cornerStart = [4]float64{
	cornerTopLeft:     180,
	cornerTopRight:    270,
	cornerBottomRight: 0,
	cornerBottomLeft:  90,
}

// RoundedRect builds a closed rounded rectangle inside bounds.
// A radius of zero (or a bounds too small to hold any arc) yields the
// plain rectangle.
func RoundedRect(bounds image.Rectangle, radius int) *Outline {
	r := clampRadius(bounds, radius)
	if r == 0 {
		return rectOutline(bounds, 0)
	}

	o := &Outline{Path: gg.NewPath(), Closed: true, Bounds: bounds}
	for c := cornerTopLeft; c <= cornerBottomLeft; c++ {
		o.addCorner(bounds, r, c)
	}
	o.Path.Close()
	return o
}

// PartialRoundedRect builds an open outline through the corners facing dir.
//
// Edge directions trace the two corners adjacent to that edge. Corner
// directions trace the named corner and both of its neighbours, so the
// shadow wraps the two edges meeting at that corner.
func PartialRoundedRect(bounds image.Rectangle, radius int, dir Direction) *Outline {
	r := clampRadius(bounds, radius)
	if r == 0 {
		return rectOutline(bounds, dir)
	}

	o := &Outline{Path: gg.NewPath(), Direction: dir, Bounds: bounds}
	first, count := partialCorners(dir)
	for i := 0; i < count; i++ {
		o.addCorner(bounds, r, (first+i)%4)
	}
	return o
}

// partialCorners returns the first corner and the number of corners traced
// for a shadow direction. Directions are ordered clockwise from north in
// pairs (edge, following corner), so each pair starts at the same corner.
func partialCorners(dir Direction) (first, count int) {
	if !dir.Valid() {
		dir = South
	}
	first = int(dir) / 2
	count = 2
	if dir.IsCorner() {
		count = 3
	}
	return first, count
}

// addCorner appends one corner arc, joined to the previous one by a line.
func (o *Outline) addCorner(bounds image.Rectangle, r, corner int) {
	fr := float64(r)
	var cx, cy float64
	switch corner {
	case cornerTopLeft:
		cx, cy = float64(bounds.Min.X)+fr, float64(bounds.Min.Y)+fr
	case cornerTopRight:
		cx, cy = float64(bounds.Max.X)-fr, float64(bounds.Min.Y)+fr
	case cornerBottomRight:
		cx, cy = float64(bounds.Max.X)-fr, float64(bounds.Max.Y)-fr
	default:
		cx, cy = float64(bounds.Min.X)+fr, float64(bounds.Max.Y)-fr
	}

	arc := Arc{Center: gg.Pt(cx, cy), Radius: fr, Start: cornerStart[corner], Sweep: 90}
	start := arc.StartPoint()
	if len(o.Arcs) == 0 {
		o.Path.MoveTo(start.X, start.Y)
	} else {
		o.Path.LineTo(start.X, start.Y)
	}

	a1 := arc.Start * math.Pi / 180
	o.Path.Arc(cx, cy, fr, a1, a1+math.Pi/2)
	o.Arcs = append(o.Arcs, arc)
}

func rectOutline(bounds image.Rectangle, dir Direction) *Outline {
	p := gg.NewPath()
	p.Rectangle(float64(bounds.Min.X), float64(bounds.Min.Y), float64(bounds.Dx()), float64(bounds.Dy()))
	return &Outline{Path: p, Closed: true, Direction: dir, Bounds: bounds}
}

// clampRadius limits the radius to half the smaller side.
func clampRadius(bounds image.Rectangle, radius int) int {
	if radius <= 0 {
		return 0
	}
	limit := min(bounds.Dx(), bounds.Dy()) / 2
	return max(min(radius, limit), 0)
}

// Flatten converts the outline to a polyline with the given chord tolerance.
func (o *Outline) Flatten(tolerance float64) []gg.Point {
	return o.Path.Flatten(tolerance)
}

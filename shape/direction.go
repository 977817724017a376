// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

// Direction is the compass side or corner a drop shadow falls toward.
type Direction uint8

// Shadow directions, clockwise from north.
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	directionCount
)

var directionNames = [...]string{
	North:     "North",
	NorthEast: "NorthEast",
	East:      "East",
	SouthEast: "SouthEast",
	South:     "South",
	SouthWest: "SouthWest",
	West:      "West",
	NorthWest: "NorthWest",
}

// String returns the direction name.
func (d Direction) String() string {
	if !d.Valid() {
		return "Direction(?)"
	}
	return directionNames[d]
}

// Valid reports whether d is one of the eight compass values.
func (d Direction) Valid() bool {
	return d < directionCount
}

// IsCorner reports whether d is a diagonal direction.
func (d Direction) IsCorner() bool {
	return d.Valid() && d%2 == 1
}

// HasTop reports whether d points toward the top edge.
func (d Direction) HasTop() bool {
	return d == North || d == NorthEast || d == NorthWest
}

// HasBottom reports whether d points toward the bottom edge.
func (d Direction) HasBottom() bool {
	return d == South || d == SouthEast || d == SouthWest
}

// HasLeft reports whether d points toward the left edge.
func (d Direction) HasLeft() bool {
	return d == West || d == NorthWest || d == SouthWest
}

// HasRight reports whether d points toward the right edge.
func (d Direction) HasRight() bool {
	return d == East || d == NorthEast || d == SouthEast
}

// ParseDirection maps a direction name (as returned by String) back to
// its value.
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return 0, false
}

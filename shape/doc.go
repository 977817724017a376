// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shape builds the outlines used to paint a decorated button.
//
// Two outlines are produced on top of [gg.Path]:
//
//   - RoundedRect: a closed rectangle whose corners are 90 degree arcs
//   - PartialRoundedRect: an open outline tracing only the corners that
//     face a shadow [Direction]
//
// Partial outlines are stroked as a sequence of independent line segments
// whose width ramps up from 1 pixel at the open ends to the full pen width
// (see [Taper]). This fakes a soft shadow edge without a blur pass.
//
// # Coordinate System
//
// Coordinates follow gg: origin top-left, Y grows downward. Arc angles are
// in degrees, 0 pointing right and increasing clockwise on screen, so the
// top-left corner arc starts at 180 and the bottom-left one at 90.
package shape

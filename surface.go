package ggbutton

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Quality selects the anti-aliasing effort of path operations.
type Quality uint8

// Quality levels.
const (
	QualityDefault Quality = iota
	QualityHigh
)

// Surface is the paint target handed to a paint event.
//
// Paths are never retained by the surface. Implementations are not
// expected to be safe for concurrent use.
type Surface interface {
	// SetQuality sets the smoothing used for subsequent path operations.
	SetQuality(q Quality)

	// SetInterpolation sets the sampling used by DrawImage.
	SetInterpolation(mode gg.InterpolationMode)

	FillPath(p *gg.Path, c gg.RGBA) error
	StrokePath(p *gg.Path, c gg.RGBA, width float64) error
	StrokeLine(from, to gg.Point, c gg.RGBA, width float64) error

	// DrawImage scales img into dst.
	DrawImage(img image.Image, dst image.Rectangle) error

	// DrawText draws s centred on both axes inside box.
	DrawText(s string, face text.Face, box image.Rectangle, c gg.RGBA) error
}

package ggbutton_test

import (
	"errors"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggbutton"
)

var errSurface = errors.New("surface failure")

// op is one recorded surface call.
type op struct {
	kind   string // "fill", "stroke", "line", "image", "text"
	color  gg.RGBA
	width  float64
	rect   image.Rectangle
	text   string
	interp gg.InterpolationMode
}

// recorder is a Surface that records what it is asked to draw.
type recorder struct {
	ops     []op
	quality ggbutton.Quality
	interp  gg.InterpolationMode

	// fail makes every call of that kind return errSurface.
	fail string
}

func (r *recorder) SetQuality(q ggbutton.Quality)           { r.quality = q }
func (r *recorder) SetInterpolation(m gg.InterpolationMode) { r.interp = m }

func (r *recorder) add(o op) error {
	r.ops = append(r.ops, o)
	if o.kind == r.fail {
		return errSurface
	}
	return nil
}

func (r *recorder) FillPath(p *gg.Path, c gg.RGBA) error {
	return r.add(op{kind: "fill", color: c, rect: p.Bounds()})
}

func (r *recorder) StrokePath(p *gg.Path, c gg.RGBA, width float64) error {
	return r.add(op{kind: "stroke", color: c, width: width, rect: p.Bounds()})
}

func (r *recorder) StrokeLine(from, to gg.Point, c gg.RGBA, width float64) error {
	return r.add(op{kind: "line", color: c, width: width})
}

func (r *recorder) DrawImage(img image.Image, dst image.Rectangle) error {
	return r.add(op{kind: "image", rect: dst, interp: r.interp})
}

func (r *recorder) DrawText(s string, face text.Face, box image.Rectangle, c gg.RGBA) error {
	return r.add(op{kind: "text", text: s, rect: box, color: c})
}

// kinds returns the recorded op kinds, collapsing runs of "line" into one.
func (r *recorder) kinds() []string {
	var out []string
	for _, o := range r.ops {
		if o.kind == "line" && len(out) > 0 && out[len(out)-1] == "line" {
			continue
		}
		out = append(out, o.kind)
	}
	return out
}

func (r *recorder) find(kind string) []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == kind {
			out = append(out, o)
		}
	}
	return out
}

var _ ggbutton.Surface = (*recorder)(nil)

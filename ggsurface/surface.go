// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggsurface

import (
	"errors"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ggbutton"
)

// ErrClosed is returned by drawing operations after Close.
var ErrClosed = errors.New("ggsurface: surface is closed")

// Context is a ggbutton.Surface that draws with a gg.Context.
//
// Coordinates passed to the surface are user space: the gg.Context's
// current transform applies to paths, images and text alike, so a caller
// can Translate the gg.Context to place a widget.
//
// Context is NOT safe for concurrent use.
type Context struct {
	dc       *gg.Context
	owned    bool
	interp   gg.InterpolationMode
	fallback text.Face
	closed   bool
}

// New wraps an existing gg.Context. The caller keeps ownership of dc;
// Close does not close it.
func New(dc *gg.Context) *Context {
	return &Context{dc: dc, interp: gg.InterpNearest}
}

// NewImage creates a surface backed by a fresh width×height gg.Context.
func NewImage(width, height int) *Context {
	c := New(gg.NewContext(width, height))
	c.owned = true
	return c
}

// GG returns the underlying drawing context.
func (c *Context) GG() *gg.Context { return c.dc }

// Image returns the rendered pixels.
func (c *Context) Image() image.Image { return c.dc.Image() }

// SavePNG writes the rendered pixels to path.
func (c *Context) SavePNG(path string) error { return c.dc.SavePNG(path) }

// Close releases the gg.Context if this surface created it.
// Close is idempotent.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.owned {
		return c.dc.Close()
	}
	return nil
}

// SetFallbackFace sets the face used for widgets that have no font.
// Without one, DefaultFace is loaded on first use.
func (c *Context) SetFallbackFace(f text.Face) { c.fallback = f }

// SetQuality maps QualityHigh to gg's analytic scanline filler, which
// computes exact coverage for every edge pixel.
func (c *Context) SetQuality(q ggbutton.Quality) {
	if q == ggbutton.QualityHigh {
		c.dc.SetRasterizerMode(gg.RasterizerAnalytic)
		return
	}
	c.dc.SetRasterizerMode(gg.RasterizerAuto)
}

// SetInterpolation sets the sampling used by DrawImage.
func (c *Context) SetInterpolation(mode gg.InterpolationMode) { c.interp = mode }

// Interpolation returns the sampling used by DrawImage.
func (c *Context) Interpolation() gg.InterpolationMode { return c.interp }

// FillPath fills p. Fully transparent fills are skipped; under source-over
// they cannot change a pixel.
func (c *Context) FillPath(p *gg.Path, col gg.RGBA) error {
	if c.closed {
		return ErrClosed
	}
	if col.A == 0 {
		return nil
	}
	c.load(p)
	c.dc.SetColor(col.Color())
	return c.dc.Fill()
}

// StrokePath strokes p with butt caps.
func (c *Context) StrokePath(p *gg.Path, col gg.RGBA, width float64) error {
	if c.closed {
		return ErrClosed
	}
	if col.A == 0 || width <= 0 {
		return nil
	}
	c.load(p)
	c.dc.SetColor(col.Color())
	c.dc.SetLineWidth(width)
	c.dc.SetLineCap(gg.LineCapButt)
	c.dc.SetLineJoin(gg.LineJoinRound)
	return c.dc.Stroke()
}

// StrokeLine strokes one segment with round caps, so consecutive tapered
// segments meet without notches.
func (c *Context) StrokeLine(from, to gg.Point, col gg.RGBA, width float64) error {
	if c.closed {
		return ErrClosed
	}
	if col.A == 0 || width <= 0 {
		return nil
	}
	c.dc.ClearPath()
	c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	c.dc.SetColor(col.Color())
	c.dc.SetLineWidth(width)
	c.dc.SetLineCap(gg.LineCapRound)
	return c.dc.Stroke()
}

// DrawImage scales img into dst using the current interpolation mode.
func (c *Context) DrawImage(img image.Image, dst image.Rectangle) error {
	if c.closed {
		return ErrClosed
	}
	if img == nil || dst.Empty() || img.Bounds().Empty() {
		return nil
	}
	buf := gg.ImageBufFromImage(img)
	if buf == nil {
		return errors.New("ggsurface: cannot convert image")
	}
	c.dc.DrawImageEx(buf, gg.DrawImageOptions{
		X:             float64(dst.Min.X),
		Y:             float64(dst.Min.Y),
		DstWidth:      float64(dst.Dx()),
		DstHeight:     float64(dst.Dy()),
		Interpolation: c.interp,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

// DrawText draws s centred in box. The string is NFC-normalised first so
// decomposed accents shape as single glyphs.
func (c *Context) DrawText(s string, face text.Face, box image.Rectangle, col gg.RGBA) error {
	if c.closed {
		return ErrClosed
	}
	if s == "" || col.A == 0 {
		return nil
	}
	if face == nil {
		f, err := c.defaultFace()
		if err != nil {
			return err
		}
		face = f
	}

	s = norm.NFC.String(s)
	cx := float64(box.Min.X+box.Max.X) / 2
	cy := float64(box.Min.Y+box.Max.Y) / 2

	m := face.Metrics()
	baseline := cy + (m.Ascent-m.Descent)/2

	c.dc.SetFont(face)
	c.dc.SetColor(col.Color())
	c.dc.DrawString(s, cx-face.Advance(s)/2, baseline)
	return nil
}

func (c *Context) defaultFace() (text.Face, error) {
	if c.fallback != nil {
		return c.fallback, nil
	}
	f, err := DefaultFace(DefaultFontSize)
	if err != nil {
		return nil, err
	}
	c.fallback = f
	return f, nil
}

// load replaces the gg.Context's current path with p.
func (c *Context) load(p *gg.Path) {
	c.dc.ClearPath()
	p.Iterate(func(verb gg.PathVerb, pts []float64) {
		switch verb {
		case gg.MoveTo:
			c.dc.MoveTo(pts[0], pts[1])
		case gg.LineTo:
			c.dc.LineTo(pts[0], pts[1])
		case gg.QuadTo:
			c.dc.QuadraticTo(pts[0], pts[1], pts[2], pts[3])
		case gg.CubicTo:
			c.dc.CubicTo(pts[0], pts[1], pts[2], pts[3], pts[4], pts[5])
		case gg.Close:
			c.dc.ClosePath()
		}
	})
}

var _ ggbutton.Surface = (*Context)(nil)

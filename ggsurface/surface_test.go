// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggsurface

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggbutton"
	"github.com/gogpu/ggbutton/shape"
)

func pixel(t *testing.T, s *Context, x, y int) color.NRGBA {
	t.Helper()
	return color.NRGBAModel.Convert(s.Image().At(x, y)).(color.NRGBA)
}

func TestFillPath(t *testing.T) {
	s := NewImage(40, 20)
	defer s.Close()

	o := shape.RoundedRect(image.Rect(2, 2, 38, 18), 4)
	if err := s.FillPath(o.Path, gg.Red); err != nil {
		t.Fatalf("FillPath: %v", err)
	}

	if c := pixel(t, s, 20, 10); c.R < 240 || c.G > 10 || c.A < 240 {
		t.Errorf("centre = %v, want red", c)
	}
	if c := pixel(t, s, 0, 0); c.A != 0 {
		t.Errorf("outside = %v, want untouched", c)
	}
	// The rounded corner leaves the bounds corner uncovered.
	if c := pixel(t, s, 2, 2); c.A > 128 {
		t.Errorf("corner = %v, want mostly transparent", c)
	}
}

func TestFillPath_TransparentIsNoop(t *testing.T) {
	s := NewImage(10, 10)
	defer s.Close()

	o := shape.RoundedRect(image.Rect(0, 0, 10, 10), 0)
	if err := s.FillPath(o.Path, gg.Blue); err != nil {
		t.Fatal(err)
	}
	if err := s.FillPath(o.Path, ggbutton.TransparentWhite); err != nil {
		t.Fatal(err)
	}
	if c := pixel(t, s, 5, 5); c.B < 240 || c.A < 240 {
		t.Errorf("transparent fill changed the pixel: %v", c)
	}
}

func TestStrokePath(t *testing.T) {
	s := NewImage(40, 40)
	defer s.Close()

	o := shape.RoundedRect(image.Rect(5, 5, 35, 35), 0)
	if err := s.StrokePath(o.Path, gg.Black, 2); err != nil {
		t.Fatal(err)
	}
	if c := pixel(t, s, 20, 5); c.A < 200 {
		t.Errorf("edge pixel = %v, want stroked", c)
	}
	if c := pixel(t, s, 20, 20); c.A != 0 {
		t.Errorf("interior pixel = %v, want untouched", c)
	}
}

func TestStrokeLine(t *testing.T) {
	s := NewImage(40, 20)
	defer s.Close()

	if err := s.StrokeLine(gg.Pt(5, 10), gg.Pt(35, 10), gg.Black, 3); err != nil {
		t.Fatal(err)
	}
	if c := pixel(t, s, 20, 10); c.A < 200 {
		t.Errorf("line pixel = %v, want black", c)
	}
	// Round caps extend past the end point.
	if c := pixel(t, s, 36, 10); c.A == 0 {
		t.Errorf("cap pixel = %v, want covered", c)
	}
	if c := pixel(t, s, 20, 2); c.A != 0 {
		t.Errorf("pixel off the line = %v, want untouched", c)
	}

	if err := s.StrokeLine(gg.Pt(0, 0), gg.Pt(10, 0), gg.Black, 0); err != nil {
		t.Errorf("zero width line: %v", err)
	}
}

func TestDrawImage(t *testing.T) {
	s := NewImage(30, 30)
	defer s.Close()

	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			src.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}

	s.SetInterpolation(gg.InterpBilinear)
	if err := s.DrawImage(src, image.Rect(10, 10, 20, 20)); err != nil {
		t.Fatal(err)
	}
	if s.Interpolation() != gg.InterpBilinear {
		t.Errorf("Interpolation() = %v", s.Interpolation())
	}
	if c := pixel(t, s, 15, 15); c.B < 240 || c.A < 240 {
		t.Errorf("image pixel = %v, want blue", c)
	}
	if c := pixel(t, s, 2, 2); c.A != 0 {
		t.Errorf("pixel outside image = %v, want untouched", c)
	}

	if err := s.DrawImage(nil, image.Rect(0, 0, 5, 5)); err != nil {
		t.Errorf("nil image: %v", err)
	}
	if err := s.DrawImage(src, image.Rectangle{}); err != nil {
		t.Errorf("empty destination: %v", err)
	}
}

func TestDrawText(t *testing.T) {
	s := NewImage(80, 30)
	defer s.Close()

	box := image.Rect(0, 0, 80, 30)
	if err := s.DrawText("OK", nil, box, gg.Black); err != nil {
		t.Fatalf("DrawText: %v", err)
	}

	bounds := image.Rectangle{}
	for y := range 30 {
		for x := range 80 {
			if pixel(t, s, x, y).A > 0 {
				bounds = bounds.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	if bounds.Empty() {
		t.Fatal("no text drawn")
	}
	mid := (bounds.Min.X + bounds.Max.X) / 2
	if mid < 30 || mid > 50 {
		t.Errorf("text spans %v, want horizontally centred", bounds)
	}
	if bounds.Min.Y < 2 || bounds.Max.Y > 28 {
		t.Errorf("text spans %v, want inside the box", bounds)
	}
}

func TestDrawText_Empty(t *testing.T) {
	s := NewImage(10, 10)
	defer s.Close()

	if err := s.DrawText("", nil, image.Rect(0, 0, 10, 10), gg.Black); err != nil {
		t.Fatal(err)
	}
	if c := pixel(t, s, 5, 5); c.A != 0 {
		t.Errorf("empty text drew %v", c)
	}
}

func TestDefaultFace(t *testing.T) {
	f, err := DefaultFace(16)
	if err != nil {
		t.Fatal(err)
	}
	if f.Metrics().Ascent <= 0 {
		t.Errorf("ascent = %v", f.Metrics().Ascent)
	}
	if f.Advance("W") <= f.Advance("i") {
		t.Error("Go Regular is proportional; W should be wider than i")
	}
}

func TestSetQuality(t *testing.T) {
	s := NewImage(4, 4)
	defer s.Close()

	s.SetQuality(ggbutton.QualityHigh)
	if got := s.GG().RasterizerMode(); got != gg.RasterizerAnalytic {
		t.Errorf("high quality mode = %v", got)
	}
	s.SetQuality(ggbutton.QualityDefault)
	if got := s.GG().RasterizerMode(); got != gg.RasterizerAuto {
		t.Errorf("default quality mode = %v", got)
	}
}

func TestClose(t *testing.T) {
	s := NewImage(4, 4)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	p := shape.RoundedRect(image.Rect(0, 0, 4, 4), 0).Path
	if err := s.FillPath(p, gg.Black); !errors.Is(err, ErrClosed) {
		t.Errorf("FillPath after Close = %v, want ErrClosed", err)
	}
	if err := s.StrokeLine(gg.Pt(0, 0), gg.Pt(1, 1), gg.Black, 1); !errors.Is(err, ErrClosed) {
		t.Errorf("StrokeLine after Close = %v, want ErrClosed", err)
	}
}

func TestNew_BorrowedContext(t *testing.T) {
	dc := gg.NewContext(8, 8)
	defer dc.Close()

	s := New(dc)
	if s.GG() != dc {
		t.Error("GG() does not return the wrapped context")
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	// The borrowed context is still usable.
	dc.SetColor(gg.Black.Color())
	dc.DrawRectangle(0, 0, 8, 8)
	if err := dc.Fill(); err != nil {
		t.Errorf("borrowed context unusable after Close: %v", err)
	}
}

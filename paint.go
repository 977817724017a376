package ggbutton

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggbutton/shape"
)

// Paint draws w onto s in its current state. Painting a widget that is not
// decorated is a no-op.
//
// A failed surface operation does not stop the pass; every failure is
// logged and the joined errors are returned.
func (d *Decorator) Paint(w Widget, s Surface) error {
	if w == nil || s == nil {
		return nil
	}
	rec, ok := d.records.Get(w.Handle())
	if !ok {
		return nil
	}
	return d.paint(rec, s)
}

// paint runs one paint pass. The order matters: shadow first, then the
// face is erased to the backdrop and refilled, then image, border, text.
func (d *Decorator) paint(rec *record, s Surface) error {
	w := rec.widget
	st := &d.style
	thickness := st.ShadowThickness.Pixels()

	lay := ResolveLayout(w.Size(), st.BorderWidth, thickness, st.ShadowDirection)
	pal := ResolveColors(rec.state, w.Enabled(), st, Native{
		Background: rec.snapshot.Background,
		Foreground: w.Foreground(),
	})

	s.SetQuality(QualityHigh)
	s.SetInterpolation(gg.InterpNearest)

	var errs []error
	check := func(op string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", op, err))
		}
	}

	if thickness > 0 {
		pen := float64(2 * thickness)
		if ShadowNeedsPartial(w, rec.snapshot) {
			outline := shape.PartialRoundedRect(lay.Shadow, st.CornerRadius, st.ShadowDirection)
			for _, seg := range outline.Taper(pen) {
				check("shadow", s.StrokeLine(seg.From, seg.To, pal.Shadow, seg.Width))
			}
		} else {
			outline := shape.RoundedRect(lay.Shadow, st.CornerRadius)
			check("shadow", s.StrokePath(outline.Path, pal.Shadow, pen))
		}
	}

	face := shape.RoundedRect(lay.Face, st.CornerRadius)

	erase := TransparentWhite
	if parentOpaque(w) {
		erase = parentBackground(w, d.log())
	}
	check("erase", s.FillPath(face.Path, erase))
	check("background", s.FillPath(face.Path, pal.Background))

	if img := w.Image(); img != nil {
		s.SetInterpolation(gg.InterpBilinear)
		check("image", s.DrawImage(img, imageRect(lay.Shadow, st.BorderWidth)))
		s.SetInterpolation(gg.InterpNearest)
	}

	if st.BorderWidth > 0 {
		check("border", s.StrokePath(face.Path, pal.Border, float64(st.BorderWidth)))
	}

	if txt := rec.snapshot.Text; txt != "" {
		check("text", s.DrawText(txt, w.Font(), textBox(lay.Face, st.TextPadding), pal.Text))
	}

	d.log().Debug("ggbutton: paint", "handle", w.Handle(), "state", pal.State, "face", lay.Face)

	if err := errors.Join(errs...); err != nil {
		d.log().Warn("ggbutton: paint failed", "handle", w.Handle(), "err", err)
		return fmt.Errorf("ggbutton: paint handle %d: %w", w.Handle(), err)
	}
	return nil
}

// imageRect places the widget image over the shadow rectangle. Without a
// border line the image grows by a pixel on every side to cover the gap.
func imageRect(shadow image.Rectangle, borderWidth int) image.Rectangle {
	if borderWidth > 0 {
		return image.Rect(shadow.Min.X, shadow.Min.Y, shadow.Max.X, shadow.Max.Y+1)
	}
	return image.Rect(shadow.Min.X-1, shadow.Min.Y-1, shadow.Max.X+1, shadow.Max.Y+2)
}

// textBox insets the face rectangle by the padding, collapsing to an empty
// box rather than inverting.
func textBox(face image.Rectangle, p Padding) image.Rectangle {
	r := image.Rectangle{
		Min: face.Min.Add(image.Pt(p.Left, p.Top)),
		Max: face.Max.Sub(image.Pt(p.Right, p.Bottom)),
	}
	r.Max.X = max(r.Max.X, r.Min.X)
	r.Max.Y = max(r.Max.Y, r.Min.Y)
	return r
}

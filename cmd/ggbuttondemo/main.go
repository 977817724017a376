// Command ggbuttondemo renders a sheet of decorated buttons: one row per
// interaction state, one column per shadow direction.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggbutton"
	"github.com/gogpu/ggbutton/ggsurface"
	"github.com/gogpu/ggbutton/widget"
)

const margin = 16

var states = []ggbutton.InteractionState{
	ggbutton.StateNormal,
	ggbutton.StateHighlight,
	ggbutton.StateClick,
	ggbutton.StateDisabled,
}

func main() {
	var (
		output     = flag.String("output", "buttons.png", "output file")
		directions = flag.String("direction", "all", "comma-separated shadow directions, or all")
		thickness  = flag.String("thickness", "Normal", "shadow thickness: None, Thin, Normal, Thick")
		radius     = flag.Int("radius", 8, "corner radius")
		border     = flag.Int("border", 1, "border width")
		width      = flag.Int("width", 120, "button width")
		height     = flag.Int("height", 36, "button height")
		label      = flag.String("text", "Button", "button text")
		background = flag.String("background", "FFFFFF", "sheet background colour")
		verbose    = flag.Bool("v", false, "log decorator activity")
	)
	flag.Parse()

	if *verbose {
		ggbutton.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	dirs, err := parseDirections(*directions)
	if err != nil {
		log.Fatal(err)
	}
	t, ok := ggbutton.ParseShadowThickness(*thickness)
	if !ok {
		log.Fatalf("unknown thickness %q", *thickness)
	}

	style := ggbutton.DefaultStyle()
	style.ShadowThickness = t
	style.CornerRadius = *radius
	style.BorderWidth = *border

	cell := image.Pt(*width+margin, *height+margin)
	sheet := ggsurface.NewImage(cell.X*len(dirs)+margin, cell.Y*len(states)+margin)
	defer sheet.Close()

	bg := gg.Hex(*background)
	sheet.GG().ClearWithColor(bg)
	panel := widget.NewPanel(bg)

	for col, dir := range dirs {
		style.ShadowDirection = dir
		d, err := ggbutton.New(ggbutton.WithStyle(style))
		if err != nil {
			log.Fatal(err)
		}
		for row, st := range states {
			b := widget.NewButton(*label, *width, *height)
			b.SetParent(panel)
			if err := d.Decorate(b); err != nil {
				log.Fatal(err)
			}
			drive(b, st)

			at := image.Pt(margin+col*cell.X, margin+row*cell.Y)
			dc := sheet.GG()
			dc.Push()
			dc.Translate(float64(at.X), float64(at.Y))
			if err := d.Paint(b, sheet); err != nil {
				log.Printf("%v %v: %v", dir, st, err)
			}
			dc.Pop()
		}
		_ = d.Close()
	}

	if err := sheet.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Sheet saved to %s (%d directions x %d states)\n", *output, len(dirs), len(states))
}

// drive puts b into st through the same events a pointer would send.
func drive(b *widget.Button, st ggbutton.InteractionState) {
	switch st {
	case ggbutton.StateHighlight:
		b.Enter()
	case ggbutton.StateClick:
		b.Enter()
		b.Press()
	case ggbutton.StateDisabled:
		b.SetEnabled(false)
	}
}

func parseDirections(s string) ([]ggbutton.ShadowDirection, error) {
	all := []ggbutton.ShadowDirection{
		ggbutton.North, ggbutton.NorthEast, ggbutton.East, ggbutton.SouthEast,
		ggbutton.South, ggbutton.SouthWest, ggbutton.West, ggbutton.NorthWest,
	}
	if s == "" || s == "all" {
		return all, nil
	}
	var dirs []ggbutton.ShadowDirection
	for _, name := range strings.Split(s, ",") {
		d, ok := ggbutton.ParseShadowDirection(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown direction %q", name)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

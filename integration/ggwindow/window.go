// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggwindow

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggbutton"
	"github.com/gogpu/ggbutton/ggsurface"
)

// Common errors returned by Window operations.
var (
	// ErrClosed is returned when operations are attempted on a closed window.
	ErrClosed = errors.New("ggwindow: window is closed")

	// ErrNilDecorator is returned when New is given no decorator.
	ErrNilDecorator = errors.New("ggwindow: nil decorator")
)

// Widget is a button the window can place, paint and route pointer input
// to. *widget.Button satisfies it.
type Widget interface {
	ggbutton.Widget

	Enter()
	Leave()
	Press()
	Release()
	Paint(s ggbutton.Surface)
}

type placement struct {
	w  Widget
	at image.Point
}

func (p placement) bounds() image.Rectangle {
	return image.Rectangle{Min: p.at, Max: p.at.Add(p.w.Size())}
}

// Window lays decorated widgets out on a ggcanvas.Canvas and presents the
// canvas through a gpucontext.TextureDrawer.
//
// The decorator is borrowed: Add decorates widgets with it, Close leaves
// them decorated.
//
// Window is NOT safe for concurrent use.
type Window struct {
	canvas     *ggcanvas.Canvas
	surface    *ggsurface.Context
	decorator  *ggbutton.Decorator
	background gg.RGBA

	items   []placement
	hover   int
	pressed int
	dirty   bool
	closed  bool
}

// New creates a window-sized canvas on provider's device.
func New(provider gpucontext.DeviceProvider, width, height int, d *ggbutton.Decorator) (*Window, error) {
	if d == nil {
		return nil, ErrNilDecorator
	}
	c, err := ggcanvas.New(provider, width, height)
	if err != nil {
		return nil, fmt.Errorf("ggwindow: %w", err)
	}
	return &Window{
		canvas:     c,
		surface:    ggsurface.New(c.Context()),
		decorator:  d,
		background: gg.White,
		hover:      -1,
		pressed:    -1,
		dirty:      true,
	}, nil
}

// Canvas returns the backing canvas.
func (win *Window) Canvas() *ggcanvas.Canvas { return win.canvas }

// Surface returns the paint surface widgets draw on.
func (win *Window) Surface() *ggsurface.Context { return win.surface }

// SetBackground sets the colour the canvas is cleared to before painting.
func (win *Window) SetBackground(c gg.RGBA) {
	win.background = c
	win.dirty = true
}

// Add decorates w (if it is not decorated yet) and places its top-left
// corner at at.
func (win *Window) Add(w Widget, at image.Point) error {
	if win.closed {
		return ErrClosed
	}
	if !win.decorator.Decorated(w) {
		if err := win.decorator.Decorate(w); err != nil {
			return err
		}
	}
	win.items = append(win.items, placement{w: w, at: at})
	win.dirty = true
	return nil
}

// Len returns the number of placed widgets.
func (win *Window) Len() int { return len(win.items) }

// WidgetAt returns the topmost visible widget under pt.
func (win *Window) WidgetAt(pt image.Point) (Widget, bool) {
	if i := win.hit(pt); i >= 0 {
		return win.items[i].w, true
	}
	return nil, false
}

func (win *Window) hit(pt image.Point) int {
	for i := len(win.items) - 1; i >= 0; i-- {
		p := win.items[i]
		if p.w.Visible() && pt.In(p.bounds()) {
			return i
		}
	}
	return -1
}

// HandlePointer routes a pointer event to the widget under it and reports
// whether the window needs a redraw.
//
// Moving between widgets sends Leave to the old one and Enter to the new
// one. A press goes to the hovered widget; the release goes back to the
// widget that was pressed, which also gets Leave if the pointer is no
// longer over it.
func (win *Window) HandlePointer(ev gpucontext.PointerEvent) bool {
	if win.closed {
		return false
	}
	switch ev.Type {
	case gpucontext.PointerMove, gpucontext.PointerEnter:
		win.setHover(win.hit(image.Pt(int(ev.X), int(ev.Y))))
	case gpucontext.PointerLeave, gpucontext.PointerCancel:
		win.setHover(-1)
		win.pressed = -1
	case gpucontext.PointerDown:
		win.setHover(win.hit(image.Pt(int(ev.X), int(ev.Y))))
		if win.hover >= 0 {
			win.pressed = win.hover
			win.items[win.pressed].w.Press()
			win.dirty = true
		}
	case gpucontext.PointerUp:
		at := win.hit(image.Pt(int(ev.X), int(ev.Y)))
		if win.pressed >= 0 {
			// The pressed widget holds the pointer until release; if it was
			// dragged off, it loses hover only now.
			w := win.items[win.pressed].w
			w.Release()
			if win.pressed != at {
				w.Leave()
			}
			win.pressed = -1
			win.dirty = true
		}
		win.setHover(at)
	}
	return win.dirty
}

func (win *Window) setHover(i int) {
	if i == win.hover {
		return
	}
	if win.hover >= 0 {
		win.items[win.hover].w.Leave()
	}
	win.hover = i
	if i >= 0 {
		win.items[i].w.Enter()
	}
	win.dirty = true
}

// Invalidate marks the canvas for a full repaint on the next Draw.
func (win *Window) Invalidate() { win.dirty = true }

// Dirty reports whether the next Draw will repaint.
func (win *Window) Dirty() bool { return win.dirty }

// Draw clears the canvas and paints every visible widget at its placement.
// It is a no-op when nothing changed since the last Draw.
func (win *Window) Draw() error {
	if win.closed {
		return ErrClosed
	}
	if !win.dirty {
		return nil
	}
	err := win.canvas.Draw(func(dc *gg.Context) {
		dc.ClearWithColor(win.background)
		for _, p := range win.items {
			if !p.w.Visible() {
				continue
			}
			dc.Push()
			dc.Translate(float64(p.at.X), float64(p.at.Y))
			p.w.Paint(win.surface)
			dc.Pop()
		}
	})
	if err != nil {
		return fmt.Errorf("ggwindow: draw: %w", err)
	}
	win.dirty = false
	ggbutton.Logger().Debug("ggwindow: drew", "widgets", len(win.items))
	return nil
}

// RenderTo draws pending changes and presents the canvas.
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = win.RenderTo(dc.AsTextureDrawer())
//	})
func (win *Window) RenderTo(td gpucontext.TextureDrawer) error {
	if err := win.Draw(); err != nil {
		return err
	}
	if err := win.canvas.RenderTo(td); err != nil {
		return fmt.Errorf("ggwindow: render: %w", err)
	}
	return nil
}

// Close releases the canvas. Widgets stay decorated; close the decorator
// to restore them. Close is idempotent.
func (win *Window) Close() error {
	if win.closed {
		return nil
	}
	win.closed = true
	win.items = nil
	return win.canvas.Close()
}

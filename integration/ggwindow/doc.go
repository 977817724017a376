// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggwindow shows decorated buttons in a gogpu window.
//
// A Window owns a ggcanvas.Canvas. Draw paints every placed widget through
// the decorator onto the canvas; RenderTo uploads the pixels and draws them
// with the window's gpucontext.TextureDrawer. Pointer events from the
// window are routed to the widget under the cursor, which drives the
// decorator's highlight and click states.
//
//	d, _ := ggbutton.New()
//	win, err := ggwindow.New(app.GPUContextProvider(), 800, 600, d)
//	if err != nil {
//	    return err
//	}
//	defer win.Close()
//
//	_ = win.Add(widget.NewButton("OK", 100, 30), image.Pt(20, 20))
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = win.RenderTo(dc.AsTextureDrawer())
//	})
package ggwindow

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggsurface implements ggbutton.Surface on top of a gg.Context.
//
// Paths are replayed into the context and filled or stroked with the
// software rasterizer (or a registered GPU accelerator, if the application
// set one up for gg). Text is drawn with gg's text package; widgets without
// a font fall back to Go Regular from golang.org/x/image.
//
//	s := ggsurface.NewImage(120, 40)
//	defer s.Close()
//
//	button.Paint(s)
//	_ = s.SavePNG("button.png")
package ggsurface

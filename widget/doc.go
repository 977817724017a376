// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package widget is a headless reference toolkit for ggbutton.
//
// It models just enough of a desktop toolkit to drive a decorator: a
// [Button] with text, colours, font, image and enabled/visible flags, a
// [Panel] container, and synchronous event dispatch. Pointer input is
// simulated with Enter, Leave, Press and Release; paint requests with
// Paint.
//
//	b := widget.NewButton("OK", 100, 30)
//	b.SetParent(widget.NewPanel(gg.White))
//	d.Decorate(b)
//	b.Enter()          // decorator switches to highlight
//	b.Paint(surface)   // decorator draws
//
// Events fire on the caller's goroutine, like a UI thread would deliver
// them. Nothing here is safe for concurrent use.
package widget

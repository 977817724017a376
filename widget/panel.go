// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package widget

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggbutton"
)

// Panel is a container. An opaque panel paints a solid background; a
// backdrop panel paints something else (an image, a video frame) behind
// its children.
type Panel struct {
	background gg.RGBA
	opaque     bool
	parent     ggbutton.Container
}

// NewPanel creates an opaque panel. A transparent background makes the
// panel defer to its own parent's colour.
func NewPanel(background gg.RGBA) *Panel {
	return &Panel{background: background, opaque: true}
}

// NewBackdrop creates a panel whose background is not a solid fill, such
// as an image holder.
func NewBackdrop(background gg.RGBA) *Panel {
	return &Panel{background: background}
}

// Background returns the panel colour. A nil panel is transparent.
func (p *Panel) Background() gg.RGBA {
	if p == nil {
		return gg.Transparent
	}
	return p.background
}

// Opaque reports whether the panel paints a solid fill.
func (p *Panel) Opaque() bool { return p != nil && p.opaque }

func (p *Panel) SetBackground(c gg.RGBA) { p.background = c }

// Parent returns the enclosing container, if any.
func (p *Panel) Parent() (ggbutton.Container, bool) {
	if p == nil || p.parent == nil {
		return nil, false
	}
	return p.parent, true
}

// SetParent nests the panel inside c. Pass nil to detach it.
func (p *Panel) SetParent(c ggbutton.Container) { p.parent = container(c) }

// container maps a nil *Panel stored in the interface to an untyped nil,
// so Parent never reports a parent that cannot be used.
func container(c ggbutton.Container) ggbutton.Container {
	if p, ok := c.(*Panel); ok && p == nil {
		return nil
	}
	return c
}

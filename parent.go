package ggbutton

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// maxParentDepth bounds the parent walk so a cyclic widget tree cannot hang
// the paint loop.
const maxParentDepth = 64

// ParentBackground returns the first non-transparent background found
// walking up from w's parent. It returns white when w has no parent, the
// chain ends without a solid colour, or the chain is deeper than
// maxParentDepth.
func ParentBackground(w Widget) gg.RGBA {
	return parentBackground(w, Logger())
}

// parentBackground is ParentBackground reporting to log.
func parentBackground(w Widget, log *slog.Logger) gg.RGBA {
	p, ok := w.Parent()
	for depth := 0; ok && p != nil; depth++ {
		if depth >= maxParentDepth {
			log.Warn("ggbutton: parent chain too deep, using white", "handle", w.Handle())
			return gg.White
		}
		if bg := p.Background(); !isTransparent(bg) {
			return bg
		}
		p, ok = p.Parent()
	}
	return gg.White
}

// parentOpaque reports whether w sits directly on a solid container. A
// widget without a parent counts as opaque.
func parentOpaque(w Widget) bool {
	p, ok := w.Parent()
	if !ok || p == nil {
		return true
	}
	return p.Opaque()
}

// ShadowNeedsPartial reports whether the shadow must be drawn as a tapered
// partial outline. That is the case whenever the face background is not
// guaranteed opaque: the parent composites something other than a solid
// fill, or the widget's original background is fully transparent. A full
// outline would otherwise show through the face.
func ShadowNeedsPartial(w Widget, original Snapshot) bool {
	return !parentOpaque(w) || isTransparent(original.Background)
}

// Package ggbutton decorates toolkit buttons with a rounded, bordered,
// drop-shadowed look drawn with gg.
//
// # Overview
//
// A [Decorator] takes over the painting of the widgets it decorates. It
// snapshots each widget's properties, hides the native chrome and text, and
// from then on answers every paint event by drawing:
//
//  1. a shadow outline offset toward the configured [ShadowDirection]
//  2. the face: a rounded rectangle erased to the parent background and
//     filled with the state's background colour
//  3. the widget image, if any
//  4. the border outline
//  5. the preserved text, centred in the face
//
// Pointer events switch the widget between [StateNormal], [StateHighlight]
// and [StateClick]; a disabled widget always paints as [StateDisabled].
// Undecorating restores the snapshot.
//
// # Quick Start
//
//	d, err := ggbutton.New(ggbutton.WithStyle(ggbutton.DefaultStyle()))
//	if err != nil {
//	    return err
//	}
//	defer d.Close()
//
//	if err := d.Decorate(button); err != nil {
//	    return err
//	}
//
// The host toolkit is reached only through the [Widget], [Container] and
// [Surface] interfaces. Package ggsurface provides a Surface backed by a
// gg.Context; package widget provides a headless reference toolkit.
//
// # Geometry
//
// Outlines come from package shape. When the face background is not
// guaranteed opaque, the shadow is drawn as a partial outline with tapered
// ends so it only appears on the sides facing the shadow direction.
//
// # Threading
//
// Everything runs on the UI thread; nothing blocks and nothing is
// concurrent. Only [SetLogger] and [Logger] are safe to call from other
// goroutines.
package ggbutton

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package widget

import (
	"image"
	"slices"
	"sync/atomic"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggbutton"
)

// nextHandle hands out widget identities. Handles are never reused.
var nextHandle atomic.Uint64

// ControlColor is the stock button background.
var ControlColor = gg.Hex("F0F0F0")

type subscriber struct {
	id ggbutton.Subscription
	fn func(ggbutton.Event)
}

// Button is an in-memory push button.
type Button struct {
	handle ggbutton.Handle

	size       image.Point
	enabled    bool
	visible    bool
	tabStop    bool
	parent     ggbutton.Container
	background gg.RGBA
	foreground gg.RGBA
	font       text.Face
	img        image.Image
	text       string
	appearance ggbutton.NativeAppearance

	subs    map[ggbutton.EventKind][]subscriber
	lastSub ggbutton.Subscription

	invalidations int

	// OnInvalidate, if set, runs on every Invalidate. Hosts use it to
	// schedule a repaint.
	OnInvalidate func()
}

// NewButton creates an enabled, visible button of the given size.
func NewButton(label string, width, height int) *Button {
	return &Button{
		handle:     ggbutton.Handle(nextHandle.Add(1)),
		size:       image.Pt(width, height),
		enabled:    true,
		visible:    true,
		tabStop:    true,
		background: ControlColor,
		foreground: gg.Black,
		text:       label,
		appearance: ggbutton.NativeAppearance{
			BorderSize:  1,
			BorderColor: gg.Black,
		},
		subs: make(map[ggbutton.EventKind][]subscriber),
	}
}

func (b *Button) Handle() ggbutton.Handle { return b.handle }
func (b *Button) Size() image.Point       { return b.size }
func (b *Button) Enabled() bool           { return b.enabled }
func (b *Button) Visible() bool           { return b.visible }
func (b *Button) TabStop() bool           { return b.tabStop }
func (b *Button) Background() gg.RGBA     { return b.background }
func (b *Button) Foreground() gg.RGBA     { return b.foreground }
func (b *Button) Font() text.Face         { return b.font }
func (b *Button) Image() image.Image      { return b.img }
func (b *Button) Text() string            { return b.text }

// Appearance returns the native chrome settings.
func (b *Button) Appearance() ggbutton.NativeAppearance { return b.appearance }

// Parent returns the containing panel, if any.
func (b *Button) Parent() (ggbutton.Container, bool) {
	return b.parent, b.parent != nil
}

// Invalidations returns how many redraws have been requested.
func (b *Button) Invalidations() int { return b.invalidations }

// SetParent places the button in c. Pass nil (or a nil *Panel) to detach it.
func (b *Button) SetParent(c ggbutton.Container) { b.parent = container(c) }

func (b *Button) SetSize(width, height int)                 { b.size = image.Pt(width, height) }
func (b *Button) SetForeground(c gg.RGBA)                   { b.foreground = c }
func (b *Button) SetBackground(c gg.RGBA)                   { b.background = c }
func (b *Button) SetFont(f text.Face)                       { b.font = f }
func (b *Button) SetImage(img image.Image)                  { b.img = img }
func (b *Button) SetTabStop(on bool)                        { b.tabStop = on }
func (b *Button) SetAppearance(a ggbutton.NativeAppearance) { b.appearance = a }

// SetText changes the label and fires EventTextChanged if it differs.
func (b *Button) SetText(s string) {
	if s == b.text {
		return
	}
	b.text = s
	b.emit(ggbutton.Event{Kind: ggbutton.EventTextChanged})
}

// SetEnabled fires EventEnabledChanged if the flag changes.
func (b *Button) SetEnabled(on bool) {
	if on == b.enabled {
		return
	}
	b.enabled = on
	b.emit(ggbutton.Event{Kind: ggbutton.EventEnabledChanged})
}

// SetVisible fires EventVisibleChanged if the flag changes.
func (b *Button) SetVisible(on bool) {
	if on == b.visible {
		return
	}
	b.visible = on
	b.emit(ggbutton.Event{Kind: ggbutton.EventVisibleChanged})
}

// Snapshot captures the properties a decorator may change.
func (b *Button) Snapshot() ggbutton.Snapshot {
	return ggbutton.Snapshot{
		Text:       b.text,
		Background: b.background,
		Foreground: b.foreground,
		Enabled:    b.enabled,
		Visible:    b.visible,
		TabStop:    b.tabStop,
		Size:       b.size,
		Appearance: b.appearance,
	}
}

// Restore writes a snapshot back through the setters, so property-change
// events fire as they would for any other assignment.
func (b *Button) Restore(s ggbutton.Snapshot) {
	b.SetBackground(s.Background)
	b.SetForeground(s.Foreground)
	b.SetTabStop(s.TabStop)
	b.SetAppearance(s.Appearance)
	b.SetSize(s.Size.X, s.Size.Y)
	b.SetEnabled(s.Enabled)
	b.SetVisible(s.Visible)
	b.SetText(s.Text)
}

// Subscribe registers fn for kind. Handlers run in subscription order.
func (b *Button) Subscribe(kind ggbutton.EventKind, fn func(ggbutton.Event)) ggbutton.Subscription {
	b.lastSub++
	b.subs[kind] = append(b.subs[kind], subscriber{id: b.lastSub, fn: fn})
	return b.lastSub
}

// Unsubscribe removes a handler. Unknown subscriptions are ignored.
func (b *Button) Unsubscribe(sub ggbutton.Subscription) {
	for kind, list := range b.subs {
		i := slices.IndexFunc(list, func(s subscriber) bool { return s.id == sub })
		if i < 0 {
			continue
		}
		list = slices.Delete(list, i, i+1)
		if len(list) == 0 {
			delete(b.subs, kind)
		} else {
			b.subs[kind] = list
		}
		return
	}
}

// Subscribers returns the number of handlers registered for kind.
func (b *Button) Subscribers(kind ggbutton.EventKind) int {
	return len(b.subs[kind])
}

// Invalidate records a redraw request.
func (b *Button) Invalidate() {
	b.invalidations++
	if b.OnInvalidate != nil {
		b.OnInvalidate()
	}
}

// Enter simulates the pointer moving onto the button.
func (b *Button) Enter() { b.emit(ggbutton.Event{Kind: ggbutton.EventPointerEnter}) }

// Leave simulates the pointer moving off the button.
func (b *Button) Leave() { b.emit(ggbutton.Event{Kind: ggbutton.EventPointerLeave}) }

// Press simulates a pointer button going down.
func (b *Button) Press() { b.emit(ggbutton.Event{Kind: ggbutton.EventPointerDown}) }

// Release simulates a pointer button going up.
func (b *Button) Release() { b.emit(ggbutton.Event{Kind: ggbutton.EventPointerUp}) }

// Paint delivers a paint request with the given surface.
func (b *Button) Paint(s ggbutton.Surface) {
	b.emit(ggbutton.Event{Kind: ggbutton.EventPaint, Surface: s})
}

// emit dispatches to a copy of the handler list, so handlers may
// unsubscribe (or trigger nested events) while it runs.
func (b *Button) emit(e ggbutton.Event) {
	for _, s := range slices.Clone(b.subs[e.Kind]) {
		s.fn(e)
	}
}

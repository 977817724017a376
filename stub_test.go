package ggbutton

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

var stubHandles Handle

// stubWidget is a minimal Widget for in-package tests. Events are recorded
// but never dispatched.
type stubWidget struct {
	handle Handle
	snap   Snapshot
	subs   map[Subscription]EventKind
	next   Subscription
}

func newStubWidget(label string) *stubWidget {
	stubHandles++
	return &stubWidget{
		handle: stubHandles,
		snap: Snapshot{
			Text:       label,
			Background: gg.White,
			Foreground: gg.Black,
			Enabled:    true,
			Visible:    true,
			TabStop:    true,
			Size:       image.Pt(100, 30),
		},
		subs: make(map[Subscription]EventKind),
	}
}

func (w *stubWidget) Handle() Handle                   { return w.handle }
func (w *stubWidget) Size() image.Point                { return w.snap.Size }
func (w *stubWidget) Enabled() bool                    { return w.snap.Enabled }
func (w *stubWidget) Visible() bool                    { return w.snap.Visible }
func (w *stubWidget) Parent() (Container, bool)        { return nil, false }
func (w *stubWidget) Background() gg.RGBA              { return w.snap.Background }
func (w *stubWidget) Foreground() gg.RGBA              { return w.snap.Foreground }
func (w *stubWidget) Font() text.Face                  { return nil }
func (w *stubWidget) Image() image.Image               { return nil }
func (w *stubWidget) Text() string                     { return w.snap.Text }
func (w *stubWidget) SetText(s string)                 { w.snap.Text = s }
func (w *stubWidget) SetTabStop(on bool)               { w.snap.TabStop = on }
func (w *stubWidget) SetBackground(c gg.RGBA)          { w.snap.Background = c }
func (w *stubWidget) SetAppearance(a NativeAppearance) { w.snap.Appearance = a }
func (w *stubWidget) Snapshot() Snapshot               { return w.snap }
func (w *stubWidget) Restore(s Snapshot)               { w.snap = s }
func (w *stubWidget) Invalidate()                      {}

func (w *stubWidget) Subscribe(kind EventKind, fn func(Event)) Subscription {
	w.next++
	w.subs[w.next] = kind
	return w.next
}

func (w *stubWidget) Unsubscribe(sub Subscription) { delete(w.subs, sub) }

package ggbutton

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/ggbutton/internal/arena"
)

// record is the per-widget decoration state.
type record struct {
	widget   Widget
	snapshot Snapshot
	state    InteractionState
	subs     []Subscription

	// muted suppresses the text-change handler while the decorator blanks
	// the live text itself.
	muted bool
}

// Decorator paints widgets as rounded, bordered, shadowed buttons and
// tracks their interaction state.
//
// Decorating a widget snapshots its properties, hides its native chrome and
// text, and routes its pointer, property and paint events through the
// Decorator. Undecorating (or closing the Decorator) restores the snapshot.
//
// A Decorator is NOT safe for concurrent use. All calls, and all widget
// events, must come from the UI thread.
type Decorator struct {
	style   Style
	logger  *slog.Logger
	records *arena.Arena[Handle, *record]
	closed  bool
}

// New creates a Decorator. It fails with ErrInvalidStyle if the configured
// style is out of range.
func New(opts ...Option) (*Decorator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.style.Validate(); err != nil {
		return nil, err
	}
	return &Decorator{
		style:   o.style,
		logger:  o.logger,
		records: arena.New[Handle, *record](),
	}, nil
}

// Style returns a copy of the decorator's style.
func (d *Decorator) Style() Style {
	return d.style
}

func (d *Decorator) log() *slog.Logger {
	if d.logger != nil {
		return d.logger
	}
	return Logger()
}

// Decorate starts painting w as a rounded button.
//
// The widget's properties are snapshotted first; then its native focus and
// flat-appearance visuals are neutralised, its background is made
// transparent and its text is cleared so the toolkit does not draw
// underneath the decoration. The original text stays readable via Text.
func (d *Decorator) Decorate(w Widget) error {
	if w == nil {
		return ErrNilWidget
	}
	if d.closed {
		return ErrClosed
	}

	h := w.Handle()
	rec := &record{widget: w, snapshot: w.Snapshot(), state: StateNormal}
	if !d.records.Insert(h, rec) {
		return fmt.Errorf("%w: handle %d", ErrAlreadyDecorated, h)
	}

	w.SetTabStop(false)
	w.SetAppearance(NativeAppearance{
		Flat:              true,
		BorderSize:        0,
		BorderColor:       TransparentWhite,
		HoverBackground:   TransparentWhite,
		PressedBackground: TransparentWhite,
	})
	w.SetBackground(TransparentWhite)
	w.SetText("")

	for _, kind := range decoratorEvents {
		rec.subs = append(rec.subs, w.Subscribe(kind, func(e Event) { d.handle(h, e) }))
	}

	d.log().Info("ggbutton: decorated", "handle", h, "text", rec.snapshot.Text)
	w.Invalidate()
	return nil
}

// Undecorate stops decorating w and restores every snapshotted property.
func (d *Decorator) Undecorate(w Widget) error {
	if w == nil {
		return ErrNilWidget
	}
	rec, ok := d.records.Remove(w.Handle())
	if !ok {
		return fmt.Errorf("%w: handle %d", ErrNotDecorated, w.Handle())
	}
	d.release(rec)
	return nil
}

// release unsubscribes before restoring, so the restore does not feed
// events back into the decorator.
func (d *Decorator) release(rec *record) {
	w := rec.widget
	for _, sub := range rec.subs {
		w.Unsubscribe(sub)
	}
	rec.subs = nil
	w.Restore(rec.snapshot)
	d.log().Info("ggbutton: restored", "handle", w.Handle())
	w.Invalidate()
}

// Close undecorates every widget. Calling Close again is a no-op.
func (d *Decorator) Close() error {
	if d.closed {
		return nil
	}
	for _, h := range d.records.Keys() {
		if rec, ok := d.records.Remove(h); ok {
			d.release(rec)
		}
	}
	d.records.Clear()
	d.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (d *Decorator) Closed() bool {
	return d.closed
}

// Decorated reports whether w is currently decorated.
func (d *Decorator) Decorated(w Widget) bool {
	if w == nil {
		return false
	}
	_, ok := d.records.Get(w.Handle())
	return ok
}

// Len returns the number of decorated widgets.
func (d *Decorator) Len() int {
	return d.records.Len()
}

// Text returns the text w had (or was given) while decorated. It returns
// "" for a widget that is not decorated.
func (d *Decorator) Text(w Widget) string {
	if w == nil {
		return ""
	}
	rec, ok := d.records.Get(w.Handle())
	if !ok {
		return ""
	}
	return rec.snapshot.Text
}

// Original returns the property snapshot that will be restored when w is
// undecorated.
func (d *Decorator) Original(w Widget) (Snapshot, bool) {
	if w == nil {
		return Snapshot{}, false
	}
	rec, ok := d.records.Get(w.Handle())
	if !ok {
		return Snapshot{}, false
	}
	return rec.snapshot, true
}

// State returns the stored interaction state of w. The disabled state is
// never stored; see ResolveColors.
func (d *Decorator) State(w Widget) (InteractionState, bool) {
	if w == nil {
		return StateNormal, false
	}
	rec, ok := d.records.Get(w.Handle())
	if !ok {
		return StateNormal, false
	}
	return rec.state, true
}

// handle is the single event handler shared by every subscription of a
// decorated widget. Events for a widget that has since been undecorated
// are ignored.
func (d *Decorator) handle(h Handle, e Event) {
	rec, ok := d.records.Get(h)
	if !ok {
		return
	}
	w := rec.widget

	switch e.Kind {
	case EventPointerEnter, EventPointerUp:
		d.transition(rec, StateHighlight)
	case EventPointerDown:
		d.transition(rec, StateClick)
	case EventPointerLeave:
		d.transition(rec, StateNormal)
	case EventEnabledChanged:
		d.transition(rec, StateNormal)
	case EventTextChanged:
		d.captureText(rec)
	case EventVisibleChanged:
		rec.snapshot.Visible = w.Visible()
	case EventPaint:
		if e.Surface == nil {
			return
		}
		// Paint logs its own failures; nothing above the event loop can act on them.
		_ = d.paint(rec, e.Surface)
	}
}

func (d *Decorator) transition(rec *record, s InteractionState) {
	if rec.state != s {
		d.log().Debug("ggbutton: state", "handle", rec.widget.Handle(), "from", rec.state, "to", s)
	}
	rec.state = s
	rec.widget.Invalidate()
}

// captureText moves new live text into the snapshot and blanks the widget
// again, without handling the text change that blanking causes.
func (d *Decorator) captureText(rec *record) {
	if rec.muted {
		return
	}
	w := rec.widget
	rec.snapshot.Text = w.Text()
	if w.Text() != "" {
		rec.muted = true
		w.SetText("")
		rec.muted = false
	}
	w.Invalidate()
}

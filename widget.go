package ggbutton

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Handle is a stable widget identity. Decorations are keyed by it.
type Handle uint64

// EventKind identifies a widget notification.
type EventKind uint8

// Widget events the decorator subscribes to.
const (
	EventPointerEnter EventKind = iota
	EventPointerLeave
	EventPointerDown
	EventPointerUp
	EventEnabledChanged
	EventTextChanged
	EventVisibleChanged
	EventPaint
)

// decoratorEvents lists every event a decoration subscribes to.
var decoratorEvents = [...]EventKind{
	EventPointerEnter,
	EventPointerLeave,
	EventPointerDown,
	EventPointerUp,
	EventEnabledChanged,
	EventTextChanged,
	EventVisibleChanged,
	EventPaint,
}

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventPointerEnter:
		return "PointerEnter"
	case EventPointerLeave:
		return "PointerLeave"
	case EventPointerDown:
		return "PointerDown"
	case EventPointerUp:
		return "PointerUp"
	case EventEnabledChanged:
		return "EnabledChanged"
	case EventTextChanged:
		return "TextChanged"
	case EventVisibleChanged:
		return "VisibleChanged"
	case EventPaint:
		return "Paint"
	default:
		return "EventKind(?)"
	}
}

// Event is delivered to subscribers. Surface is set for EventPaint only.
type Event struct {
	Kind    EventKind
	Surface Surface
}

// Subscription identifies one registered handler.
type Subscription uint64

// NativeAppearance is the toolkit's own button chrome. The decorator flattens
// it while a widget is decorated so it does not show through.
type NativeAppearance struct {
	Flat              bool
	BorderSize        int
	BorderColor       gg.RGBA
	HoverBackground   gg.RGBA
	PressedBackground gg.RGBA
}

// Snapshot is every widget property the decorator reads or changes. It is
// taken when decoration starts and written back when it ends.
type Snapshot struct {
	Text       string
	Background gg.RGBA
	Foreground gg.RGBA
	Enabled    bool
	Visible    bool
	TabStop    bool
	Size       image.Point
	Appearance NativeAppearance
}

// Container is a widget parent. Opaque reports whether its background is
// a guaranteed solid fill; image-backed or composited containers return
// false.
type Container interface {
	Background() gg.RGBA
	Opaque() bool
	Parent() (Container, bool)
}

// Widget is the host toolkit's button as seen by the decorator.
//
// All methods are called on the UI thread. Setters that change observable
// state fire the matching event synchronously (SetText fires
// EventTextChanged).
type Widget interface {
	Handle() Handle

	Size() image.Point
	Enabled() bool
	Visible() bool
	Parent() (Container, bool)
	Background() gg.RGBA
	Foreground() gg.RGBA
	Font() text.Face
	Image() image.Image
	Text() string

	SetText(s string)
	SetTabStop(on bool)
	SetBackground(c gg.RGBA)
	SetAppearance(a NativeAppearance)

	Snapshot() Snapshot
	Restore(s Snapshot)

	Subscribe(kind EventKind, fn func(Event)) Subscription
	Unsubscribe(sub Subscription)

	// Invalidate requests a full redraw through the toolkit's own dispatch.
	Invalidate()
}

package core

// Event is the closed set of discrete occurrences the platform delivers to
// the loop. One concrete type per kind so the dispatch type switch stays
// exhaustive and new kinds cannot be ignored silently.
type Event interface{ isEvent() }

// EventResized reports a new window size in screen coordinates.
type EventResized struct {
	Width  int
	Height int
}

func (EventResized) isEvent() {}

// EventDestroyed signals the window is gone. Terminal.
type EventDestroyed struct{}

func (EventDestroyed) isEvent() {}

// EventQuit signals the application was asked to terminate. Terminal.
type EventQuit struct{}

func (EventQuit) isEvent() {}

// EventDamaged reports that part of the window needs a redraw. The
// presentation backend repaints on its own, so the loop ignores it.
type EventDamaged struct{}

func (EventDamaged) isEvent() {}

// EventVBlank is the display's frame-ready signal. It is the only event
// that triggers the update/render pair.
type EventVBlank struct{}

func (EventVBlank) isEvent() {}

// EventKey carries a raw hardware scancode and its new pressed state.
type EventKey struct {
	Scancode Scancode
	Pressed  bool
}

func (EventKey) isEvent() {}

type MouseButton uint8

const (
	MouseButtonPrimary MouseButton = iota
	MouseButtonSecondary
	MouseButtonMiddle
)

// EventMouseButton carries a mouse button transition.
type EventMouseButton struct {
	Button  MouseButton
	Pressed bool
}

func (EventMouseButton) isEvent() {}

// EventMouseMotion carries the latest cursor position.
type EventMouseMotion struct {
	X float64
	Y float64
}

func (EventMouseMotion) isEvent() {}

// EventTick is a periodic no-op emitted when the bounded event wait times
// out, so the loop can re-check its control flag even if vblanks stop.
type EventTick struct{}

func (EventTick) isEvent() {}

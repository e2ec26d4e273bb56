package platform

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/feralbyte/skirmish/engine/core"
)

const (
	// How long one WaitEvent call may block before yielding a no-op tick,
	// so the loop can re-check its control flag even if vblanks stop.
	tickTimeout = 250 * time.Millisecond

	// Slice handed to glfw.WaitEventsTimeout per pump.
	pumpSlice = 10 * time.Millisecond

	eventBuffer = 64

	fallbackRefreshRate = 60
)

// Window wraps the GLFW window and turns its callback-driven input into a
// blocking pull of one discrete event per call. The vblank pacer goroutine
// is the only writer besides the main-thread callbacks.
type Window struct {
	handle *glfw.Window
	events chan core.Event
	done   chan struct{}
}

func newWindow(handle *glfw.Window, cfg WindowConfig, refreshRate int) *Window {
	w := &Window{
		handle: handle,
		events: make(chan core.Event, eventBuffer),
		done:   make(chan struct{}),
	}

	handle.SetCloseCallback(func(*glfw.Window) {
		w.push(core.EventDestroyed{})
	})
	handle.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.push(core.EventResized{Width: width, Height: height})
	})
	if cfg.TrackDamage {
		handle.SetRefreshCallback(func(*glfw.Window) {
			w.push(core.EventDamaged{})
		})
	}
	if cfg.TrackKeyboard {
		handle.SetKeyCallback(func(_ *glfw.Window, _ glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
			if action == glfw.Repeat {
				return
			}
			w.push(core.EventKey{
				Scancode: core.Scancode(scancode),
				Pressed:  action == glfw.Press,
			})
		})
	}
	if cfg.TrackMouse {
		handle.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
			w.push(core.EventMouseButton{
				Button:  translateMouseButton(button),
				Pressed: action == glfw.Press,
			})
		})
		handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
			w.push(core.EventMouseMotion{X: x, Y: y})
		})
	}

	go w.paceVBlank(refreshRate)

	return w
}

// push never blocks the callback path. A full buffer means the loop has
// fallen a whole queue behind; the event is dropped with a warning rather
// than stalling the OS callback.
func (w *Window) push(ev core.Event) {
	select {
	case w.events <- ev:
	default:
		core.LogWarn("event queue full, dropping %T", ev)
	}
}

// paceVBlank posts a frame-ready event at the display refresh interval and
// pokes the event pump awake so WaitEvent can pick it up promptly.
func (w *Window) paceVBlank(refreshRate int) {
	if refreshRate <= 0 {
		refreshRate = fallbackRefreshRate
	}
	interval := time.Second / time.Duration(refreshRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			select {
			case w.events <- core.EventVBlank{}:
				glfw.PostEmptyEvent()
			default:
				// Loop still busy with the previous frame; skip this vblank
				// rather than queueing stale ones.
			}
		}
	}
}

// WaitEvent blocks until one event is available and returns it. It is the
// loop's sole suspension point. A bounded wait yields EventTick when nothing
// arrives within the timeout.
func (w *Window) WaitEvent() (core.Event, error) {
	deadline := time.Now().Add(tickTimeout)
	for {
		select {
		case ev := <-w.events:
			return ev, nil
		default:
		}

		// Pump the OS queue; callbacks fire here on the main thread.
		glfw.WaitEventsTimeout(pumpSlice.Seconds())

		select {
		case ev := <-w.events:
			return ev, nil
		default:
		}

		if time.Now().After(deadline) {
			return core.EventTick{}, nil
		}
	}
}

// Post injects an event from outside the platform, e.g. a signal handler
// mapping SIGTERM onto the terminal-event path. Wakes the pump.
func (w *Window) Post(ev core.Event) {
	w.push(ev)
	glfw.PostEmptyEvent()
}

func (w *Window) Size() (int, int) {
	return w.handle.GetSize()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.handle.GetFramebufferSize()
}

func (w *Window) SwapBuffers() {
	w.handle.SwapBuffers()
}

func (w *Window) Destroy() error {
	close(w.done)
	w.handle.Destroy()
	return nil
}

func translateMouseButton(b glfw.MouseButton) core.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseButtonPrimary
	case glfw.MouseButtonRight:
		return core.MouseButtonSecondary
	default:
		return core.MouseButtonMiddle
	}
}

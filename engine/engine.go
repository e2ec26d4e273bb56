package engine

import (
	"errors"
	"fmt"

	"github.com/feralbyte/skirmish/engine/core"
	"github.com/feralbyte/skirmish/engine/resources"
)

const fpsLogInterval = 300 // frames

// Engine is the loop driver. It owns the input state and both frame clocks,
// pulls one event at a time from the window, and pairs simulation update
// with rendering on every vblank. Single-threaded by construction: the
// event wait is the only suspension point.
type Engine struct {
	window   Window
	renderer Renderer
	assets   *resources.Manager
	game     Game

	input       *core.InputState
	updateClock *core.FrameClock
	renderClock *core.FrameClock

	// Reciprocal of the configured slowdown. Immutable after boot; applied
	// to every elapsed-time sample before it reaches the simulation.
	stretch float64

	metrics    *core.FrameMetrics
	frameCount uint64

	releases []func() error
}

// Run blocks on the event source until the game clears its running flag or
// a terminal platform event arrives. Any error from the event source, the
// simulation, or the renderer is fatal and propagates to the caller after
// the loop stops.
func (e *Engine) Run() error {
	core.LogInfo("Entering main loop.")

	for e.game.Running() {
		ev, err := e.window.WaitEvent()
		if err != nil {
			return fmt.Errorf("event wait: %w", err)
		}

		switch ev := ev.(type) {
		case core.EventResized:
			core.LogInfo("Window resized to %dx%d.", ev.Width, ev.Height)
			if err := e.renderer.Resized(ev.Width, ev.Height); err != nil {
				return fmt.Errorf("renderer resize: %w", err)
			}
		case core.EventDestroyed:
			core.LogInfo("Window destroyed, leaving main loop.")
			return nil
		case core.EventQuit:
			core.LogInfo("Application terminated, leaving main loop.")
			return nil
		case core.EventDamaged:
			// The presentation backend repaints damaged regions itself.
		case core.EventVBlank:
			if err := e.frame(); err != nil {
				return err
			}
		case core.EventKey:
			e.handleKey(ev)
		case core.EventMouseButton:
			// Only the primary button maps to an abstract action.
			if ev.Button == core.MouseButtonPrimary {
				e.input.UpdateButton(core.ButtonLeftMouse, ev.Pressed)
			}
		case core.EventMouseMotion:
			e.input.SetCursor(ev.X, ev.Y)
		case core.EventTick:
			// Bounded-wait keepalive so the running flag gets re-checked
			// even when vblanks stop arriving.
		default:
			return fmt.Errorf("unhandled event kind %T", ev)
		}
	}

	core.LogInfo("Game stopped running, leaving main loop.")
	return nil
}

func (e *Engine) handleKey(ev core.EventKey) {
	button, ok := core.ButtonForScancode(ev.Scancode)
	if !ok {
		core.LogInfo("Ignoring unmapped scancode %d.", ev.Scancode)
		return
	}
	e.input.UpdateButton(button, ev.Pressed)
}

// frame runs the update/render pair for one vblank: update with the
// stretched update lap, reset the transient input flags, then render with
// the stretched render lap inside a begin/end bracket. Metrics see the raw
// lap; only the simulation sees stretched time.
func (e *Engine) frame() error {
	lap := e.updateClock.Lap().Seconds()
	delta := lap * e.stretch
	if err := e.game.Update(e.input, delta); err != nil {
		return fmt.Errorf("game update: %w", err)
	}

	// Strictly between update and render: render sees a clean slate and
	// the next update cycle starts fresh.
	e.input.ResetEvents()

	if err := e.renderFrame(); err != nil {
		return err
	}

	e.metrics.Update(lap)
	e.frameCount++
	if e.frameCount%fpsLogInterval == 0 {
		fps, ms := e.metrics.Frame()
		core.LogDebug("%.0f fps, %.2f ms avg frame time.", fps, ms)
	}
	return nil
}

// renderFrame brackets the simulation's render call between BeginFrame and
// EndFrame. EndFrame runs on every exit path; its error joins any render
// error instead of replacing it.
func (e *Engine) renderFrame() (err error) {
	if err = e.renderer.BeginFrame(); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}
	defer func() {
		if endErr := e.renderer.EndFrame(); endErr != nil {
			err = errors.Join(err, fmt.Errorf("end frame: %w", endErr))
		}
	}()

	delta := e.renderClock.Lap().Seconds() * e.stretch
	if renderErr := e.game.Render(e.renderer, delta); renderErr != nil {
		return fmt.Errorf("game render: %w", renderErr)
	}
	return nil
}

// PostQuit asks the loop to terminate through the normal control-flow path:
// the injected event is processed like any terminal platform event.
func (e *Engine) PostQuit() {
	e.window.Post(core.EventQuit{})
}

// Input exposes the engine-owned input state. The simulation receives it
// per update; this accessor exists for overlays and tests.
func (e *Engine) Input() *core.InputState {
	return e.input
}

func (e *Engine) Metrics() *core.FrameMetrics {
	return e.metrics
}

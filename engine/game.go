package engine

import (
	"github.com/feralbyte/skirmish/engine/core"
	"github.com/feralbyte/skirmish/engine/resources"
)

// Platform is the windowing backend boundary. Acquired first, released last.
type Platform interface {
	Shutdown() error
}

// Window is the event source and presentation surface boundary. WaitEvent
// is the loop's single blocking pull: one discrete event per call.
type Window interface {
	WaitEvent() (core.Event, error)
	Post(ev core.Event)
	Size() (int, int)
	Destroy() error
}

// Renderer is the presentation boundary the loop brackets frames through.
// Attach must be called before the first BeginFrame (two-phase wiring with
// the resource manager).
type Renderer interface {
	Attach(assets *resources.Manager)
	BeginFrame() error
	EndFrame() error
	Resized(width, height int) error
	Shutdown() error
	DrawQuad(x, y, w, h float32, color [4]float32)
	DrawSprite(name string, x, y, w, h float32) error
}

// Game is the simulation collaborator. The loop passes it the input
// snapshot and stretched deltas; it owns the loop-control flag.
type Game interface {
	Update(input *core.InputState, delta float64) error
	Render(r Renderer, delta float64) error
	Running() bool
	Shutdown() error
}

package engine

import (
	"errors"
	"fmt"

	"github.com/feralbyte/skirmish/engine/core"
	"github.com/feralbyte/skirmish/engine/platform"
	"github.com/feralbyte/skirmish/engine/renderer"
	"github.com/feralbyte/skirmish/engine/resources"
)

// Providers are the constructors for every collaborator the engine owns,
// in acquisition order. Tests substitute recording fakes; production code
// uses DefaultProviders.
type Providers struct {
	NewPlatform  func() (Platform, error)
	NewWindow    func(p Platform, cfg platform.WindowConfig) (Window, error)
	NewRenderer  func(w Window) (Renderer, error)
	NewResources func(assetPath string) (*resources.Manager, error)
	NewGame      func(assets *resources.Manager, cfg *ApplicationConfig) (Game, error)
}

// DefaultProviders wires GLFW, the OpenGL renderer, and the on-disk asset
// manager. The game constructor is supplied by the caller since the engine
// does not know the simulation.
func DefaultProviders(newGame func(*resources.Manager, *ApplicationConfig) (Game, error)) Providers {
	return Providers{
		NewPlatform: func() (Platform, error) {
			p, err := platform.Startup()
			if err != nil {
				return nil, err
			}
			return p, nil
		},
		NewWindow: func(p Platform, cfg platform.WindowConfig) (Window, error) {
			pp, ok := p.(*platform.Platform)
			if !ok {
				return nil, fmt.Errorf("default window provider needs the glfw platform, got %T", p)
			}
			w, err := pp.CreateWindow(cfg)
			if err != nil {
				return nil, err
			}
			return w, nil
		},
		NewRenderer: func(w Window) (Renderer, error) {
			ww, ok := w.(*platform.Window)
			if !ok {
				return nil, fmt.Errorf("default renderer provider needs the glfw window, got %T", w)
			}
			r, err := renderer.New(ww)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
		NewResources: resources.NewManager,
		NewGame:      newGame,
	}
}

// New acquires the full collaborator chain in order: platform, window,
// renderer, resources, renderer↔resources wiring, input, game. Any failure
// releases everything already acquired in exact reverse order before the
// error propagates.
func New(cfg *ApplicationConfig, providers Providers) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		stretch:     1.0 / cfg.TimeStretch,
		updateClock: core.NewFrameClock(),
		renderClock: core.NewFrameClock(),
		metrics:     core.NewFrameMetrics(),
	}

	fail := func(stage string, err error) (*Engine, error) {
		e.unwind()
		return nil, fmt.Errorf("boot %s: %w", stage, err)
	}

	p, err := providers.NewPlatform()
	if err != nil {
		return fail("platform", err)
	}
	e.pushRelease(p.Shutdown)

	w, err := providers.NewWindow(p, platform.WindowConfig{
		Title:         cfg.Name,
		Width:         cfg.Width,
		Height:        cfg.Height,
		Fullscreen:    cfg.Fullscreen,
		Resizable:     cfg.Resizable,
		Decorations:   cfg.Decorations,
		Visible:       cfg.Visible,
		TrackDamage:   cfg.TrackDamage,
		TrackKeyboard: cfg.TrackKeyboard,
		TrackMouse:    cfg.TrackMouse,
	})
	if err != nil {
		return fail("window", err)
	}
	e.window = w
	e.pushRelease(w.Destroy)

	r, err := providers.NewRenderer(w)
	if err != nil {
		return fail("renderer", err)
	}
	e.renderer = r
	e.pushRelease(r.Shutdown)

	assets, err := providers.NewResources(cfg.AssetPath)
	if err != nil {
		return fail("resources", err)
	}
	e.assets = assets
	e.pushRelease(assets.ReleaseAll)

	// Renderer and resources are mutually referential at construction time,
	// so the back-reference is wired as an explicit second phase. The
	// renderer must not begin a frame before this point.
	r.Attach(assets)

	e.input = core.NewInputState()

	g, err := providers.NewGame(assets, cfg)
	if err != nil {
		return fail("game", err)
	}
	e.game = g
	e.pushRelease(g.Shutdown)

	return e, nil
}

func (e *Engine) pushRelease(release func() error) {
	e.releases = append(e.releases, release)
}

// unwind releases every acquired resource in reverse acquisition order.
// Release errors are logged, never swallowed silently, and never stop the
// remaining teardown.
func (e *Engine) unwind() {
	for i := len(e.releases) - 1; i >= 0; i-- {
		if err := e.releases[i](); err != nil {
			core.LogError("teardown: %s", err.Error())
		}
	}
	e.releases = nil
}

// Shutdown tears the collaborator chain down in exact reverse acquisition
// order. Safe to call once, regardless of how the loop exited.
func (e *Engine) Shutdown() error {
	if e.releases == nil {
		return errors.New("engine already shut down")
	}
	core.LogInfo("Shutting down.")
	e.unwind()
	return nil
}

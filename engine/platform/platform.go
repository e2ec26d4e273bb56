package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/feralbyte/skirmish/engine/core"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// Platform owns the windowing backend. It is the first resource acquired at
// boot and the last one released.
type Platform struct {
	window *Window
}

func Startup() (*Platform, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}
	return &Platform{}, nil
}

func (p *Platform) Shutdown() error {
	glfw.Terminate()
	return nil
}

// WindowConfig mirrors the knobs the process exposes for window creation.
// The tracking flags decide which input callbacks get registered at all.
type WindowConfig struct {
	Title         string
	Width         int
	Height        int
	Fullscreen    bool
	Resizable     bool
	Decorations   bool
	Visible       bool
	TrackDamage   bool
	TrackKeyboard bool
	TrackMouse    bool
}

func hint(h glfw.Hint, on bool) {
	if on {
		glfw.WindowHint(h, glfw.True)
	} else {
		glfw.WindowHint(h, glfw.False)
	}
}

// CreateWindow opens the single application window and starts its vblank
// pacer. The platform keeps no more than one window alive.
func (p *Platform) CreateWindow(cfg WindowConfig) (*Window, error) {
	if p.window != nil {
		return nil, fmt.Errorf("platform already owns a window")
	}

	hint(glfw.Resizable, cfg.Resizable)
	hint(glfw.Decorated, cfg.Decorations)
	hint(glfw.Visible, false) // shown after context setup below
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor
	width, height := cfg.Width, cfg.Height
	refresh := fallbackRefreshRate
	if m := glfw.GetPrimaryMonitor(); m != nil {
		if mode := m.GetVideoMode(); mode != nil && mode.RefreshRate > 0 {
			refresh = mode.RefreshRate
			if cfg.Fullscreen {
				monitor = m
				width, height = mode.Width, mode.Height
			}
		}
	}

	handle, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	glfw.SwapInterval(1)

	w := newWindow(handle, cfg, refresh)
	if cfg.Visible {
		handle.Show()
	}
	p.window = w

	core.LogInfo("Window '%s' created at %dx%d, refresh %d Hz.", cfg.Title, width, height, refresh)
	return w, nil
}

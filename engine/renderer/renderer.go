package renderer

import (
	"errors"
	"fmt"

	"github.com/feralbyte/skirmish/engine/platform"
	"github.com/feralbyte/skirmish/engine/renderer/opengl"
	"github.com/feralbyte/skirmish/engine/resources"
)

// ErrNotAttached is returned when a frame is started before the resource
// manager has been attached. Renderer and resources are mutually referential
// at construction time, so wiring is an explicit second phase.
var ErrNotAttached = errors.New("renderer used before resource manager attachment")

// Backend is the drawing surface implementation. Methods take only builtin
// types so backends stay decoupled from the front-end.
type Backend interface {
	Initialize(width, height int) error
	Shutdown() error
	Resized(width, height int) error
	BeginFrame() error
	EndFrame() error
	DrawQuad(x, y, w, h float32, r, g, b, a float32)
	EnsureTexture(key string, width, height int, pixels []uint8)
	DrawTexturedQuad(x, y, w, h float32, key string)
}

// Renderer fronts a backend and resolves named assets through the attached
// resource manager. It borrows the window; it never owns it.
type Renderer struct {
	backend Backend
	assets  *resources.Manager
}

func New(window *platform.Window) (*Renderer, error) {
	backend := opengl.New(window)
	w, h := window.FramebufferSize()
	if err := backend.Initialize(w, h); err != nil {
		return nil, err
	}
	return &Renderer{backend: backend}, nil
}

func newWithBackend(backend Backend) *Renderer {
	return &Renderer{backend: backend}
}

// Attach wires the resource manager in. Must happen before the first
// BeginFrame; the resource manager never calls back into the renderer.
func (r *Renderer) Attach(assets *resources.Manager) {
	r.assets = assets
}

func (r *Renderer) BeginFrame() error {
	if r.assets == nil {
		return ErrNotAttached
	}
	return r.backend.BeginFrame()
}

func (r *Renderer) EndFrame() error {
	return r.backend.EndFrame()
}

func (r *Renderer) Resized(width, height int) error {
	return r.backend.Resized(width, height)
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *Renderer) DrawQuad(x, y, w, h float32, color [4]float32) {
	r.backend.DrawQuad(x, y, w, h, color[0], color[1], color[2], color[3])
}

// DrawSprite draws a quad textured with the named asset, acquired (and
// lazily reloaded) through the attached resource manager.
func (r *Renderer) DrawSprite(name string, x, y, w, h float32) error {
	if r.assets == nil {
		return ErrNotAttached
	}
	res, err := r.assets.Acquire(resources.TypeTexture, name)
	if err != nil {
		return err
	}
	data, ok := res.Data.(*resources.TextureData)
	if !ok {
		return fmt.Errorf("asset '%s' is not a texture", name)
	}
	key := res.Handle.String()
	r.backend.EnsureTexture(key, int(data.Width), int(data.Height), data.Pixels)
	r.backend.DrawTexturedQuad(x, y, w, h, key)
	return nil
}

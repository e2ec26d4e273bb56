package game

import (
	"math"
	"testing"

	"github.com/feralbyte/skirmish/engine"
	"github.com/feralbyte/skirmish/engine/core"
	"github.com/feralbyte/skirmish/engine/resources"
)

type quad struct {
	x, y, w, h float32
}

type fakeRenderer struct {
	quads   []quad
	sprites []string
}

func (r *fakeRenderer) Attach(*resources.Manager) {}
func (r *fakeRenderer) BeginFrame() error         { return nil }
func (r *fakeRenderer) EndFrame() error           { return nil }
func (r *fakeRenderer) Resized(int, int) error    { return nil }
func (r *fakeRenderer) Shutdown() error           { return nil }

func (r *fakeRenderer) DrawQuad(x, y, w, h float32, _ [4]float32) {
	r.quads = append(r.quads, quad{x, y, w, h})
}

func (r *fakeRenderer) DrawSprite(name string, _, _, _, _ float32) error {
	r.sprites = append(r.sprites, name)
	return nil
}

func newTestGame(t *testing.T) *Skirmish {
	t.Helper()
	assets, err := resources.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager() = %v", err)
	}
	t.Cleanup(func() { _ = assets.ReleaseAll() })

	cfg := engine.DefaultConfig()
	g, err := New(assets, cfg)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	t.Cleanup(func() { _ = g.Shutdown() })
	return g.(*Skirmish)
}

func TestMovementFollowsInput(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputState()
	in.UpdateButton(core.ButtonRight, true)

	if err := g.Update(in, 0.1); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if g.player.pos.X <= 0 {
		t.Fatalf("player x = %v, want > 0 after moving right", g.player.pos.X)
	}
	if g.player.pos.Y != 0 {
		t.Fatalf("player y = %v, want 0", g.player.pos.Y)
	}
}

func TestPlayerClampedToArena(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputState()
	in.UpdateButton(core.ButtonUp, true)

	for i := 0; i < 100; i++ {
		if err := g.Update(in, 0.1); err != nil {
			t.Fatalf("Update() = %v", err)
		}
	}
	want := float32(1 - playerSize)
	if g.player.pos.Y != want {
		t.Fatalf("player y = %v, want clamped to %v", g.player.pos.Y, want)
	}
}

func TestQuitChordStopsRunning(t *testing.T) {
	g := newTestGame(t)
	if !g.Running() {
		t.Fatal("game not running after construction")
	}

	in := core.NewInputState()
	in.UpdateButton(core.ButtonAccept, true)
	in.UpdateButton(core.ButtonJump, true)
	if err := g.Update(in, 0.016); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if g.Running() {
		t.Fatal("game still running after quit chord")
	}
}

func TestRenderInterpolatesByRenderDelta(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputState()
	in.UpdateButton(core.ButtonRight, true)
	if err := g.Update(in, 0.1); err != nil {
		t.Fatalf("Update() = %v", err)
	}

	r := &fakeRenderer{}
	if err := g.Render(r, 0.1); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if len(r.quads) != 1 {
		t.Fatalf("drawn quads = %d, want 1 (player only)", len(r.quads))
	}

	// Drawn position extrapolates the update position by velocity * delta.
	wantX := g.player.pos.X + g.player.vel.X*0.1 - playerSize
	if math.Abs(float64(r.quads[0].x-wantX)) > 1e-6 {
		t.Fatalf("player drawn at x=%v, want %v", r.quads[0].x, wantX)
	}
}

func TestShutdownStopsSession(t *testing.T) {
	g := newTestGame(t)
	if err := g.Shutdown(); err != nil {
		t.Fatalf("Shutdown() = %v", err)
	}
	if g.Running() {
		t.Fatal("game running after shutdown")
	}
	if g.session.Alive() {
		t.Fatal("session alive after shutdown")
	}
}

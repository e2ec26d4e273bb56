package game

import (
	"github.com/feralbyte/skirmish/engine"
	"github.com/feralbyte/skirmish/engine/core"
	"github.com/feralbyte/skirmish/engine/mathx"
	"github.com/feralbyte/skirmish/engine/resources"
)

const (
	playerSpeed = 0.9 // normalized device units per second
	playerSize  = 0.08
)

type player struct {
	pos mathx.Vec2
	vel mathx.Vec2
}

// Skirmish is the client-side simulation: one locally controlled player in
// the arena plus the net session the server drives. It borrows the resource
// manager for the lifetime of the engine and owns the loop-control flag.
type Skirmish struct {
	assets  *resources.Manager
	session *Session

	running     bool
	player      player
	hasBackdrop bool
	elapsed     float64
}

func New(assets *resources.Manager, cfg *engine.ApplicationConfig) (engine.Game, error) {
	g := &Skirmish{
		assets:  assets,
		session: NewSession(cfg.Port),
		running: true,
	}

	// The backdrop is optional; a fresh checkout without the art pack still
	// has to run.
	if _, err := assets.Acquire(resources.TypeTexture, "textures/arena.png"); err != nil {
		core.LogWarn("arena backdrop unavailable: %s", err.Error())
	} else {
		g.hasBackdrop = true
	}

	if err := g.session.Connect(); err != nil {
		return nil, err
	}

	return g, nil
}

// Update advances the simulation by the stretched delta using the input
// snapshot taken by the loop.
func (g *Skirmish) Update(input *core.InputState, delta float64) error {
	g.elapsed += delta

	var dir mathx.Vec2
	if input.IsPressed(core.ButtonUp) {
		dir.Y += 1
	}
	if input.IsPressed(core.ButtonDown) {
		dir.Y -= 1
	}
	if input.IsPressed(core.ButtonLeft) {
		dir.X -= 1
	}
	if input.IsPressed(core.ButtonRight) {
		dir.X += 1
	}

	g.player.vel = dir.Scale(playerSpeed)
	g.player.pos = g.player.pos.Add(g.player.vel.Scale(float32(delta)))
	g.player.pos.X = mathx.Clamp(g.player.pos.X, -1+playerSize, 1-playerSize)
	g.player.pos.Y = mathx.Clamp(g.player.pos.Y, -1+playerSize, 1-playerSize)

	// Accept+jump chord quits; the loop observes the flag on its next check.
	if input.IsPressed(core.ButtonAccept) && input.IsPressed(core.ButtonJump) {
		core.LogInfo("Quit chord pressed, stopping.")
		g.running = false
	}

	return g.session.Sync(g.player.pos, delta)
}

// Render interpolates the player forward by the render delta so presentation
// stays smooth between simulation updates.
func (g *Skirmish) Render(r engine.Renderer, delta float64) error {
	if g.hasBackdrop {
		if err := r.DrawSprite("textures/arena.png", -1, -1, 2, 2); err != nil {
			return err
		}
	}

	pos := g.player.pos.Add(g.player.vel.Scale(float32(delta)))
	r.DrawQuad(pos.X-playerSize, pos.Y-playerSize, playerSize*2, playerSize*2,
		[4]float32{0.9, 0.35, 0.2, 1.0})

	for _, remote := range g.session.Remotes() {
		r.DrawQuad(remote.X-playerSize, remote.Y-playerSize, playerSize*2, playerSize*2,
			[4]float32{0.2, 0.5, 0.9, 1.0})
	}
	return nil
}

// Running is the loop-control flag read by the loop each iteration.
func (g *Skirmish) Running() bool {
	return g.running && g.session.Alive()
}

func (g *Skirmish) Shutdown() error {
	g.running = false
	return g.session.Close()
}

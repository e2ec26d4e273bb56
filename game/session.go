package game

import (
	"github.com/feralbyte/skirmish/engine/core"
	"github.com/feralbyte/skirmish/engine/mathx"
)

// Session is the placeholder for the client's server connection. The wire
// protocol lives outside this repo; the session only carries the configured
// port, tracks liveness, and buffers the remote player positions the
// simulation renders.
type Session struct {
	port    uint16
	alive   bool
	remotes []mathx.Vec2
}

func NewSession(port uint16) *Session {
	return &Session{port: port}
}

func (s *Session) Connect() error {
	// TODO: dial the arena server once the protocol package lands.
	s.alive = true
	core.LogInfo("Session ready on port %d (offline mode).", s.port)
	return nil
}

// Sync pushes the local player state out and refreshes the remote set.
func (s *Session) Sync(pos mathx.Vec2, delta float64) error {
	if !s.alive {
		return nil
	}
	_ = pos
	_ = delta
	return nil
}

func (s *Session) Remotes() []mathx.Vec2 {
	return s.remotes
}

func (s *Session) Alive() bool {
	return s.alive
}

func (s *Session) Close() error {
	s.alive = false
	return nil
}

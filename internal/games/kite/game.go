// Package kite implements Balão Arretado, a flap-style game where a kite
// flies through gaps between festival bunting and bonfires.
//
// The simulation is the pure Tick/Flap/Reset trio over State. Game wraps
// them with a seeded obstacle generator and the input/render contract the
// platform layer drives.
package kite

import (
	"math/rand"

	"github.com/vovakirdan/tui-kite/internal/config"
	"github.com/vovakirdan/tui-kite/internal/core"
)

// ID and Title identify the game to the platform.
const (
	ID    = "kite"
	Title = "Balão Arretado"
)

// Game owns one session's simulation state.
type Game struct {
	cfg     config.KiteConfig
	runtime core.RuntimeConfig
	geo     Geometry
	state   State
	rng     *rand.Rand
	tick    uint64 // Ticks simulated in the current round
}

// New creates a game using the given configuration.
// Call Reset before the first Step.
func New(cfg config.KiteConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Reset builds the field for the runtime's screen, seeds the obstacle
// generator and returns to the idle state.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc.ResolveSeed()
	g.geo = GeometryFromConfig(g.cfg, rc.ScreenW, rc.ScreenH)
	g.rng = rand.New(rand.NewSource(g.runtime.Seed))
	g.state = Reset(g.geo)
	g.tick = 0
}

// Restart starts a new round with a seed drawn from the current generator,
// so a seeded session stays reproducible across rounds.
func (g *Game) Restart() {
	rc := g.runtime
	rc.Seed = g.rng.Int63()
	if rc.Seed == 0 {
		rc.Seed = 1
	}
	g.Reset(rc)
}

// Resize adapts the field to a new screen size. The geometry only changes
// while idle; a round in progress keeps the field it started with.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	if g.state.Phase == PhaseIdle {
		g.geo = GeometryFromConfig(g.cfg, screenW, screenH)
		g.state = Reset(g.geo)
	}
}

// Flap applies the player's flap input.
func (g *Game) Flap() {
	g.state = Flap(g.state, g.geo)
}

// Advance runs one simulation tick and returns the resulting frame.
func (g *Game) Advance() Snapshot {
	if g.state.Phase == PhaseRunning {
		g.tick++
	}
	g.state = Tick(g.state, g.geo, g.rng)
	return g.Snapshot()
}

// Apply handles one frame of input without advancing the simulation.
// Restart is honoured only once the round is over and reports true when it
// happened.
func (g *Game) Apply(in core.InputFrame) (restarted bool) {
	if in.Has(core.ActionRestart) && g.state.Phase.IsOver() {
		g.Restart()
		return true
	}
	if in.Has(core.ActionJump) {
		g.Flap()
	}
	return false
}

// Step handles one frame of input and advances the simulation.
// A flap is applied before the tick so its impulse takes effect in the same
// frame; a restart frame does not tick.
func (g *Game) Step(in core.InputFrame) Snapshot {
	if g.Apply(in) {
		return g.Snapshot()
	}
	return g.Advance()
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// Geometry returns the current round's geometry.
func (g *Game) Geometry() Geometry {
	return g.geo
}

// Snapshot returns a read-only copy of the current frame.
func (g *Game) Snapshot() Snapshot {
	return NewSnapshot(g.tick, g.state, g.geo)
}

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

package kite

import (
	"github.com/vovakirdan/tui-kite/internal/config"
)

// Phase is the coarse game state. Exactly one phase holds at a time.
type Phase int

const (
	PhaseIdle    Phase = iota // Waiting for the first flap
	PhaseRunning              // Simulation advancing every tick
	PhaseLost                 // Kite left the field or hit an obstacle
	PhaseWon                  // Score reached the win threshold
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseLost:
		return "lost"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// IsOver reports whether the round has ended.
func (p Phase) IsOver() bool {
	return p == PhaseLost || p == PhaseWon
}

// Obstacle is a vertical slot the kite must fly through: bunting hangs from
// the top down to GapTop and a bonfire burns below GapTop+GapHeight.
type Obstacle struct {
	X         float64 // Left edge
	GapTop    float64 // Top of the passable gap
	GapHeight float64 // Height of the passable gap
	Passed    bool    // Set once the kite has cleared the trailing edge
}

// Right returns the trailing edge of the obstacle.
func (o Obstacle) Right(width float64) float64 {
	return o.X + width
}

// GapBottom returns the bottom of the passable gap.
func (o Obstacle) GapBottom() float64 {
	return o.GapTop + o.GapHeight
}

// Overlaps reports whether the obstacle horizontally overlaps [left, right).
func (o Obstacle) Overlaps(left, right, width float64) bool {
	return o.X < right && o.Right(width) > left
}

// Blocks reports whether a vertical span [top, bottom] sticks out of the gap.
func (o Obstacle) Blocks(top, bottom float64) bool {
	return top < o.GapTop || bottom > o.GapBottom()
}

// State is the complete simulation state. Obstacles are kept in spawn order,
// which is also ascending X because every obstacle scrolls at the same speed.
type State struct {
	AvatarY        float64 // Top of the kite's hitbox; 0 is the top of the field
	AvatarVelocity float64 // Units per tick, positive is downward
	Obstacles      []Obstacle
	Score          int
	Phase          Phase
}

// Clone returns a deep copy that shares no memory with s.
func (s State) Clone() State {
	c := s
	if s.Obstacles != nil {
		c.Obstacles = make([]Obstacle, len(s.Obstacles))
		copy(c.Obstacles, s.Obstacles)
	}
	return c
}

// Reset returns the initial state: idle, kite at mid-height, no obstacles.
func Reset(geo Geometry) State {
	return State{
		AvatarY: geo.FieldHeight / 2,
		Phase:   PhaseIdle,
	}
}

// Geometry holds the field dimensions and motion constants for one round.
type Geometry struct {
	FieldWidth     float64
	FieldHeight    float64
	AvatarSize     float64
	AvatarLane     float64 // Fraction of FieldWidth where the kite flies
	ObstacleWidth  float64
	GapSize        float64
	Gravity        float64
	FlapImpulse    float64
	ScrollSpeed    float64
	SpawnThreshold float64
	MinMargin      float64
	WinScore       int
}

// Field width bounds used when deriving the width from a terminal.
const (
	minFieldWidth = 400.0
	cellAspect    = 2.0 // Terminal cells are about twice as tall as wide
	chromeRows    = 2   // HUD and footer rows around the play area
)

// AvatarX returns the left edge of the kite's fixed horizontal lane.
func (g Geometry) AvatarX() float64 {
	return g.FieldWidth * g.AvatarLane
}

// GeometryFromConfig builds the round geometry. When the configured field
// width is zero it is derived from the screen's aspect ratio so the field
// fills the terminal, as the original sized the field to the window.
func GeometryFromConfig(cfg config.KiteConfig, screenW, screenH int) Geometry {
	width := cfg.Field.Width
	if width <= 0 {
		width = minFieldWidth
		playRows := screenH - chromeRows
		if screenW > 0 && playRows > 0 {
			derived := cfg.Field.Height * float64(screenW) / (float64(playRows) * cellAspect)
			if derived > width {
				width = derived
			}
		}
	}

	return Geometry{
		FieldWidth:     width,
		FieldHeight:    cfg.Field.Height,
		AvatarSize:     cfg.Avatar.Size,
		AvatarLane:     cfg.Avatar.Lane,
		ObstacleWidth:  cfg.Obstacles.Width,
		GapSize:        cfg.Obstacles.Gap,
		Gravity:        cfg.Physics.Gravity,
		FlapImpulse:    cfg.Physics.FlapImpulse,
		ScrollSpeed:    cfg.Physics.ScrollSpeed,
		SpawnThreshold: cfg.Obstacles.SpawnThreshold,
		MinMargin:      cfg.Obstacles.Margin,
		WinScore:       cfg.Rules.WinScore,
	}
}

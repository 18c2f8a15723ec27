package kite

import "github.com/vovakirdan/tui-kite/internal/core"

// Maximum kite tilt in degrees either way.
const maxTilt = 20.0

// Overlay selects which screen is drawn over the field.
type Overlay int

const (
	OverlayNone  Overlay = iota // Running: field only
	OverlayStart                // Idle: start prompt
	OverlayLost                 // Lost: loss summary
	OverlayWon                  // Won: win summary
)

// OverlayFor returns the overlay shown in the given phase.
func OverlayFor(p Phase) Overlay {
	switch p {
	case PhaseIdle:
		return OverlayStart
	case PhaseLost:
		return OverlayLost
	case PhaseWon:
		return OverlayWon
	default:
		return OverlayNone
	}
}

// Tilt returns the kite's display rotation in degrees for a velocity:
// twice the velocity, clamped to ±20. Positive tilts nose-down.
func Tilt(velocity float64) float64 {
	return core.ClampF(velocity*2, -maxTilt, maxTilt)
}

// Snapshot is a read-only view of one frame, safe to hand to a renderer.
type Snapshot struct {
	Tick     uint64
	State    State
	Geometry Geometry
	Tilt     float64
	Overlay  Overlay
}

// NewSnapshot captures state and geometry at the given tick.
// The state is deep-copied so later ticks cannot change the snapshot.
func NewSnapshot(tick uint64, s State, geo Geometry) Snapshot {
	return Snapshot{
		Tick:     tick,
		State:    s.Clone(),
		Geometry: geo,
		Tilt:     Tilt(s.AvatarVelocity),
		Overlay:  OverlayFor(s.Phase),
	}
}

// Phase returns the phase captured in the snapshot.
func (s Snapshot) Phase() Phase {
	return s.State.Phase
}

// Started reports whether the round has left the idle phase.
func (s Snapshot) Started() bool {
	return s.State.Phase != PhaseIdle
}

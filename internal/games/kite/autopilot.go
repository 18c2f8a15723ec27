package kite

// ShouldFlap is the headless autopilot policy: start an idle round, then flap
// whenever the kite is falling and its centre has dropped below the centre of
// the next gap. Ended rounds never flap.
func ShouldFlap(s State, geo Geometry) bool {
	switch s.Phase {
	case PhaseIdle:
		return true
	case PhaseRunning:
	default:
		return false
	}

	target := geo.FieldHeight / 2
	for _, o := range s.Obstacles {
		if o.Right(geo.ObstacleWidth) >= geo.AvatarX() {
			target = o.GapTop + o.GapHeight/2
			break
		}
	}

	centre := s.AvatarY + geo.AvatarSize/2
	return s.AvatarVelocity >= 0 && centre > target
}

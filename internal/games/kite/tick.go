package kite

// Tick advances a running state by one fixed step and returns the next state.
// prev is never modified. States outside PhaseRunning are returned unchanged.
//
// Leaving the field or touching an obstacle ends the round with every other
// field frozen at prev, so the loss frame shows the last legal position.
// Reaching the win score ends the round keeping prev's kite and obstacles
// and the new score.
func Tick(prev State, geo Geometry, rng Source) State {
	if prev.Phase != PhaseRunning {
		return prev.Clone()
	}

	y := prev.AvatarY + prev.AvatarVelocity
	v := prev.AvatarVelocity + geo.Gravity

	if y < 0 || y > geo.FieldHeight-geo.AvatarSize {
		return ended(prev, PhaseLost, prev.Score)
	}

	obstacles := scrollObstacles(prev.Obstacles, geo)
	if spawnDue(obstacles, geo) {
		obstacles = append(obstacles, spawnObstacle(geo, rng))
	}

	if collides(obstacles, y, geo) {
		return ended(prev, PhaseLost, prev.Score)
	}

	score := prev.Score + markPassed(obstacles, geo)
	if score >= geo.WinScore {
		return ended(prev, PhaseWon, score)
	}

	return State{
		AvatarY:        y,
		AvatarVelocity: v,
		Obstacles:      obstacles,
		Score:          score,
		Phase:          PhaseRunning,
	}
}

// ended returns prev frozen as it was, apart from the new phase and score.
func ended(prev State, phase Phase, score int) State {
	next := prev.Clone()
	next.Phase = phase
	next.Score = score
	return next
}

// Flap applies the player's flap. An idle game starts running; any game that
// has not ended gets its velocity replaced by the flap impulse. Ended games
// are returned unchanged.
func Flap(s State, geo Geometry) State {
	next := s.Clone()
	if next.Phase.IsOver() {
		return next
	}
	if next.Phase == PhaseIdle {
		next.Phase = PhaseRunning
	}
	next.AvatarVelocity = geo.FlapImpulse
	return next
}

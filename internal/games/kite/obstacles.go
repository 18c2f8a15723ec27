package kite

import "math/rand"

// Source supplies uniform random numbers in [0, 1) for gap placement.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// scrollObstacles returns a new slice with every obstacle moved left by the
// scroll speed. Obstacles whose trailing edge has reached the left border of
// the field are dropped, so at most a screenful of obstacles is ever live.
func scrollObstacles(obstacles []Obstacle, geo Geometry) []Obstacle {
	moved := make([]Obstacle, 0, len(obstacles)+1)
	for _, o := range obstacles {
		o.X -= geo.ScrollSpeed
		if o.X <= -geo.ObstacleWidth {
			continue
		}
		moved = append(moved, o)
	}
	return moved
}

// spawnDue reports whether a new obstacle should enter from the right edge.
func spawnDue(obstacles []Obstacle, geo Geometry) bool {
	if len(obstacles) == 0 {
		return true
	}
	return obstacles[len(obstacles)-1].X < geo.FieldWidth-geo.SpawnThreshold
}

// spawnObstacle creates an obstacle at the right edge with its gap placed
// uniformly within the margins. Fields too short for the margins pin the gap
// to the top margin.
func spawnObstacle(geo Geometry, rng Source) Obstacle {
	span := geo.FieldHeight - geo.GapSize - 2*geo.MinMargin
	gapTop := geo.MinMargin
	if span > 0 {
		gapTop += uniform(rng) * span
	}

	return Obstacle{
		X:         geo.FieldWidth,
		GapTop:    gapTop,
		GapHeight: geo.GapSize,
	}
}

func uniform(rng Source) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}

// collides reports whether any obstacle in the kite's lane blocks the
// vertical span [top, top+size].
func collides(obstacles []Obstacle, top float64, geo Geometry) bool {
	left := geo.AvatarX()
	right := left + geo.AvatarSize
	bottom := top + geo.AvatarSize

	for _, o := range obstacles {
		if o.Overlaps(left, right, geo.ObstacleWidth) && o.Blocks(top, bottom) {
			return true
		}
	}
	return false
}

// markPassed flags obstacles whose trailing edge is behind the kite's lane
// and returns how many were newly passed. Each obstacle scores once.
func markPassed(obstacles []Obstacle, geo Geometry) int {
	avatarX := geo.AvatarX()
	passed := 0
	for i := range obstacles {
		if !obstacles[i].Passed && obstacles[i].Right(geo.ObstacleWidth) < avatarX {
			obstacles[i].Passed = true
			passed++
		}
	}
	return passed
}

package entity

// PatrolRoute is an ordered waypoint loop
type PatrolRoute struct {
	Points []Vec3
	Index  int
}

// NewPatrolRoute creates a route starting at the first waypoint
func NewPatrolRoute(points []Vec3) PatrolRoute {
	pts := make([]Vec3, len(points))
	copy(pts, points)
	return PatrolRoute{Points: pts}
}

// Valid returns true if the route has at least one waypoint
func (r *PatrolRoute) Valid() bool {
	return len(r.Points) > 0
}

// Current returns the active waypoint
func (r *PatrolRoute) Current() (Vec3, bool) {
	if !r.Valid() {
		return Vec3{}, false
	}
	if r.Index < 0 || r.Index >= len(r.Points) {
		r.Index = 0
	}
	return r.Points[r.Index], true
}

// Advance moves to the next waypoint, wrapping around
func (r *PatrolRoute) Advance() {
	if !r.Valid() {
		return
	}
	r.Index = (r.Index + 1) % len(r.Points)
}

// Nearest returns the index of the closest waypoint to pos that passes
// reachable. A nil reachable accepts every waypoint.
func (r *PatrolRoute) Nearest(pos Vec3, reachable func(Vec3) bool) (int, bool) {
	best := -1
	bestDist := 0.0
	for i, p := range r.Points {
		if reachable != nil && !reachable(p) {
			continue
		}
		d := PlanarDistance(pos, p)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best >= 0
}

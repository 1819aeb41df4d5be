package entity

import "math"

// DefaultArriveDistance is how close a body must get to its destination
// to count as arrived
const DefaultArriveDistance = 0.1

// Body is a kinematic agent body that walks straight toward a destination.
// It stands in for a path-following locomotion layer.
type Body struct {
	Position Vec3
	Heading  float64 // degrees, 0 = +X, 90 = +Z
	Speed    float64 // current units/second

	ArriveDistance float64

	profile     LocomotionProfile
	destination Vec3
	moving      bool
	stage       *Stage
}

// NewBody creates a body at pos using profile. stage may be nil for an
// open field.
func NewBody(pos Vec3, profile LocomotionProfile, stage *Stage) *Body {
	return &Body{
		Position:       pos,
		ArriveDistance: DefaultArriveDistance,
		profile:        profile,
		stage:          stage,
	}
}

// GetPosition returns the body's position
func (b *Body) GetPosition() Vec3 {
	return b.Position
}

// CanReach reports whether p can be stood on
func (b *Body) CanReach(p Vec3) bool {
	return b.stage.IsWalkable(p)
}

// SetDestination starts moving toward p. Returns false if p cannot be
// stood on.
func (b *Body) SetDestination(p Vec3) bool {
	if !b.CanReach(p) {
		return false
	}
	b.destination = p
	b.moving = true
	return true
}

// Destination returns the current destination while moving
func (b *Body) Destination() (Vec3, bool) {
	return b.destination, b.moving
}

// Stop cancels movement immediately
func (b *Body) Stop() {
	b.moving = false
	b.Speed = 0
}

// Profile returns the active locomotion profile
func (b *Body) Profile() LocomotionProfile {
	return b.profile
}

// SetProfile replaces the locomotion profile
func (b *Body) SetProfile(p LocomotionProfile) {
	b.profile = p
	if b.Speed > p.MoveSpeed {
		b.Speed = p.MoveSpeed
	}
}

// CurrentSpeed returns the current ground speed
func (b *Body) CurrentSpeed() float64 {
	return b.Speed
}

// Moving returns true while travelling to a destination
func (b *Body) Moving() bool {
	return b.moving
}

// Step advances the body by dt seconds
func (b *Body) Step(dt float64) {
	if dt <= 0 {
		return
	}
	if !b.moving {
		b.brake(dt)
		return
	}

	to := b.destination.Sub(b.Position)
	to.Y = 0
	remaining := to.PlanarLen()
	if remaining <= b.ArriveDistance {
		b.arrive()
		return
	}

	b.turnToward(math.Atan2(to.Z, to.X)*180/math.Pi, dt)
	b.accelerate(remaining, dt)

	travel := math.Min(b.Speed*dt, remaining)
	next := b.Position.Add(to.Scale(travel / remaining))
	switch {
	case b.stage.IsWalkable(next):
		b.Position = next
	case b.stage.IsWalkable(Vec3{X: next.X, Y: b.Position.Y, Z: b.Position.Z}):
		b.Position.X = next.X
	case b.stage.IsWalkable(Vec3{X: b.Position.X, Y: b.Position.Y, Z: next.Z}):
		b.Position.Z = next.Z
	default:
		b.Speed = 0
	}

	if PlanarDistance(b.Position, b.destination) <= b.ArriveDistance {
		b.arrive()
	}
}

func (b *Body) arrive() {
	b.moving = false
	if b.profile.BrakingEnabled {
		b.Speed = 0
	}
}

func (b *Body) brake(dt float64) {
	if b.profile.Acceleration <= 0 {
		b.Speed = 0
		return
	}
	b.Speed = math.Max(0, b.Speed-b.profile.Acceleration*dt)
}

func (b *Body) accelerate(remaining, dt float64) {
	target := b.profile.MoveSpeed
	if b.profile.BrakingEnabled && b.profile.Acceleration > 0 {
		// v^2 = 2ad
		stopping := math.Sqrt(2 * b.profile.Acceleration * remaining)
		if stopping < target {
			target = stopping
		}
	}

	if b.profile.Acceleration <= 0 {
		b.Speed = target
		return
	}
	if b.Speed < target {
		b.Speed = math.Min(target, b.Speed+b.profile.Acceleration*dt)
	} else {
		b.Speed = math.Max(target, b.Speed-b.profile.Acceleration*dt)
	}
}

func (b *Body) turnToward(want, dt float64) {
	diff := normalizeDegrees(want - b.Heading)
	maxTurn := b.profile.TurnRate * dt
	if b.profile.TurnRate <= 0 || math.Abs(diff) <= maxTurn {
		b.Heading = normalizeDegrees(want)
		return
	}
	if diff > 0 {
		b.Heading = normalizeDegrees(b.Heading + maxTurn)
	} else {
		b.Heading = normalizeDegrees(b.Heading - maxTurn)
	}
}

// normalizeDegrees wraps an angle to [-180, 180]
func normalizeDegrees(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}

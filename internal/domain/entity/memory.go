package entity

// TimeTolerance absorbs float drift from accumulating frame deltas
const TimeTolerance = 1e-9

// PursuitMemory is what the adversary remembers about its target while
// searching and hunting. Times are controller seconds.
type PursuitMemory struct {
	LastHeardPosition  Vec3
	LastHeardAt        float64
	NextReevaluationAt float64

	// Seconds of uninterrupted target movement in a low-visibility posture
	MovementAccumulator float64

	lastTargetPos Vec3
	seen          bool // lastTargetPos is valid
	tracking      bool // crouched tracking is anchored
}

// Reset clears the memory and anchors it at the given position and time
func (m *PursuitMemory) Reset(now float64, pos Vec3) {
	*m = PursuitMemory{
		LastHeardPosition:  pos,
		LastHeardAt:        now,
		NextReevaluationAt: now,
	}
}

// Hear records the target at pos at time now
func (m *PursuitMemory) Hear(pos Vec3, now float64) {
	m.LastHeardPosition = pos
	m.LastHeardAt = now
}

// TrackMovement feeds the target position for a tick spent in a
// low-visibility posture. The accumulator grows by dt while the target
// moves more than epsilon and drops to zero the tick it stops. The first
// tick after TrackVisible only anchors. Returns true if the target moved.
func (m *PursuitMemory) TrackMovement(pos Vec3, dt, epsilon float64) bool {
	if !m.tracking {
		m.lastTargetPos = pos
		m.seen = true
		m.tracking = true
		return false
	}

	moved := Distance(m.lastTargetPos, pos) > epsilon
	m.lastTargetPos = pos
	if moved {
		m.MovementAccumulator += dt
	} else {
		m.MovementAccumulator = 0
	}
	return moved
}

// TrackVisible feeds the target position for a tick spent in plain view
// and reports whether it moved more than epsilon. The accumulator is
// cleared and crouched tracking starts over.
func (m *PursuitMemory) TrackVisible(pos Vec3, epsilon float64) bool {
	moved := m.seen && Distance(m.lastTargetPos, pos) > epsilon
	m.lastTargetPos = pos
	m.seen = true
	m.tracking = false
	m.MovementAccumulator = 0
	return moved
}

// ThrottleElapsed reports whether the destination may be re-evaluated
func (m PursuitMemory) ThrottleElapsed(now float64) bool {
	return now+TimeTolerance >= m.NextReevaluationAt
}

// PushThrottle blocks re-evaluation for interval seconds from now
func (m *PursuitMemory) PushThrottle(now, interval float64) {
	if interval < 0 {
		interval = 0
	}
	m.NextReevaluationAt = now + interval
}

// SinceHeard returns seconds since the target was last heard, never negative
func (m PursuitMemory) SinceHeard(now float64) float64 {
	if now < m.LastHeardAt {
		return 0
	}
	return now - m.LastHeardAt
}

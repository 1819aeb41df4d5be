package system

import (
	"math"

	"github.com/younwookim/hunter/internal/domain/entity"
)

// updateRage resolves the chase destination for this tick, checks for a
// capture and gives up once the target has been silent for too long.
func (c *Controller) updateRage(dt float64) {
	if c.override.Active(c.now) {
		forced := c.override.Target
		pos := forced.GetPosition()
		c.memory.Hear(pos, c.now)
		c.pursue(pos)
		c.checkCapture(forced)
		return
	}

	if c.hasSample {
		c.resolvePursuit(dt)
		c.checkCapture(c.target)
	}

	if exceeded(c.memory.SinceHeard(c.now), c.tuning.RageForgetAfter) {
		c.logger.Debug("target forgotten", "since", c.memory.SinceHeard(c.now))
		c.exitRage()
	}
}

func (c *Controller) resolvePursuit(dt float64) {
	s := c.sample

	// A visible target is heard whenever it moves; a crouching one only
	// through noise.
	if !c.target.IsInLowVisibilityPosture() {
		moved := c.memory.TrackVisible(s.TargetPosition, c.tuning.MovementEpsilon)
		if moved || s.NoiseEventDetected {
			c.memory.Hear(s.TargetPosition, c.now)
		}
		c.pursue(s.TargetPosition)
		return
	}
	c.memory.TrackMovement(s.TargetPosition, dt, c.tuning.MovementEpsilon)
	if s.NoiseEventDetected {
		c.memory.Hear(s.TargetPosition, c.now)
	}

	// Both triggers see the same throttle state so either may fire this tick.
	open := c.memory.ThrottleElapsed(c.now)
	if open && reached(c.memory.MovementAccumulator, c.tuning.PlayerMoveSecondsToChase) && c.memory.MovementAccumulator > 0 {
		c.pursue(c.memory.LastHeardPosition)
		c.memory.PushThrottle(c.now, c.tuning.RequeryFootstepInterval)
	}
	if open && s.NoiseEventDetected {
		c.pursue(c.memory.LastHeardPosition)
		c.memory.PushThrottle(c.now, c.tuning.RequeryFootstepInterval)
	}
}

// pursue hands p to locomotion and enforces the pursuit speed floor
func (c *Controller) pursue(p entity.Vec3) {
	if !c.body.SetDestination(p) {
		c.logger.Debug("pursuit destination unreachable", "x", p.X, "z", p.Z)
		return
	}
	c.destination = p
	c.hasDestination = true

	prof := c.body.Profile()
	if prof.MoveSpeed < c.tuning.PursuitSpeedFloor {
		prof.MoveSpeed = c.tuning.PursuitSpeedFloor
		c.body.SetProfile(prof)
	}
}

// checkCapture raises OnCaptured once per contact. It re-arms after the
// target gets clear again.
func (c *Controller) checkCapture(t entity.Target) {
	if t == nil {
		return
	}
	d := entity.PlanarDistance(c.body.GetPosition(), t.GetPosition())
	if d > c.tuning.CaptureDistance {
		c.captured = false
		return
	}
	if c.captured {
		return
	}
	c.captured = true
	c.logger.Info("target captured", "distance", d, "t", c.now)
	c.capture.OnCaptured(c.id)
}

// applyCombatProfile snapshots the current profile and swaps in the
// combat one. A second call before restoreBaseline does nothing.
func (c *Controller) applyCombatProfile() {
	current := c.body.Profile()
	if !c.baseline.Save(current) {
		c.logger.Warn("locomotion baseline already saved")
		return
	}
	c.body.SetProfile(entity.LocomotionProfile{
		MoveSpeed:      math.Max(current.MoveSpeed, c.tuning.PursuitSpeedFloor),
		TurnRate:       math.Max(current.TurnRate, c.tuning.CombatTurnRate),
		Acceleration:   math.Max(current.Acceleration, c.tuning.CombatAcceleration),
		BrakingEnabled: false,
	})
}

// restoreBaseline puts back the snapshotted profile with braking on.
// Without a snapshot it does nothing.
func (c *Controller) restoreBaseline() {
	saved, ok := c.baseline.Restore()
	if !ok {
		return
	}
	saved.BrakingEnabled = true
	c.body.SetProfile(saved)
}

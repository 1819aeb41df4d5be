package system

import "github.com/younwookim/hunter/internal/domain/entity"

// ForceEngage puts the agent into Rage and pursues target for at least
// seconds, ignoring posture gating. A non-positive seconds uses
// DefaultOverrideSeconds. Calling it again only extends the window.
func (c *Controller) ForceEngage(target entity.Target, snapImmediate bool, seconds float64) {
	if target == nil {
		return
	}
	if seconds <= 0 {
		seconds = c.tuning.DefaultOverrideSeconds
	}

	pos := target.GetPosition()
	c.enterRage(pos, true)
	c.override.Open(target, c.now, seconds)
	c.logger.Debug("force engage", "until", c.override.ExpiresAt, "snap", snapImmediate)

	if snapImmediate {
		c.pursue(pos)
	}
}

// OverrideRemaining returns seconds left in the override window
func (c *Controller) OverrideRemaining() float64 {
	return c.override.Remaining(c.now)
}

// NotifyStepEvent is called by the animation layer on each footfall.
// Returns true if the step was accepted and presented.
func (c *Controller) NotifyStepEvent() bool {
	if c.stepped && !reached(c.now-c.lastStepAt, c.tuning.MinStepInterval) {
		return false
	}
	if c.body.CurrentSpeed() < c.tuning.MinStepSpeed {
		return false
	}

	c.stepped = true
	c.lastStepAt = c.now
	c.present(StepIntent{Agent: c.id, State: c.state, Position: c.body.GetPosition()})
	return true
}

// ResetToSpawnState forces Patrol after a world restore. It is safe to
// call in any state, any number of times.
func (c *Controller) ResetToSpawnState() {
	c.body.Stop()
	c.restoreBaseline()

	c.memory = entity.PursuitMemory{}
	c.searchTimer = 0
	c.override = entity.OverrideWindow{}
	c.captured = false
	c.sampler.Reset()
	c.hasSample = false
	c.stepped = false

	c.setState(entity.AwarenessPatrol)
	c.resumePatrol()
	c.present(ResetIntent{Agent: c.id})
}

package system

import "github.com/younwookim/hunter/internal/domain/entity"

// updatePatrol escalates to Search when the target's own signal reaches
// the agent, otherwise keeps walking the route.
func (c *Controller) updatePatrol() {
	if c.hasSample && c.triggered(c.sample) {
		c.enterSearch(c.sample.TargetPosition)
		return
	}
	c.patrol()
}

func (c *Controller) triggered(s entity.PerceptionSample) bool {
	return s.TargetSignalRange >= c.tuning.TriggerThreshold &&
		s.DistanceToTarget <= s.TargetSignalRange
}

// patrol keeps a destination on the current waypoint. Arrived or
// unreachable waypoints are skipped, at most one lap per tick.
func (c *Controller) patrol() {
	if !c.route.Valid() {
		return
	}

	pos := c.body.GetPosition()
	for range len(c.route.Points) {
		wp, _ := c.route.Current()
		if c.hasDestination && c.destination == wp {
			if entity.PlanarDistance(pos, wp) > c.tuning.WaypointArriveDistance {
				return
			}
			c.route.Advance()
			c.hasDestination = false
			continue
		}

		if c.body.SetDestination(wp) {
			c.destination = wp
			c.hasDestination = true
			return
		}
		c.logger.Debug("waypoint unreachable", "index", c.route.Index)
		c.route.Advance()
	}
}

// resumePatrol restarts the loop from the nearest reachable waypoint
func (c *Controller) resumePatrol() {
	c.body.Stop()
	c.hasDestination = false
	if !c.route.Valid() {
		return
	}
	if idx, ok := c.route.Nearest(c.body.GetPosition(), c.body.CanReach); ok {
		c.route.Index = idx
	}
	c.patrol()
}

func (c *Controller) enterSearch(heard entity.Vec3) {
	c.body.Stop()
	c.hasDestination = false
	c.memory.Reset(c.now, heard)
	c.searchTimer = 0
	c.setState(entity.AwarenessSearch)
	c.present(AlertIntent{Agent: c.id, Position: heard})
}

// updateSearch holds still until SearchToRageDelay has elapsed. Noise
// refreshes memory but never moves the deadline.
func (c *Controller) updateSearch(dt float64) {
	c.searchTimer += dt
	if c.hasSample && c.sample.NoiseEventDetected {
		c.memory.Hear(c.sample.TargetPosition, c.now)
	}
	if !reached(c.searchTimer, c.tuning.SearchToRageDelay) {
		return
	}

	heard := c.memory.LastHeardPosition
	c.enterRage(heard, false)
	c.pursue(heard)
	c.memory.PushThrottle(c.now, c.tuning.RequeryFootstepInterval)
}

// enterRage performs Rage entry once. Re-entering Rage does nothing.
func (c *Controller) enterRage(anchor entity.Vec3, forced bool) {
	if c.state == entity.AwarenessRage {
		return
	}
	c.memory.Reset(c.now, anchor)
	c.searchTimer = 0
	c.captured = false
	c.applyCombatProfile()
	c.setState(entity.AwarenessRage)
	c.present(RageIntent{Agent: c.id, Forced: forced})
}

// exitRage gives up the hunt and returns to the route
func (c *Controller) exitRage() {
	c.restoreBaseline()
	c.override = entity.OverrideWindow{}
	c.captured = false
	c.setState(entity.AwarenessPatrol)
	c.resumePatrol()
	c.present(CalmIntent{Agent: c.id})
}

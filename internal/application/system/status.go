package system

import "github.com/younwookim/hunter/internal/domain/entity"

// Status is a read-only snapshot of a controller, for HUDs, telemetry
// and reports.
type Status struct {
	Agent             entity.EntityID `json:"agent"`
	State             string          `json:"state"`
	Time              float64         `json:"time"`
	X                 float64         `json:"x"`
	Z                 float64         `json:"z"`
	Speed             float64         `json:"speed"`
	HasDestination    bool            `json:"hasDestination"`
	DestX             float64         `json:"destX"`
	DestZ             float64         `json:"destZ"`
	HasTarget         bool            `json:"hasTarget"`
	Signal            float64         `json:"signal"`
	Distance          float64         `json:"distance"`
	SearchTimer       float64         `json:"searchTimer"`
	SinceHeard        float64         `json:"sinceHeard"`
	MovementSeconds   float64         `json:"movementSeconds"`
	OverrideRemaining float64         `json:"overrideRemaining"`
	BaselineSaved     bool            `json:"baselineSaved"`
	Waypoint          int             `json:"waypoint"`
}

// Status returns the current snapshot
func (c *Controller) Status() Status {
	pos := c.body.GetPosition()
	st := Status{
		Agent:             c.id,
		State:             c.state.String(),
		Time:              c.now,
		X:                 pos.X,
		Z:                 pos.Z,
		Speed:             c.body.CurrentSpeed(),
		HasDestination:    c.hasDestination,
		DestX:             c.destination.X,
		DestZ:             c.destination.Z,
		HasTarget:         c.target != nil,
		SearchTimer:       c.searchTimer,
		OverrideRemaining: c.override.Remaining(c.now),
		BaselineSaved:     c.baseline.Pending(),
		Waypoint:          c.route.Index,
	}
	if c.hasSample {
		st.Signal = c.sample.TargetSignalRange
		st.Distance = c.sample.DistanceToTarget
	}
	if c.state == entity.AwarenessRage {
		st.SinceHeard = c.memory.SinceHeard(c.now)
		st.MovementSeconds = c.memory.MovementAccumulator
	}
	return st
}

// Baseline returns the pending locomotion snapshot, if any
func (c *Controller) Baseline() (entity.LocomotionProfile, bool) {
	return c.baseline.Saved(), c.baseline.Pending()
}

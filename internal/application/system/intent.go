package system

import "github.com/younwookim/hunter/internal/domain/entity"

// Intent is a presentation request raised by a controller. Presenters
// decide which lights, sounds and animations it maps to.
type Intent interface {
	isIntent()
}

// AlertIntent is raised on entering Search (escalating)
type AlertIntent struct {
	Agent    entity.EntityID
	Position entity.Vec3 // where the target was heard
}

func (AlertIntent) isIntent() {}

// RageIntent is raised on entering Rage
type RageIntent struct {
	Agent  entity.EntityID
	Forced bool // entered through ForceEngage
}

func (RageIntent) isIntent() {}

// CalmIntent is raised when Rage gives up and patrol resumes (de-escalating)
type CalmIntent struct {
	Agent entity.EntityID
}

func (CalmIntent) isIntent() {}

// ResetIntent is raised when the controller is forced back to spawn state
type ResetIntent struct {
	Agent entity.EntityID
}

func (ResetIntent) isIntent() {}

// StepIntent is raised for an accepted footfall
type StepIntent struct {
	Agent    entity.EntityID
	State    entity.AwarenessState
	Position entity.Vec3
}

func (StepIntent) isIntent() {}

package ecs

import (
	"github.com/younwookim/hunter/internal/application/system"
	"github.com/younwookim/hunter/internal/domain/entity"
)

// DefaultStrideLength is the distance walked between two footfalls
const DefaultStrideLength = 0.9

// Adversary holds per-adversary data that belongs to neither the body
// nor the controller
type Adversary struct {
	Name  string
	Spawn entity.Vec3

	// Distance walked since the last footfall
	Stride float64
}

// AdversaryConfig holds configuration for creating an adversary
type AdversaryConfig struct {
	Name      string
	Spawn     entity.Vec3
	Route     entity.PatrolRoute
	Profile   entity.LocomotionProfile
	Tuning    system.Tuning
	Presenter system.Presenter // nil = none

	// Called after every awareness change of this adversary
	OnTransition func(system.Transition)
}

// Capture is one capture log entry
type Capture struct {
	Agent    entity.EntityID `json:"agent"`
	Name     string          `json:"name"`
	At       float64         `json:"at"`
	Position entity.Vec3     `json:"position"` // intruder position
}

package system

import "github.com/younwookim/hunter/internal/domain/entity"

// Locomotion is the executor that moves the agent's body. The controller
// only issues destinations and profiles; the executor owns the pose.
type Locomotion interface {
	GetPosition() entity.Vec3
	CanReach(p entity.Vec3) bool
	SetDestination(p entity.Vec3) bool
	Stop()
	Profile() entity.LocomotionProfile
	SetProfile(p entity.LocomotionProfile)
	CurrentSpeed() float64
}

// Presenter receives presentation intents (lights, audio, animation)
type Presenter interface {
	Present(intent Intent)
}

// CaptureHandler is the game-over collaborator
type CaptureHandler interface {
	OnCaptured(agent entity.EntityID)
}

// TargetLocator finds the tracked target. It may fail until the target
// has spawned.
type TargetLocator interface {
	Locate() (entity.Target, bool)
}

// PresenterFunc adapts a function to Presenter
type PresenterFunc func(Intent)

// Present calls f(intent)
func (f PresenterFunc) Present(intent Intent) { f(intent) }

// CaptureFunc adapts a function to CaptureHandler
type CaptureFunc func(entity.EntityID)

// OnCaptured calls f(agent)
func (f CaptureFunc) OnCaptured(agent entity.EntityID) { f(agent) }

// StaticTarget is a TargetLocator that always returns the same target
type StaticTarget struct {
	Target entity.Target
}

// Locate returns the fixed target, if any
func (s StaticTarget) Locate() (entity.Target, bool) {
	return s.Target, s.Target != nil
}

type nopPresenter struct{}

func (nopPresenter) Present(Intent) {}

type nopCapture struct{}

func (nopCapture) OnCaptured(entity.EntityID) {}

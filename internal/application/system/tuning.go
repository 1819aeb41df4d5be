package system

import (
	"github.com/younwookim/hunter/internal/domain/entity"
	"github.com/younwookim/hunter/internal/infrastructure/config"
)

// Tuning holds the controller constants. Durations are seconds.
// A zero or negative duration is treated as instantaneous.
type Tuning struct {
	TriggerThreshold         float64
	SearchToRageDelay        float64
	RageForgetAfter          float64
	PlayerMoveSecondsToChase float64
	RequeryFootstepInterval  float64
	DefaultOverrideSeconds   float64
	AcquireTimeout           float64

	PursuitSpeedFloor float64
	CaptureDistance   float64
	MovementEpsilon   float64

	CombatTurnRate     float64
	CombatAcceleration float64

	MinStepInterval float64
	MinStepSpeed    float64

	WaypointArriveDistance float64
}

// DefaultTuning returns the stock adversary tuning
func DefaultTuning() Tuning {
	return Tuning{
		TriggerThreshold:         12.0,
		SearchToRageDelay:        1.0,
		RageForgetAfter:          3.0,
		PlayerMoveSecondsToChase: 2.0,
		RequeryFootstepInterval:  1.0,
		DefaultOverrideSeconds:   5.0,
		AcquireTimeout:           2.0,
		PursuitSpeedFloor:        4.0,
		CaptureDistance:          0.5,
		MovementEpsilon:          0.01,
		CombatTurnRate:           720.0,
		CombatAcceleration:       20.0,
		MinStepInterval:          0.25,
		MinStepSpeed:             0.5,
		WaypointArriveDistance:   0.2,
	}
}

// TuningFromConfig builds a Tuning from adversary.yaml. Missing or
// non-positive values keep their defaults.
func TuningFromConfig(cfg *config.AdversaryConfig) Tuning {
	t := DefaultTuning()
	if cfg == nil {
		return t
	}

	setPositive(&t.TriggerThreshold, cfg.Perception.TriggerThreshold)
	setPositive(&t.SearchToRageDelay, cfg.Timing.SearchToRageDelay)
	setPositive(&t.RageForgetAfter, cfg.Timing.RageForgetAfter)
	setPositive(&t.PlayerMoveSecondsToChase, cfg.Timing.PlayerMoveSecondsToChase)
	setPositive(&t.RequeryFootstepInterval, cfg.Timing.RequeryFootstepInterval)
	setPositive(&t.DefaultOverrideSeconds, cfg.Timing.DefaultOverrideSeconds)
	setPositive(&t.AcquireTimeout, cfg.Timing.AcquireTimeout)
	setPositive(&t.PursuitSpeedFloor, cfg.Pursuit.SpeedFloor)
	setPositive(&t.CaptureDistance, cfg.Pursuit.CaptureDistance)
	setPositive(&t.MovementEpsilon, cfg.Pursuit.MovementEpsilon)
	setPositive(&t.CombatTurnRate, cfg.Combat.TurnRate)
	setPositive(&t.CombatAcceleration, cfg.Combat.Acceleration)
	setPositive(&t.MinStepInterval, cfg.Steps.MinInterval)
	setPositive(&t.MinStepSpeed, cfg.Steps.MinSpeed)
	setPositive(&t.WaypointArriveDistance, cfg.Patrol.ArriveDistance)
	return t
}

// PatrolProfileFromConfig returns the spawn locomotion profile. Braking
// is always enabled outside Rage.
func PatrolProfileFromConfig(cfg *config.AdversaryConfig) entity.LocomotionProfile {
	p := entity.LocomotionProfile{
		MoveSpeed:      1.5,
		TurnRate:       180,
		Acceleration:   3,
		BrakingEnabled: true,
	}
	if cfg == nil {
		return p
	}
	setPositive(&p.MoveSpeed, cfg.Patrol.MoveSpeed)
	setPositive(&p.TurnRate, cfg.Patrol.TurnRate)
	setPositive(&p.Acceleration, cfg.Patrol.Acceleration)
	return p
}

// IntruderFromConfig returns intruder gait tuning, defaulting missing values
func IntruderFromConfig(cfg *config.AdversaryConfig) entity.IntruderConfig {
	ic := entity.DefaultIntruderConfig()
	if cfg == nil {
		return ic
	}

	in := cfg.Intruder
	setPositive(&ic.SneakSpeed, in.SneakSpeed)
	setPositive(&ic.WalkSpeed, in.WalkSpeed)
	setPositive(&ic.RunSpeed, in.RunSpeed)
	setPositive(&ic.SneakSignal, in.SneakSignal)
	setPositive(&ic.WalkSignal, in.WalkSignal)
	setPositive(&ic.RunSignal, in.RunSignal)
	setPositive(&ic.SignalDecay, in.SignalDecay)
	return ic
}

func setPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

package entity

// Gait is how the intruder is currently moving
type Gait int

const (
	GaitStill Gait = iota
	GaitSneak
	GaitWalk
	GaitRun
)

// String returns the string representation of the gait
func (g Gait) String() string {
	switch g {
	case GaitStill:
		return "still"
	case GaitSneak:
		return "sneak"
	case GaitWalk:
		return "walk"
	case GaitRun:
		return "run"
	default:
		return "unknown"
	}
}

// IntruderConfig holds gait speeds, emitted signal ranges and decay
type IntruderConfig struct {
	SneakSpeed float64
	WalkSpeed  float64
	RunSpeed   float64

	SneakSignal float64
	WalkSignal  float64
	RunSignal   float64

	// Signal decay in range units per second
	SignalDecay float64
}

// DefaultIntruderConfig returns the stock intruder tuning
func DefaultIntruderConfig() IntruderConfig {
	return IntruderConfig{
		SneakSpeed:  1.2,
		WalkSpeed:   2.5,
		RunSpeed:    5.0,
		SneakSignal: 0.5,
		WalkSignal:  8.0,
		RunSignal:   15.0,
		SignalDecay: 6.0,
	}
}

// Intruder is the tracked target. Its signal range jumps up immediately
// when its gait gets louder and decays over time when it gets quieter.
type Intruder struct {
	ID        EntityID
	Position  Vec3
	Crouching bool
	Gait      Gait
	Signal    float64

	config IntruderConfig
}

// NewIntruder creates an intruder standing at pos
func NewIntruder(id EntityID, pos Vec3, cfg IntruderConfig) *Intruder {
	return &Intruder{
		ID:       id,
		Position: pos,
		config:   cfg,
	}
}

// GetSignalRange returns the current emitted signal strength
func (i *Intruder) GetSignalRange() float64 {
	return i.Signal
}

// IsInLowVisibilityPosture returns true while crouching
func (i *Intruder) IsInLowVisibilityPosture() bool {
	return i.Crouching
}

// GetPosition returns the intruder's position
func (i *Intruder) GetPosition() Vec3 {
	return i.Position
}

// Config returns the gait tuning
func (i *Intruder) Config() IntruderConfig {
	return i.config
}

// Move walks the intruder along dir (X/Z components, any length) for dt
// seconds. Each axis is blocked independently by solid tiles.
func (i *Intruder) Move(dir Vec3, run bool, dt float64, stage *Stage) {
	dir.Y = 0
	length := dir.PlanarLen()

	gait := GaitStill
	speed := 0.0
	if length > 1e-9 {
		switch {
		case i.Crouching:
			gait, speed = GaitSneak, i.config.SneakSpeed
		case run:
			gait, speed = GaitRun, i.config.RunSpeed
		default:
			gait, speed = GaitWalk, i.config.WalkSpeed
		}
		step := dir.Scale(speed * dt / length)

		next := Vec3{X: i.Position.X + step.X, Y: i.Position.Y, Z: i.Position.Z}
		if stage.IsWalkable(next) {
			i.Position = next
		}
		next = Vec3{X: i.Position.X, Y: i.Position.Y, Z: i.Position.Z + step.Z}
		if stage.IsWalkable(next) {
			i.Position = next
		}
	}

	i.Gait = gait
	i.updateSignal(dt)
}

func (i *Intruder) updateSignal(dt float64) {
	var want float64
	switch i.Gait {
	case GaitSneak:
		want = i.config.SneakSignal
	case GaitWalk:
		want = i.config.WalkSignal
	case GaitRun:
		want = i.config.RunSignal
	}

	if want >= i.Signal {
		i.Signal = want
		return
	}
	i.Signal -= i.config.SignalDecay * dt
	if i.Signal < want {
		i.Signal = want
	}
}

// Teleport places the intruder and silences it (world restore, replays)
func (i *Intruder) Teleport(pos Vec3) {
	i.Position = pos
	i.Signal = 0
	i.Gait = GaitStill
	i.Crouching = false
}

package replay

import "github.com/younwookim/hunter/internal/domain/entity"

// maxSegmentSeconds bounds a leg whose destination cannot be reached
const maxSegmentSeconds = 60.0

// Segment is one leg of a scripted intruder run
type Segment struct {
	To          entity.Vec3
	Run         bool
	Crouch      bool
	Hold        float64 // seconds to stand still at To
	ForceEngage bool    // pressed on the first frame of the leg
	Restore     bool    // pressed on the first frame of the leg
}

// Script simulates an intruder walking the segments and returns the
// recording. A Restore leg starts back at start, as a world restore
// would. stage may be nil for an open field.
func Script(scene string, tps int, start entity.Vec3, cfg entity.IntruderConfig, stage *entity.Stage, segments []Segment) ReplayData {
	rec := NewRecorder(scene, tps)
	dt := rec.data.FrameDuration()
	intruder := entity.NewIntruder(0, start, cfg)

	emit := func(seg Segment, first bool) {
		rec.RecordFrame(ReplayInput{
			Position:    intruder.Position,
			Signal:      intruder.Signal,
			Crouching:   intruder.Crouching,
			ForceEngage: first && seg.ForceEngage,
			Restore:     first && seg.Restore,
		})
	}

	for _, seg := range segments {
		if seg.Restore {
			intruder.Teleport(start)
		}
		intruder.Crouching = seg.Crouch
		first := true

		for elapsed := 0.0; elapsed < maxSegmentSeconds; elapsed += dt {
			to := seg.To.Sub(intruder.Position)
			if to.PlanarLen() <= stepLength(cfg, seg, dt) {
				intruder.Position.X, intruder.Position.Z = seg.To.X, seg.To.Z
				break
			}
			intruder.Move(to, seg.Run, dt, stage)
			emit(seg, first)
			first = false
		}

		for held := 0.0; held < seg.Hold; held += dt {
			intruder.Move(entity.Vec3{}, false, dt, stage)
			emit(seg, first)
			first = false
		}

		// A leg with no frames still delivers its button presses
		if first && (seg.ForceEngage || seg.Restore) {
			emit(seg, true)
		}
	}

	return rec.GetData()
}

func stepLength(cfg entity.IntruderConfig, seg Segment, dt float64) float64 {
	switch {
	case seg.Crouch:
		return cfg.SneakSpeed * dt
	case seg.Run:
		return cfg.RunSpeed * dt
	default:
		return cfg.WalkSpeed * dt
	}
}

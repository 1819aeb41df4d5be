package ecs

import (
	"math"

	"github.com/younwookim/hunter/internal/application/replay"
	"github.com/younwookim/hunter/internal/application/system"
	"github.com/younwookim/hunter/internal/domain/entity"
)

// ApplyIntruderInput moves the intruder from live input
func (w *World) ApplyIntruderInput(in system.InputState, dt float64) {
	intruder, ok := w.GetIntruder()
	if !ok {
		return
	}
	w.input.UpdateIntruder(intruder, in, dt)
}

// ApplyReplayInput places the intruder from a recorded frame and fires the
// frame's events: restore first, then force engage.
func (w *World) ApplyReplayInput(in replay.ReplayInput) {
	if in.Restore {
		w.RestoreSpawn()
	}
	if intruder, ok := w.GetIntruder(); ok {
		in.Apply(intruder)
	}
	if in.ForceEngage {
		w.ForceEngage(false, 0)
	}
}

// ForceEngage makes every adversary pursue the intruder. seconds <= 0
// uses each adversary's default window. Returns the number engaged.
func (w *World) ForceEngage(snap bool, seconds float64) int {
	target, ok := w.Locate()
	if !ok {
		return 0
	}
	ids := w.AdversaryIDs()
	for _, id := range ids {
		w.Controller[id].ForceEngage(target, snap, seconds)
	}
	return len(ids)
}

// UpdateAdversaries runs every controller once, in id order
func (w *World) UpdateAdversaries(dt float64) {
	for _, id := range w.AdversaryIDs() {
		w.Controller[id].Update(dt)
	}
}

// StepBodies moves every adversary body and raises a footfall each time
// a body has walked StrideLength
func (w *World) StepBodies(dt float64) {
	for _, id := range w.AdversaryIDs() {
		body, ok := w.Body[id]
		if !ok {
			continue
		}
		prev := body.Position
		body.Step(dt)

		a := w.Adversary[id]
		a.Stride += entity.PlanarDistance(prev, body.Position)
		if w.StrideLength > 0 && a.Stride >= w.StrideLength {
			a.Stride = math.Mod(a.Stride, w.StrideLength)
			w.Controller[id].NotifyStepEvent()
		}
		w.Adversary[id] = a
	}
}

// Update runs one simulation tick: decisions first, then movement
func (w *World) Update(dt float64) {
	w.UpdateAdversaries(dt)
	w.StepBodies(dt)
}

// RestoreSpawn puts the intruder and every adversary back at spawn and
// resets the controllers to Patrol. The capture log is kept.
func (w *World) RestoreSpawn() {
	if intruder, ok := w.GetIntruder(); ok {
		intruder.Teleport(w.IntruderSpawn)
	}
	for _, id := range w.AdversaryIDs() {
		a := w.Adversary[id]
		if body, ok := w.Body[id]; ok {
			body.Stop()
			body.Position = a.Spawn
		}
		a.Stride = 0
		w.Adversary[id] = a
		w.Controller[id].ResetToSpawnState()
	}
}

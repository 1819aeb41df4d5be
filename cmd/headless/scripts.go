package main

import (
	"fmt"
	"sort"

	"github.com/younwookim/hunter/internal/application/replay"
	"github.com/younwookim/hunter/internal/domain/entity"
	"github.com/younwookim/hunter/internal/ecs"
)

// scriptFunc builds the legs of a built-in run from the intruder spawn
// toward the first adversary's spawn
type scriptFunc func(start, goal entity.Vec3) []replay.Segment

var scripts = map[string]scriptFunc{
	"approach": approach,
	"idle":     idle,
}

// approach walks in, sneaks close, then runs at the adversary. After a
// restore it stands at spawn and forces an engagement.
func approach(start, goal entity.Vec3) []replay.Segment {
	half := start.Add(goal.Sub(start).Scale(0.5))
	near := goal.Add(start.Sub(goal).Scale(3 / max(entity.PlanarDistance(start, goal), 3)))

	return []replay.Segment{
		{To: half},
		{To: near, Crouch: true, Hold: 2},
		{To: goal, Run: true, Hold: 5},
		{To: start, Restore: true, Hold: 1},
		{To: start, ForceEngage: true, Hold: 7},
	}
}

// idle stands still at spawn
func idle(start, _ entity.Vec3) []replay.Segment {
	return []replay.Segment{{To: start, Hold: 10}}
}

// buildScript records the named script against w
func buildScript(name string, w *ecs.World, scene string, tps int) (replay.ReplayData, error) {
	fn, ok := scripts[name]
	if !ok {
		return replay.ReplayData{}, fmt.Errorf("unknown script %q (have %v)", name, scriptNames())
	}

	start := w.IntruderSpawn
	goal := start
	if ids := w.AdversaryIDs(); len(ids) > 0 {
		goal = w.Adversary[ids[0]].Spawn
	}

	in, _ := w.GetIntruder()
	cfg := entity.DefaultIntruderConfig()
	if in != nil {
		cfg = in.Config()
	}
	return replay.Script(scene, tps, start, cfg, w.Stage, fn(start, goal)), nil
}

func scriptNames() []string {
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

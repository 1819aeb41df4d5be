// Package presentation turns controller intents into light levels and
// audio cue names. Nothing here feeds back into decisions.
package presentation

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/younwookim/hunter/internal/application/system"
	"github.com/younwookim/hunter/internal/application/task"
	"github.com/younwookim/hunter/internal/domain/entity"
	"github.com/younwookim/hunter/internal/log"
)

// Light levels, 0..1
const (
	IdleIntensity  = 0.2
	AlertIntensity = 0.6
	RageIntensity  = 1.0
)

// maxCues bounds the cue history
const maxCues = 64

// Cue is an audio cue that was requested
type Cue struct {
	Agent entity.EntityID
	Name  string
	At    float64
}

// Director implements system.Presenter
type Director struct {
	runner    *task.Runner
	intensity map[entity.EntityID]float64
	flash     map[entity.EntityID]float64
	cues      []Cue
	now       float64
	logger    *slog.Logger

	// OnCue, if set, sees every cue, including those that fall out of
	// the history
	OnCue func(Cue)
}

// NewDirector creates a director
func NewDirector() *Director {
	return &Director{
		runner:    task.NewRunner(),
		intensity: make(map[entity.EntityID]float64),
		flash:     make(map[entity.EntityID]float64),
		logger:    log.With("component", "presentation"),
	}
}

// Present implements system.Presenter
func (d *Director) Present(intent system.Intent) {
	switch in := intent.(type) {
	case system.AlertIntent:
		d.light(in.Agent, task.NewSequence(
			d.fade(in.Agent, RageIntensity, 0.1),
			d.fade(in.Agent, AlertIntensity, 0.4),
		))
		d.cue(in.Agent, "alert")
	case system.RageIntent:
		d.light(in.Agent, d.fade(in.Agent, RageIntensity, 0.2))
		if in.Forced {
			d.cue(in.Agent, "rage_forced")
		} else {
			d.cue(in.Agent, "rage")
		}
	case system.CalmIntent:
		d.light(in.Agent, task.NewSequence(
			task.NewWait(0.5),
			d.fade(in.Agent, IdleIntensity, 1.5),
		))
		d.cue(in.Agent, "calm")
	case system.ResetIntent:
		d.runner.Cancel(lightKey(in.Agent))
		d.runner.Cancel(stepKey(in.Agent))
		d.intensity[in.Agent] = IdleIntensity
		d.flash[in.Agent] = 0
		d.cue(in.Agent, "reset")
	case system.StepIntent:
		agent := in.Agent
		d.runner.Start(stepKey(agent), task.NewPulse(func(v float64) { d.flash[agent] = v }, 0, 1, 0.2))
		d.cue(agent, "step_"+strings.ToLower(in.State.String()))
	}
}

// Tick advances running effects
func (d *Director) Tick(dt float64) {
	d.now += dt
	d.runner.Tick(dt)
}

// Intensity returns the agent's light level. Unknown agents are idle.
func (d *Director) Intensity(agent entity.EntityID) float64 {
	if v, ok := d.intensity[agent]; ok {
		return v
	}
	return IdleIntensity
}

// Flash returns the footstep flash level of the agent
func (d *Director) Flash(agent entity.EntityID) float64 {
	return d.flash[agent]
}

// Busy reports whether a light effect is still running for the agent
func (d *Director) Busy(agent entity.EntityID) bool {
	return d.runner.Running(lightKey(agent))
}

// Cues returns the recent cue history, oldest first
func (d *Director) Cues() []Cue {
	out := make([]Cue, len(d.cues))
	copy(out, d.cues)
	return out
}

// Forget drops all state for a removed agent
func (d *Director) Forget(agent entity.EntityID) {
	d.runner.Cancel(lightKey(agent))
	d.runner.Cancel(stepKey(agent))
	delete(d.intensity, agent)
	delete(d.flash, agent)
}

func (d *Director) light(agent entity.EntityID, t task.Task) {
	d.runner.Start(lightKey(agent), t)
}

// fade builds a fade that starts from whatever the level is when it runs
func (d *Director) fade(agent entity.EntityID, to, duration float64) task.Task {
	return &lazyFade{d: d, agent: agent, to: to, duration: duration}
}

func (d *Director) cue(agent entity.EntityID, name string) {
	d.logger.Debug("cue", "agent", agent, "name", name)
	c := Cue{Agent: agent, Name: name, At: d.now}
	d.cues = append(d.cues, c)
	if d.OnCue != nil {
		d.OnCue(c)
	}
	if len(d.cues) > maxCues {
		d.cues = d.cues[len(d.cues)-maxCues:]
	}
}

type lazyFade struct {
	d        *Director
	agent    entity.EntityID
	to       float64
	duration float64
	fade     *task.Fade
}

func (f *lazyFade) Step(dt float64) bool {
	if f.fade == nil {
		agent := f.agent
		f.fade = task.NewFade(func(v float64) { f.d.intensity[agent] = v }, f.d.Intensity(agent), f.to, f.duration)
	}
	return f.fade.Step(dt)
}

func lightKey(agent entity.EntityID) string {
	return fmt.Sprintf("light/%d", agent)
}

func stepKey(agent entity.EntityID) string {
	return fmt.Sprintf("step/%d", agent)
}

package main

import (
	"context"
	"time"

	"github.com/younwookim/hunter/internal/application/presentation"
	"github.com/younwookim/hunter/internal/application/replay"
	"github.com/younwookim/hunter/internal/application/system"
	"github.com/younwookim/hunter/internal/ecs"
	"github.com/younwookim/hunter/internal/infrastructure/telemetry"
	"github.com/younwookim/hunter/internal/log"
)

// Sink receives telemetry events. *telemetry.Hub is a Sink.
type Sink interface {
	Publish(kind string, frame int, data any) error
}

type nopSink struct{}

func (nopSink) Publish(string, int, any) error { return nil }

// Runner drives a world from a recording, frame by frame
type Runner struct {
	World    *ecs.World
	Director *presentation.Director
	Sink     Sink

	// Frames between status events; 0 disables them
	StatusEvery int

	// Pace frames at the recording's TPS instead of as fast as possible
	Realtime bool

	frame  int
	report *Report
}

// NewRunner wires the runner into w's transition and capture callbacks
func NewRunner(w *ecs.World, director *presentation.Director) *Runner {
	r := &Runner{World: w, Director: director, Sink: nopSink{}}

	for _, id := range w.AdversaryIDs() {
		r.World.Controller[id].OnTransition = r.onTransition
	}
	w.OnCapture = r.onCapture
	director.OnCue = r.onCue
	return r
}

// Run plays data to the end or until ctx is done. The report is
// returned in both cases.
func (r *Runner) Run(ctx context.Context, data replay.ReplayData) (*Report, error) {
	r.frame = 0
	r.report = &Report{SessionID: data.SessionID, Scene: data.Scene, Cues: make(map[string]int)}

	player := replay.NewReplayer(data)
	dt := data.FrameDuration()

	var tick <-chan time.Time
	if r.Realtime {
		ticker := time.NewTicker(time.Duration(dt * float64(time.Second)))
		defer ticker.Stop()
		tick = ticker.C
	}

	var err error
	for {
		if err = ctx.Err(); err != nil {
			break
		}
		in, ok := player.GetInput()
		if !ok {
			break
		}

		r.World.ApplyReplayInput(in)
		r.World.Update(dt)
		r.Director.Tick(dt)
		r.frame++

		if r.StatusEvery > 0 && r.frame%r.StatusEvery == 0 {
			r.publish(telemetry.EventStatus, r.World.Statuses())
		}

		if tick != nil {
			select {
			case <-tick:
			case <-ctx.Done():
			}
		}
	}

	r.report.Frames = r.frame
	r.report.Seconds = float64(r.frame) * dt
	r.report.Final = r.finalStates()
	return r.report, err
}

func (r *Runner) onTransition(tr system.Transition) {
	r.report.Transitions = append(r.report.Transitions, TransitionEntry{
		Frame: r.frame,
		Agent: tr.Agent,
		Name:  r.World.Adversary[tr.Agent].Name,
		From:  tr.From.String(),
		To:    tr.To.String(),
		At:    tr.At,
	})
	r.publish(telemetry.EventTransition, telemetry.NewTransition(tr))
}

func (r *Runner) onCapture(c ecs.Capture) {
	r.report.Captures = append(r.report.Captures, c)
	r.publish(telemetry.EventCapture, c)
}

func (r *Runner) onCue(c presentation.Cue) {
	if r.report != nil {
		r.report.Cues[c.Name]++
	}
}

func (r *Runner) publish(kind string, data any) {
	if err := r.Sink.Publish(kind, r.frame, data); err != nil {
		log.Warn("telemetry publish failed", "kind", kind, "error", err)
	}
}

func (r *Runner) finalStates() []FinalEntry {
	statuses := r.World.Statuses()
	out := make([]FinalEntry, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, FinalEntry{
			Agent:  st.Agent,
			Name:   r.World.Adversary[st.Agent].Name,
			Status: st,
		})
	}
	return out
}


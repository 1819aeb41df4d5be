package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/younwookim/hunter/internal/application/system"
	"github.com/younwookim/hunter/internal/domain/entity"
	"github.com/younwookim/hunter/internal/ecs"
)

// Report summarizes a headless run
type Report struct {
	SessionID   string            `json:"sessionId"`
	Scene       string            `json:"scene"`
	Frames      int               `json:"frames"`
	Seconds     float64           `json:"seconds"`
	Transitions []TransitionEntry `json:"transitions"`
	Captures    []ecs.Capture     `json:"captures"`
	Final       []FinalEntry      `json:"final"`
	Cues        map[string]int    `json:"cues"`
}

// TransitionEntry is one awareness change
type TransitionEntry struct {
	Frame int             `json:"frame"`
	Agent entity.EntityID `json:"agent"`
	Name  string          `json:"name"`
	From  string          `json:"from"`
	To    string          `json:"to"`
	At    float64         `json:"at"`
}

// FinalEntry is an adversary's state when the run ended
type FinalEntry struct {
	Agent  entity.EntityID `json:"agent"`
	Name   string          `json:"name"`
	Status system.Status   `json:"status"`
}

// WriteJSON writes the report as indented JSON
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteText writes a human-readable report
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "session %s\tscene %s\tframes %d (%.2fs)\n", r.SessionID, r.Scene, r.Frames, r.Seconds)

	fmt.Fprintf(tw, "\ntransitions (%d)\n", len(r.Transitions))
	for _, t := range r.Transitions {
		fmt.Fprintf(tw, "  %7.2fs\t#%d %s\t%s -> %s\n", t.At, t.Agent, t.Name, t.From, t.To)
	}

	fmt.Fprintf(tw, "\ncaptures (%d)\n", len(r.Captures))
	for _, c := range r.Captures {
		fmt.Fprintf(tw, "  %7.2fs\t#%d %s\tat (%.2f, %.2f)\n", c.At, c.Agent, c.Name, c.Position.X, c.Position.Z)
	}

	fmt.Fprintf(tw, "\nfinal\n")
	for _, f := range r.Final {
		fmt.Fprintf(tw, "  #%d %s\t%s\tpos (%.2f, %.2f)\tspeed %.2f\n",
			f.Agent, f.Name, f.Status.State, f.Status.X, f.Status.Z, f.Status.Speed)
	}

	if len(r.Cues) > 0 {
		names := make([]string, 0, len(r.Cues))
		for name := range r.Cues {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintf(tw, "\ncues\n")
		for _, name := range names {
			fmt.Fprintf(tw, "  %s\t%d\n", name, r.Cues[name])
		}
	}
	return tw.Flush()
}

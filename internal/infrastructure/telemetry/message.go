// Package telemetry streams controller snapshots and awareness changes
// to websocket debug clients.
package telemetry

import (
	"github.com/younwookim/hunter/internal/application/system"
	"github.com/younwookim/hunter/internal/domain/entity"
)

// Event types
const (
	EventStatus     = "status"
	EventTransition = "transition"
	EventCapture    = "capture"
)

// Event is the envelope of every message sent to clients
type Event struct {
	Type  string `json:"type"`
	Frame int    `json:"frame"`
	Data  any    `json:"data"`
}

// Transition is the wire form of system.Transition
type Transition struct {
	Agent entity.EntityID `json:"agent"`
	From  string          `json:"from"`
	To    string          `json:"to"`
	At    float64         `json:"at"`
}

// NewTransition converts a controller transition
func NewTransition(tr system.Transition) Transition {
	return Transition{
		Agent: tr.Agent,
		From:  tr.From.String(),
		To:    tr.To.String(),
		At:    tr.At,
	}
}

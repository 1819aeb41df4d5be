package replay

// FrameInput records the intruder state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	X  float64 `json:"x"`            // Intruder X
	Z  float64 `json:"z"`            // Intruder Z
	S  float64 `json:"s"`            // Signal range
	C  bool    `json:"c,omitempty"`  // Crouching
	FE bool    `json:"fe,omitempty"` // ForceEngage pressed
	RS bool    `json:"rs,omitempty"` // Restore pressed
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	SessionID string       `json:"sessionId"`
	Scene     string       `json:"scene"`
	TPS       int          `json:"tps"` // frames per second of the recording
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FrameDuration returns seconds per recorded frame
func (d ReplayData) FrameDuration() float64 {
	if d.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(d.TPS)
}

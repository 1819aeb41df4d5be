package state

// SessionState is the state of a stealth session
type SessionState int

const (
	SessionPlaying SessionState = iota
	SessionPaused
	SessionCaptured
)

// String returns the string representation of the session state
func (s SessionState) String() string {
	switch s {
	case SessionPlaying:
		return "Playing"
	case SessionPaused:
		return "Paused"
	case SessionCaptured:
		return "Captured"
	default:
		return "Unknown"
	}
}

// Running reports whether the simulation advances in this state
func (s SessionState) Running() bool {
	return s == SessionPlaying
}

// TogglePause flips between Playing and Paused. Captured stays captured.
func (s SessionState) TogglePause() SessionState {
	switch s {
	case SessionPlaying:
		return SessionPaused
	case SessionPaused:
		return SessionPlaying
	default:
		return s
	}
}

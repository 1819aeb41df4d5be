package entity

// AwarenessState is the adversary's alert level
type AwarenessState int

const (
	AwarenessPatrol AwarenessState = iota // unaware, walking the route
	AwarenessSearch                       // heard something, standing still
	AwarenessRage                         // hunting
)

// String returns the string representation of the awareness state
func (a AwarenessState) String() string {
	switch a {
	case AwarenessPatrol:
		return "Patrol"
	case AwarenessSearch:
		return "Search"
	case AwarenessRage:
		return "Rage"
	default:
		return "Unknown"
	}
}

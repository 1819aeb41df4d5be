package entity

// LocomotionProfile is the tuning handed to the locomotion executor.
// Speeds are units/second, TurnRate is degrees/second.
type LocomotionProfile struct {
	MoveSpeed      float64
	TurnRate       float64
	Acceleration   float64
	BrakingEnabled bool
}

// Baseline holds at most one saved profile. A save must be paired with
// exactly one restore before the next save is accepted.
type Baseline struct {
	saved   LocomotionProfile
	pending bool
}

// Save snapshots p. Returns false without overwriting if a snapshot is
// already pending.
func (b *Baseline) Save(p LocomotionProfile) bool {
	if b.pending {
		return false
	}
	b.saved = p
	b.pending = true
	return true
}

// Restore hands back the pending snapshot and clears it.
// Returns false if nothing was saved.
func (b *Baseline) Restore() (LocomotionProfile, bool) {
	if !b.pending {
		return LocomotionProfile{}, false
	}
	p := b.saved
	b.saved = LocomotionProfile{}
	b.pending = false
	return p, true
}

// Pending returns true while a snapshot awaits restore
func (b *Baseline) Pending() bool {
	return b.pending
}

// Saved returns the pending snapshot (zero value if none)
func (b *Baseline) Saved() LocomotionProfile {
	return b.saved
}

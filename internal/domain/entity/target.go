package entity

// Target is the read-only view of a tracked entity, polled every tick
type Target interface {
	GetSignalRange() float64
	IsInLowVisibilityPosture() bool
	GetPosition() Vec3
}

// OverrideWindow forces pursuit of a specific target until ExpiresAt.
// It only ever expires on its own.
type OverrideWindow struct {
	ExpiresAt float64
	Target    Target
}

// Open starts or extends the window. An open window is never shortened.
func (o *OverrideWindow) Open(target Target, now, seconds float64) {
	expires := now + seconds
	if o.Target != nil && o.ExpiresAt > expires {
		expires = o.ExpiresAt
	}
	o.Target = target
	o.ExpiresAt = expires
}

// Active returns true while the window is open at time now
func (o *OverrideWindow) Active(now float64) bool {
	return o.Target != nil && now < o.ExpiresAt
}

// Remaining returns seconds left in the window, or 0
func (o *OverrideWindow) Remaining(now float64) float64 {
	if !o.Active(now) {
		return 0
	}
	return o.ExpiresAt - now
}

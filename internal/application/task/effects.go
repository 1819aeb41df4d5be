package task

// Setter receives an effect's current value
type Setter func(v float64)

// Pulse ramps a value from base to peak and back over Duration
type Pulse struct {
	Set      Setter
	Base     float64
	Peak     float64
	Duration float64

	elapsed float64
}

// NewPulse creates a pulse
func NewPulse(set Setter, base, peak, duration float64) *Pulse {
	return &Pulse{Set: set, Base: base, Peak: peak, Duration: duration}
}

// Step implements Task
func (p *Pulse) Step(dt float64) bool {
	p.elapsed += dt
	if p.Duration <= 0 || p.elapsed >= p.Duration {
		p.set(p.Base)
		return true
	}

	half := p.Duration / 2
	t := p.elapsed / half
	if t > 1 {
		t = 2 - t
	}
	p.set(p.Base + (p.Peak-p.Base)*t)
	return false
}

func (p *Pulse) set(v float64) {
	if p.Set != nil {
		p.Set(v)
	}
}

// Fade moves a value linearly from From to To over Duration
type Fade struct {
	Set      Setter
	From     float64
	To       float64
	Duration float64

	elapsed float64
}

// NewFade creates a fade
func NewFade(set Setter, from, to, duration float64) *Fade {
	return &Fade{Set: set, From: from, To: to, Duration: duration}
}

// Step implements Task
func (f *Fade) Step(dt float64) bool {
	f.elapsed += dt
	if f.Duration <= 0 || f.elapsed >= f.Duration {
		f.set(f.To)
		return true
	}
	f.set(f.From + (f.To-f.From)*(f.elapsed/f.Duration))
	return false
}

func (f *Fade) set(v float64) {
	if f.Set != nil {
		f.Set(v)
	}
}

// Wait does nothing for Duration seconds
type Wait struct {
	Duration float64

	elapsed float64
}

// NewWait creates a wait
func NewWait(duration float64) *Wait {
	return &Wait{Duration: duration}
}

// Step implements Task
func (w *Wait) Step(dt float64) bool {
	w.elapsed += dt
	return w.elapsed >= w.Duration
}

// Func runs Fn once on its first step
type Func struct {
	Fn func()
}

// Step implements Task
func (f Func) Step(float64) bool {
	if f.Fn != nil {
		f.Fn()
	}
	return true
}

// Sequence runs tasks one after another. A finished task hands over at
// the next frame boundary.
type Sequence struct {
	Tasks []Task

	index int
}

// NewSequence creates a sequence
func NewSequence(tasks ...Task) *Sequence {
	return &Sequence{Tasks: tasks}
}

// Step implements Task
func (s *Sequence) Step(dt float64) bool {
	for s.index < len(s.Tasks) && s.Tasks[s.index] == nil {
		s.index++
	}
	if s.index >= len(s.Tasks) {
		return true
	}
	if s.Tasks[s.index].Step(dt) {
		s.index++
	}
	return s.index >= len(s.Tasks)
}

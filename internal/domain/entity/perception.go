package entity

// NoiseFloor is the minimum signal range that can register as a noise event
const NoiseFloor = 1.0

// PerceptionSample is what the adversary perceives of its target this tick
type PerceptionSample struct {
	TargetSignalRange   float64
	PreviousSignalRange float64
	DistanceToTarget    float64
	TargetPosition      Vec3

	// NoiseEventDetected is a strictly rising edge at or above NoiseFloor
	NoiseEventDetected bool
}

// PerceptionSampler derives samples and remembers the previous signal
// range for edge detection.
type PerceptionSampler struct {
	previous float64
}

// Sample computes this tick's perception of a target emitting signal at
// targetPos, observed from agentPos.
func (s *PerceptionSampler) Sample(signal float64, agentPos, targetPos Vec3) PerceptionSample {
	if signal < 0 {
		signal = 0
	}

	sample := PerceptionSample{
		TargetSignalRange:   signal,
		PreviousSignalRange: s.previous,
		DistanceToTarget:    Distance(agentPos, targetPos),
		TargetPosition:      targetPos,
		NoiseEventDetected:  signal > s.previous && signal >= NoiseFloor,
	}
	s.previous = signal
	return sample
}

// Previous returns the last sampled signal range
func (s *PerceptionSampler) Previous() float64 {
	return s.previous
}

// Reset forgets the previous signal
func (s *PerceptionSampler) Reset() {
	s.previous = 0
}

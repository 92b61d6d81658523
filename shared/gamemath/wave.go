package gamemath

import "math"

// AdvancePhase moves a cosmetic animation phase forward by one step.
// The phase grows without bound.
func AdvancePhase(phase, step float64) float64 {
	return phase + step
}

// WaveOffset returns the displacement of a sine wave at the given phase.
func WaveOffset(amplitude, phase float64) float64 {
	return amplitude * math.Sin(phase)
}

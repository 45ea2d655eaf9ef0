package qflip

import (
	"fmt"
	"iter"
	"math"
)

const DefaultSweepSteps = 100

// SweepPoint pairs a rotation angle with the probability of measuring |0⟩.
type SweepPoint struct {
	Theta float64
	P0    float64
}

/*
SweepTheta returns steps+1 points evenly spaced over [0, π], each carrying
the |0⟩ probability of the standard simulation at that angle. The sequence
is computed lazily and can be ranged over any number of times.
*/
func SweepTheta(steps int) (iter.Seq[SweepPoint], error) {
	if steps <= 0 {
		return nil, fmt.Errorf("sweep needs a positive step count, got %d: %w", steps, ErrInvalidArgument)
	}

	return func(yield func(SweepPoint) bool) {
		for i := 0; i <= steps; i++ {
			theta := float64(i) / float64(steps) * math.Pi

			if !yield(SweepPoint{
				Theta: theta,
				P0:    RunStandardSimulation(theta).Probabilities.P0,
			}) {
				return
			}
		}
	}, nil
}

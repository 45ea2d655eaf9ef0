package qflip

import (
	"fmt"
	"math/rand/v2"
)

// Probabilities holds the chance of measuring |0⟩ and |1⟩.
type Probabilities struct {
	P0 float64
	P1 float64
}

/*
MeasurementProbabilities reads the Born probabilities |α|² and |β|² off
the state. The state is not renormalized, so a non-normalized input
yields a pair that does not sum to one.
*/
func MeasurementProbabilities(state Qubit) Probabilities {
	return Probabilities{
		P0: MagnitudeSquared(state.Alpha),
		P1: MagnitudeSquared(state.Beta),
	}
}

// Counts tallies the outcomes of a batch of shots.
type Counts struct {
	Zero int
	One  int
}

func (c Counts) Total() int {
	return c.Zero + c.One
}

// Frequency returns the observed fraction of zeros, or 0 for an empty batch.
func (c Counts) Frequency() float64 {
	if c.Total() == 0 {
		return 0
	}

	return float64(c.Zero) / float64(c.Total())
}

/*
SampleMeasurements measures the state shots times. Each shot draws a
uniform value in [0, 1) and records a zero when it falls below p0. A nil
src uses a freshly seeded generator.
*/
func SampleMeasurements(state Qubit, shots int, src rand.Source) (Counts, error) {
	if shots < 0 {
		return Counts{}, fmt.Errorf("shots must not be negative, got %d: %w", shots, ErrInvalidArgument)
	}

	return sample(state, shots, src), nil
}

func sample(state Qubit, shots int, src rand.Source) Counts {
	p0 := MeasurementProbabilities(state).P0
	rng := rand.New(sourceOrDefault(src))

	zeros := 0
	for range shots {
		if rng.Float64() < p0 {
			zeros++
		}
	}

	return Counts{Zero: zeros, One: shots - zeros}
}

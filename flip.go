package qflip

import "math/rand/v2"

type FlipResult int

const (
	Heads FlipResult = iota
	Tails
)

func (f FlipResult) String() string {
	if f == Heads {
		return "Heads"
	}

	return "Tails"
}

// Flip tosses the quantum coin: Ry(theta)|0⟩ measured once, |0⟩ reads as Heads.
func Flip(theta float64, src rand.Source) FlipResult {
	if sample(RunCoinSimulation(theta).State, 1, src).Zero == 1 {
		return Heads
	}

	return Tails
}

package qflip

import (
	"fmt"
	"math/rand/v2"
)

// Simulation is a final state together with its measurement probabilities.
type Simulation struct {
	State         Qubit
	Probabilities Probabilities
}

func simulate(state Qubit) Simulation {
	return Simulation{
		State:         state,
		Probabilities: MeasurementProbabilities(state),
	}
}

// RunStandardSimulation prepares a superposition with H, then applies Ry(theta).
func RunStandardSimulation(theta float64) Simulation {
	return simulate(ZeroState().Apply(HadamardGate(), RotationGate(theta)))
}

// RunCoinSimulation applies Ry(theta) directly to |0⟩.
func RunCoinSimulation(theta float64) Simulation {
	return simulate(ZeroState().Apply(RotationGate(theta)))
}

/*
Snapshot is everything the state explorer draws for one setting of the
controls: the standard simulation, its Bloch vector, and a sampled
histogram.
*/
type Snapshot struct {
	Simulation
	Theta  float64
	Shots  int
	Bloch  BlochVector
	Counts Counts
}

// Explore builds a Snapshot using the default shot range.
func Explore(theta float64, shots int, src rand.Source) (Snapshot, error) {
	return ExploreWithConfig(NewConfig(), theta, shots, src)
}

// ExploreWithConfig builds a Snapshot, rejecting shots outside cfg's range.
func ExploreWithConfig(cfg *Config, theta float64, shots int, src rand.Source) (Snapshot, error) {
	if shots < cfg.MinShots || shots > cfg.MaxShots {
		return Snapshot{}, fmt.Errorf(
			"shots %d outside [%d, %d]: %w", shots, cfg.MinShots, cfg.MaxShots, ErrInvalidArgument,
		)
	}

	sim := RunStandardSimulation(theta)

	counts, err := SampleMeasurements(sim.State, shots, src)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Simulation: sim,
		Theta:      theta,
		Shots:      shots,
		Bloch:      Bloch(sim.State),
		Counts:     counts,
	}, nil
}

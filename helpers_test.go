package qflip

import "math"

/*
scriptedSource replays fixed uniform draws through math/rand/v2, which
builds Float64 from the low 53 bits of Uint64. Dyadic draws such as 0.25
come back exactly.
*/
type scriptedSource struct {
	draws []float64
	next  int
}

func newScriptedSource(draws ...float64) *scriptedSource {
	return &scriptedSource{draws: draws}
}

func (s *scriptedSource) Uint64() uint64 {
	draw := s.draws[s.next%len(s.draws)]
	s.next++

	return uint64(draw * (1 << 53))
}

func inUnion(x float64, ranges ...[2]float64) bool {
	for _, r := range ranges {
		if x >= r[0] && x < r[1] {
			return true
		}
	}

	return false
}

func angles(n int) []float64 {
	out := make([]float64, n+1)
	for i := range out {
		out[i] = float64(i) / float64(n) * math.Pi
	}

	return out
}

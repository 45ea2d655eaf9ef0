package qflip

import "math/rand/v2"

// sourceOrDefault returns src, or a freshly seeded PCG when src is nil.
func sourceOrDefault(src rand.Source) rand.Source {
	if src != nil {
		return src
	}

	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}

// uniform draws one value in [0, 1) from src.
func uniform(src rand.Source) float64 {
	return rand.New(sourceOrDefault(src)).Float64()
}

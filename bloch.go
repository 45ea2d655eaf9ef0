package qflip

import "gonum.org/v1/gonum/floats"

// BlochVector places a pure state on the unit sphere.
type BlochVector struct {
	X float64
	Y float64
	Z float64
}

/*
Bloch projects (α, β) onto the sphere:

	x = 2·Re(α*·β)
	y = 2·Im(α*·β)
	z = |α|² - |β|²
*/
func Bloch(state Qubit) BlochVector {
	coherence := Multiply(Conjugate(state.Alpha), state.Beta)

	return BlochVector{
		X: 2 * real(coherence),
		Y: 2 * imag(coherence),
		Z: MagnitudeSquared(state.Alpha) - MagnitudeSquared(state.Beta),
	}
}

// Norm is the Euclidean length, 1 for pure states up to rounding.
func (v BlochVector) Norm() float64 {
	return floats.Norm(v.Slice(), 2)
}

func (v BlochVector) Slice() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

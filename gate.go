package qflip

import "math"

// Gate is a 2x2 unitary operator, indexed [row][column].
type Gate [2][2]complex128

/*
HadamardGate returns

	H = 1/√2 * [1  1]
	           [1 -1]
*/
func HadamardGate() Gate {
	h := complex(1/math.Sqrt2, 0)

	return Gate{
		{h, h},
		{h, -h},
	}
}

/*
RotationGate returns the Y-axis rotation by theta radians:

	Ry(θ) = [cos(θ/2) -sin(θ/2)]
	        [sin(θ/2)  cos(θ/2)]

Any real theta is accepted.
*/
func RotationGate(theta float64) Gate {
	sin, cos := math.Sincos(theta / 2)

	return Gate{
		{complex(cos, 0), complex(-sin, 0)},
		{complex(sin, 0), complex(cos, 0)},
	}
}

// ApplyGate multiplies the gate into the state vector and returns the result.
func ApplyGate(gate Gate, state Qubit) Qubit {
	return Qubit{
		Alpha: Add(Multiply(gate[0][0], state.Alpha), Multiply(gate[0][1], state.Beta)),
		Beta:  Add(Multiply(gate[1][0], state.Alpha), Multiply(gate[1][1], state.Beta)),
	}
}

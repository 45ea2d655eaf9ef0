package qflip

/*
Qubit is the state of a single two-level system: the amplitudes of the
|0⟩ and |1⟩ basis outcomes. Qubit is a value; applying a gate returns a
new Qubit and never touches the receiver.
*/
type Qubit struct {
	Alpha complex128 // |0⟩ amplitude
	Beta  complex128 // |1⟩ amplitude
}

func NewQubit(alpha, beta complex128) Qubit {
	return Qubit{Alpha: alpha, Beta: beta}
}

// ZeroState returns |0⟩, the state every simulation starts from.
func ZeroState() Qubit {
	return Qubit{Alpha: 1, Beta: 0}
}

// Apply runs the gates over q in order.
func (q Qubit) Apply(gates ...Gate) Qubit {
	for _, gate := range gates {
		q = ApplyGate(gate, q)
	}

	return q
}

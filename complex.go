package qflip

// Add returns the component-wise sum of a and b.
func Add(a, b complex128) complex128 {
	return complex(real(a)+real(b), imag(a)+imag(b))
}

// Multiply returns (ac - bd, ad + bc) for a = (a, b) and b = (c, d).
func Multiply(a, b complex128) complex128 {
	return complex(
		real(a)*real(b)-imag(a)*imag(b),
		real(a)*imag(b)+imag(a)*real(b),
	)
}

// Conjugate negates the imaginary component.
func Conjugate(a complex128) complex128 {
	return complex(real(a), -imag(a))
}

// MagnitudeSquared returns re² + im².
func MagnitudeSquared(a complex128) float64 {
	return real(a)*real(a) + imag(a)*imag(a)
}

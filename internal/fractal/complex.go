package fractal

import "math"

// Complex is a complex number with float64 components.
//
// It is a small value type rather than complex128 so that parameter constants
// can travel through JSON tool arguments as {re, im} pairs, and so the escape
// test can use ModulusSquared explicitly instead of taking a square root on the
// hot path. All operations return new values; a Complex is never mutated.
type Complex struct {
	Re float64 `json:"re"` // Real component
	Im float64 `json:"im"` // Imaginary component
}

// Add returns the component-wise sum a + b.
func (a Complex) Add(b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Mul returns the complex product a * b, (ac−bd, ad+bc).
func (a Complex) Mul(b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// ModulusSquared returns |a|², avoiding the square root needed for the
// modulus itself. The escape test compares this against the squared radius.
func (a Complex) ModulusSquared() float64 {
	return a.Re*a.Re + a.Im*a.Im
}

// Modulus returns |a|.
func (a Complex) Modulus() float64 {
	return math.Sqrt(a.ModulusSquared())
}

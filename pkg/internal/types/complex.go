package types

import "math"

// TwoPi is one full revolution in radians.
const TwoPi = 2 * math.Pi

// Complex is a two component value (Re, Im). Sample points are read as
// complex numbers with x on the real axis and y on the imaginary axis.
type Complex struct {
	Re float64
	Im float64
}

// Cmplx returns the complex value re + im·i.
func Cmplx(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Polar returns the complex value with magnitude r and angle theta.
func Polar(r, theta float64) Complex {
	s, c := math.Sincos(theta)
	return Complex{Re: r * c, Im: r * s}
}

// FromPoint reads pt as x + y·i.
func FromPoint(pt Point) Complex {
	return Complex{Re: pt.X, Im: pt.Y}
}

// Point returns c as the 2D point (Re, Im).
func (c Complex) Point() Point {
	return Point{X: c.Re, Y: c.Im}
}

func (c Complex) Add(o Complex) Complex {
	return Complex{Re: c.Re + o.Re, Im: c.Im + o.Im}
}

func (c Complex) Sub(o Complex) Complex {
	return Complex{Re: c.Re - o.Re, Im: c.Im - o.Im}
}

// Mul computes the complex product c·o.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

// Scale multiplies both components by s.
func (c Complex) Scale(s float64) Complex {
	return Complex{Re: c.Re * s, Im: c.Im * s}
}

// Div divides both components by s. Dividing by zero follows IEEE 754.
func (c Complex) Div(s float64) Complex {
	return Complex{Re: c.Re / s, Im: c.Im / s}
}

// Conj returns the complex conjugate.
func (c Complex) Conj() Complex {
	return Complex{Re: c.Re, Im: -c.Im}
}

// Abs returns the magnitude sqrt(re²+im²).
func (c Complex) Abs() float64 {
	return math.Hypot(c.Re, c.Im)
}

// Arg returns the angle of c in (-π, π]. Atan2 gives -π for a negative real
// part with a -0 imaginary part; that is folded onto π.
func (c Complex) Arg() float64 {
	a := math.Atan2(c.Im, c.Re)
	if a == -math.Pi {
		return math.Pi
	}
	return a
}

// IsNaN reports whether either component is NaN.
func (c Complex) IsNaN() bool {
	return math.IsNaN(c.Re) || math.IsNaN(c.Im)
}

// Package builder is the public entry point: it re-exports the epicycle
// components and their options so hosts never import internal packages.
package builder

import (
	"github.com/joeydtaylor/epicycle/pkg/internal/types"
)

type ComponentMetadata = types.ComponentMetadata

type Complex = types.Complex

type Point = types.Point

type RotatingCircle = types.RotatingCircle

type Spectrum = types.Spectrum

type Frame = types.Frame

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return types.Pt(x, y)
}

// Cmplx returns the complex value re + im·i.
func Cmplx(re, im float64) Complex {
	return types.Cmplx(re, im)
}

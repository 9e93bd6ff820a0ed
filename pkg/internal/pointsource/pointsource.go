// Package pointsource generates closed sample paths. Each generator returns one
// period of the path in traversal order, with the closing edge implied.
package pointsource

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
)

// ErrUnknownShape is returned by ByName for names it does not know.
var ErrUnknownShape = errors.New("pointsource: unknown shape")

// Square walks the square [0,side]² counter-clockwise from the origin with
// perSide points per edge, each edge starting at its corner.
func Square(side float64, perSide int) []types.Point {
	corners := []types.Point{
		types.Pt(0, 0),
		types.Pt(side, 0),
		types.Pt(side, side),
		types.Pt(0, side),
	}
	return walk(corners, perSide)
}

// Circle samples n evenly spaced points on a circle around the origin,
// starting on the positive x axis.
func Circle(radius float64, n int) []types.Point {
	if n <= 0 {
		return []types.Point{}
	}
	points := make([]types.Point, n)
	step := types.TwoPi / float64(n)
	for i := range points {
		s, c := math.Sincos(step * float64(i))
		points[i] = types.Pt(radius*c, radius*s)
	}
	return points
}

// Polygon walks a regular polygon inscribed in a circle of the given radius.
// sides is raised to 3.
func Polygon(radius float64, sides, perSide int) []types.Point {
	sides = max(sides, 3)
	return walk(Circle(radius, sides), perSide)
}

// Lissajous samples x = ax·sin(a·θ + π/2), y = ay·sin(b·θ) over θ ∈ [0, 2π).
func Lissajous(a, b int, ax, ay float64, n int) []types.Point {
	if n <= 0 {
		return []types.Point{}
	}
	points := make([]types.Point, n)
	for i := range points {
		theta := types.TwoPi * float64(i) / float64(n)
		points[i] = types.Pt(
			ax*math.Sin(float64(a)*theta+math.Pi/2),
			ay*math.Sin(float64(b)*theta),
		)
	}
	return points
}

// Heart samples the classic heart curve scaled to roughly [-scale, scale].
func Heart(scale float64, n int) []types.Point {
	if n <= 0 {
		return []types.Point{}
	}
	points := make([]types.Point, n)
	k := scale / 16
	for i := range points {
		theta := types.TwoPi * float64(i) / float64(n)
		s := math.Sin(theta)
		x := 16 * s * s * s
		y := 13*math.Cos(theta) - 5*math.Cos(2*theta) - 2*math.Cos(3*theta) - math.Cos(4*theta)
		points[i] = types.Pt(k*x, k*y)
	}
	return points
}

// walk visits each vertex then perSide-1 evenly spaced points toward the next.
func walk(vertices []types.Point, perSide int) []types.Point {
	perSide = max(perSide, 1)
	points := make([]types.Point, 0, len(vertices)*perSide)
	for i, from := range vertices {
		to := vertices[(i+1)%len(vertices)]
		for j := 0; j < perSide; j++ {
			f := float64(j) / float64(perSide)
			points = append(points, types.Pt(from.X+f*(to.X-from.X), from.Y+f*(to.Y-from.Y)))
		}
	}
	return points
}

var shapes = map[string]func(n int) []types.Point{
	"square":    func(n int) []types.Point { return Square(1, perSide(n, 4)) },
	"circle":    func(n int) []types.Point { return Circle(1, n) },
	"triangle":  func(n int) []types.Point { return Polygon(1, 3, perSide(n, 3)) },
	"pentagon":  func(n int) []types.Point { return Polygon(1, 5, perSide(n, 5)) },
	"hexagon":   func(n int) []types.Point { return Polygon(1, 6, perSide(n, 6)) },
	"lissajous": func(n int) []types.Point { return Lissajous(3, 2, 1, 1, n) },
	"heart":     func(n int) []types.Point { return Heart(1, n) },
}

func perSide(n, sides int) int {
	return max((n+sides-1)/sides, 1)
}

// ByName builds the named shape with about n points. Polygonal shapes round n
// up to a whole number of points per side.
func ByName(name string, n int) ([]types.Point, error) {
	gen, ok := shapes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownShape, name, strings.Join(Names(), ", "))
	}
	return gen(n), nil
}

// Names lists the shapes ByName accepts.
func Names() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

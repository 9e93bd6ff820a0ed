package extractor_test

import (
	"math"
	"testing"

	"github.com/joeydtaylor/epicycle/pkg/internal/extractor"
	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func TestExtractPreservesOrderAndLength(t *testing.T) {
	coeffs := []types.Complex{
		types.Cmplx(0.5, 0.5),
		types.Cmplx(-0.5, -0.5),
		types.Cmplx(0, 0),
		types.Cmplx(0, 2),
	}

	circles := extractor.Extract(coeffs)
	if len(circles) != len(coeffs) {
		t.Fatalf("expected %d circles, got %d", len(coeffs), len(circles))
	}
	for k, c := range circles {
		if c.Frequency != k {
			t.Fatalf("circle %d: expected frequency %d, got %d", k, k, c.Frequency)
		}
		if !scalar.EqualWithinAbs(c.Amplitude, coeffs[k].Abs(), tol) {
			t.Fatalf("circle %d: amplitude %v, want %v", k, c.Amplitude, coeffs[k].Abs())
		}
	}

	if !scalar.EqualWithinAbs(circles[0].Phase, math.Pi/4, tol) {
		t.Fatalf("circle 0 phase: got %v, want π/4", circles[0].Phase)
	}
	if !scalar.EqualWithinAbs(circles[1].Phase, -3*math.Pi/4, tol) {
		t.Fatalf("circle 1 phase: got %v, want -3π/4", circles[1].Phase)
	}
	if circles[2].Amplitude != 0 || circles[2].Phase != 0 {
		t.Fatalf("zero coefficient should give a zero circle, got %+v", circles[2])
	}
	if !scalar.EqualWithinAbs(circles[3].Phase, math.Pi/2, tol) {
		t.Fatalf("circle 3 phase: got %v, want π/2", circles[3].Phase)
	}
}

func TestExtractEmpty(t *testing.T) {
	circles := extractor.Extract(nil)
	if circles == nil || len(circles) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", circles)
	}
}

func TestExtractPhaseRange(t *testing.T) {
	circles := extractor.Extract([]types.Complex{
		types.Cmplx(-1, math.Copysign(0, -1)),
		types.Cmplx(-1, 0),
		types.Cmplx(0, -1),
	})
	for i, c := range circles {
		if c.Phase <= -math.Pi || c.Phase > math.Pi {
			t.Fatalf("circle %d: phase %v outside (-π, π]", i, c.Phase)
		}
	}
	if circles[0].Phase != math.Pi {
		t.Fatalf("negative real axis should map to π, got %v", circles[0].Phase)
	}
}

func TestSortByAmplitude(t *testing.T) {
	circles := []types.RotatingCircle{
		{Amplitude: 1, Frequency: 0},
		{Amplitude: 3, Frequency: 1},
		{Amplitude: 2, Frequency: 2},
		{Amplitude: 3, Frequency: 3},
		{Amplitude: 2, Frequency: 4},
	}
	before := append([]types.RotatingCircle(nil), circles...)

	sorted := extractor.SortByAmplitude(circles)

	want := []int{1, 3, 2, 4, 0}
	for i, f := range want {
		if sorted[i].Frequency != f {
			t.Fatalf("position %d: expected frequency %d, got %d", i, f, sorted[i].Frequency)
		}
	}
	for i := range circles {
		if circles[i] != before[i] {
			t.Fatalf("input mutated at %d: %+v", i, circles[i])
		}
	}
}

func TestAnalyze(t *testing.T) {
	circles := []types.RotatingCircle{
		{Amplitude: 2, Phase: 0, Frequency: 0},
		{Amplitude: 3, Phase: 0, Frequency: 1},
		{Amplitude: 0.1, Phase: 0, Frequency: 2},
		{Amplitude: 1, Phase: math.Pi, Frequency: 3},
	}

	spec := extractor.Analyze(circles)

	if spec.Circles != 4 {
		t.Fatalf("expected 4 circles, got %d", spec.Circles)
	}
	if !scalar.EqualWithinAbs(spec.TotalEnergy, 4+9+0.01+1, tol) {
		t.Fatalf("total energy: got %v", spec.TotalEnergy)
	}
	if !scalar.EqualWithinAbs(spec.Offset.X, 2, tol) || !scalar.EqualWithinAbs(spec.Offset.Y, 0, tol) {
		t.Fatalf("offset: got %v", spec.Offset)
	}
	if spec.DominantFrequency != 1 || spec.DominantAmplitude != 3 {
		t.Fatalf("dominant: got f=%d a=%v", spec.DominantFrequency, spec.DominantAmplitude)
	}
	// 9+4+1 = 14 of 14.01 is above 99%.
	if spec.EnergyCutoff != 3 {
		t.Fatalf("energy cutoff: got %d, want 3", spec.EnergyCutoff)
	}
}

func TestAnalyzeIgnoresOrdering(t *testing.T) {
	circles := []types.RotatingCircle{
		{Amplitude: 0.5, Phase: 1, Frequency: 0},
		{Amplitude: 2, Phase: 0.3, Frequency: 1},
		{Amplitude: 1, Phase: -0.3, Frequency: 2},
	}

	a := extractor.Analyze(circles)
	b := extractor.Analyze(extractor.SortByAmplitude(circles))
	if a != b {
		t.Fatalf("analysis depends on ordering: %+v vs %+v", a, b)
	}
}

func TestAnalyzeDegenerate(t *testing.T) {
	empty := extractor.Analyze(nil)
	if empty.Circles != 0 || empty.DominantFrequency != -1 || empty.EnergyCutoff != 0 {
		t.Fatalf("unexpected empty spectrum: %+v", empty)
	}

	dcOnly := extractor.Analyze([]types.RotatingCircle{{Amplitude: 1, Frequency: 0}})
	if dcOnly.DominantFrequency != -1 {
		t.Fatalf("expected no dominant circle, got %d", dcOnly.DominantFrequency)
	}
	if dcOnly.EnergyCutoff != 1 {
		t.Fatalf("expected cutoff 1, got %d", dcOnly.EnergyCutoff)
	}

	silent := extractor.Analyze([]types.RotatingCircle{{Frequency: 0}, {Frequency: 1}})
	if silent.TotalEnergy != 0 || silent.EnergyCutoff != 0 {
		t.Fatalf("expected zero energy spectrum, got %+v", silent)
	}
}

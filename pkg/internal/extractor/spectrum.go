package extractor

import (
	"sort"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"gonum.org/v1/gonum/floats"
)

// EnergyFraction is the share of total energy EnergyCutoff accounts for.
const EnergyFraction = 0.99

// Analyze summarises a circle list. It works for either ordering and never
// modifies circles.
func Analyze(circles []types.RotatingCircle) types.Spectrum {
	spec := types.Spectrum{
		Circles:           len(circles),
		DominantFrequency: -1,
	}
	if len(circles) == 0 {
		return spec
	}

	energies := make([]float64, len(circles))
	nonDC := make([]float64, 0, len(circles))
	nonDCIdx := make([]int, 0, len(circles))
	for i, c := range circles {
		energies[i] = c.Amplitude * c.Amplitude
		if c.Frequency == 0 {
			spec.Offset = c.At(0)
			continue
		}
		nonDC = append(nonDC, c.Amplitude)
		nonDCIdx = append(nonDCIdx, i)
	}
	spec.TotalEnergy = floats.Sum(energies)

	if len(nonDC) > 0 {
		dominant := circles[nonDCIdx[floats.MaxIdx(nonDC)]]
		spec.DominantFrequency = dominant.Frequency
		spec.DominantAmplitude = dominant.Amplitude
	}

	spec.EnergyCutoff = energyCutoff(energies, spec.TotalEnergy)
	return spec
}

// energyCutoff counts the largest energies needed to reach EnergyFraction of total.
func energyCutoff(energies []float64, total float64) int {
	if total <= 0 {
		return 0
	}

	sorted := append([]float64(nil), energies...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	cumulative := floats.CumSum(make([]float64, len(sorted)), sorted)

	target := EnergyFraction * total
	for i, e := range cumulative {
		if e >= target {
			return i + 1
		}
	}
	return len(sorted)
}

// Package extractor turns DFT coefficients into rotating circles and reports on
// how the path's energy is spread across them.
package extractor

import (
	"sort"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"github.com/joeydtaylor/epicycle/pkg/internal/utils"
)

// Extract maps coefficient k to the circle {|X_k|, arg X_k, k}. Order and
// length are preserved; nothing is sorted or dropped.
func Extract(coeffs []types.Complex) []types.RotatingCircle {
	return utils.Map(coeffs, func(k int, c types.Complex) types.RotatingCircle {
		return types.RotatingCircle{
			Amplitude: c.Abs(),
			Phase:     c.Arg(),
			Frequency: k,
		}
	})
}

// SortByAmplitude returns a copy of circles ordered largest first, ties broken
// by ascending frequency. The traced point is unchanged by the reorder; only
// the intermediate chain differs.
func SortByAmplitude(circles []types.RotatingCircle) []types.RotatingCircle {
	out := utils.Clone(circles)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Amplitude != out[j].Amplitude {
			return out[i].Amplitude > out[j].Amplitude
		}
		return out[i].Frequency < out[j].Frequency
	})
	return out
}

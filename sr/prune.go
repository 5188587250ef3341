package sr

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Prune drops smooth patches: every pair whose high-resolution variance is
// below the given percentile (0-100) of all variances is removed. Variances
// are population variances, so a 1x1 patch has variance 0. The threshold is
// one of the observed variances, so at least one pair survives unless H
// holds NaN values, which is reported as ErrInvalidShape.
func Prune(ps *PatchSet, percentile float64) (*PatchSet, error) {
	if percentile < 0 || percentile > 100 || math.IsNaN(percentile) {
		return nil, fmt.Errorf("%w: percentile %v outside [0, 100]", ErrParameter, percentile)
	}
	n := ps.Len()
	if n == 0 {
		return ps, nil
	}

	variances := make([]float64, n)
	col := make([]float64, ps.H.RawMatrix().Rows)
	for j := range variances {
		variances[j] = stat.PopVariance(mat.Col(col, j, ps.H), nil)
	}

	sorted := append([]float64(nil), variances...)
	sort.Float64s(sorted)
	threshold := stat.Quantile(percentile/100, stat.Empirical, sorted, nil)

	var keep []int
	for j, v := range variances {
		if v >= threshold {
			keep = append(keep, j)
		}
	}
	if len(keep) == n {
		return ps, nil
	}
	if len(keep) == 0 {
		return nil, fmt.Errorf("%w: no patch variance reaches threshold %v", ErrInvalidShape, threshold)
	}

	out := newPatchSet(ps.PatchSize, ps.Upscale, make([]Coord, len(keep)))
	lCol := make([]float64, ps.L.RawMatrix().Rows)
	for i, j := range keep {
		out.Coords[i] = ps.Coords[j]
		out.H.SetCol(i, mat.Col(col, j, ps.H))
		out.L.SetCol(i, mat.Col(lCol, j, ps.L))
	}
	return out, nil
}

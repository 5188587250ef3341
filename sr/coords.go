package sr

import (
	"math/rand/v2"
)

// Coord is the top-left corner of a patch window.
type Coord struct {
	Row, Col int
}

// Permuter yields a uniformly random permutation of [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Permuter interface {
	Perm(n int) []int
}

// globalPerm draws from the shared math/rand/v2 source.
type globalPerm struct{}

func (globalPerm) Perm(n int) []int {
	indices := indexList(n)
	rand.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
	return indices
}

// indexList returns 0, 1, ..., size-1.
func indexList(size int) []int {
	indices := make([]int, size)
	for i := range indices {
		indices[i] = i
	}
	return indices
}

// Candidates picks up to limit patch locations in an image of rows x cols.
//
// One permutation of the valid row offsets and one of the valid column
// offsets are drawn (rows first). Their cross product is enumerated with the
// column index varying fastest: candidate k is (rowPerm[k/nc], colPerm[k%nc]).
// Only the first min(limit, nr*nc) candidates are materialized.
func Candidates(rows, cols, patchSize, limit int, p Permuter) []Coord {
	nr, nc := rows-2*patchSize, cols-2*patchSize
	if nr <= 0 || nc <= 0 || limit <= 0 {
		return nil
	}

	x := p.Perm(nr)
	y := p.Perm(nc)

	n := nr * nc
	if limit < n {
		n = limit
	}

	coords := make([]Coord, n)
	for k := range coords {
		coords[k] = Coord{
			Row: x[k/nc] + patchSize,
			Col: y[k%nc] + patchSize,
		}
	}
	return coords
}

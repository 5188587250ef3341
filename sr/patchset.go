package sr

import (
	"encoding/gob"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
)

// PatchSet holds aligned high- and low-resolution patch matrices.
// Column i of H and L, and Coords[i], all describe the same window.
type PatchSet struct {
	H         *mat.Dense // PatchSize² x N, zero-mean columns
	L         *mat.Dense // 4·PatchSize² x N
	Coords    []Coord
	PatchSize int
	Upscale   float64
}

func newPatchSet(patchSize int, upscale float64, coords []Coord) *PatchSet {
	dim := patchSize * patchSize
	return &PatchSet{
		H:         mat.NewDense(dim, len(coords), nil),
		L:         mat.NewDense(4*dim, len(coords), nil),
		Coords:    coords,
		PatchSize: patchSize,
		Upscale:   upscale,
	}
}

// Len returns the number of patch pairs.
func (ps *PatchSet) Len() int {
	return len(ps.Coords)
}

// Append returns a new set with the columns of other after those of ps.
// Coordinates of different source images are kept as they are. Both sets
// must carry their matrices, as returned by Sample or LoadFromFile.
func (ps *PatchSet) Append(other *PatchSet) (*PatchSet, error) {
	if other == nil || ps.H == nil || ps.L == nil || other.H == nil || other.L == nil {
		return nil, fmt.Errorf("%w: cannot append a patch set without matrices", ErrParameter)
	}
	if ps.PatchSize != other.PatchSize {
		return nil, fmt.Errorf("%w: cannot append patch size %d to %d",
			ErrParameter, other.PatchSize, ps.PatchSize)
	}

	out := &PatchSet{
		H:         &mat.Dense{},
		L:         &mat.Dense{},
		Coords:    append(append(make([]Coord, 0, ps.Len()+other.Len()), ps.Coords...), other.Coords...),
		PatchSize: ps.PatchSize,
		Upscale:   ps.Upscale,
	}
	out.H.Augment(ps.H, other.H)
	out.L.Augment(ps.L, other.L)
	return out, nil
}

// patchSetData is the on-disk form. Matrices use gonum's binary encoding.
type patchSetData struct {
	PatchSize int
	Upscale   float64
	Coords    []Coord
	H, L      []byte
}

// SaveToFile writes the patch set to filename with gob.
func (ps *PatchSet) SaveToFile(filename string) error {
	h, err := ps.H.MarshalBinary()
	if err != nil {
		return err
	}
	l, err := ps.L.MarshalBinary()
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(patchSetData{
		PatchSize: ps.PatchSize,
		Upscale:   ps.Upscale,
		Coords:    ps.Coords,
		H:         h,
		L:         l,
	}); err != nil {
		return err
	}
	return file.Close()
}

// LoadFromFile reads a patch set written by SaveToFile and checks that its
// matrices agree with the stored patch size and coordinate count.
func LoadFromFile(filename string) (*PatchSet, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var d patchSetData
	if err := gob.NewDecoder(file).Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode gob file: %w", err)
	}

	ps := &PatchSet{
		H:         &mat.Dense{},
		L:         &mat.Dense{},
		Coords:    d.Coords,
		PatchSize: d.PatchSize,
		Upscale:   d.Upscale,
	}
	if err := ps.H.UnmarshalBinary(d.H); err != nil {
		return nil, fmt.Errorf("failed to decode H: %w", err)
	}
	if err := ps.L.UnmarshalBinary(d.L); err != nil {
		return nil, fmt.Errorf("failed to decode L: %w", err)
	}

	// --- VALIDATION STEP ---
	hr, hc := ps.H.Dims()
	lr, lc := ps.L.Dims()
	dim := d.PatchSize * d.PatchSize
	if hr != dim || lr != 4*dim || hc != lc || hc != len(d.Coords) {
		return nil, fmt.Errorf("%w: file holds H %dx%d, L %dx%d, %d coords for patch size %d",
			ErrInvalidShape, hr, hc, lr, lc, len(d.Coords), d.PatchSize)
	}
	return ps, nil
}

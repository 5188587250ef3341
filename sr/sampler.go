// Package sr extracts training patch pairs for sparse-coding super-resolution.
//
// For one image it builds a low-resolution proxy (area downscale by 1/Upscale,
// bilinear resize back), picks random patch locations, and returns two aligned
// matrices: H holds mean-subtracted high-resolution patches, L holds the
// matching first- and second-order gradient features of the proxy. Column i of
// both matrices describes the same location.
//
// Vector layout is fixed because dictionary-learning code consumes it as is:
// windows are flattened column-major, and the four gradient channels of L are
// interleaved per pixel (pixel 0 of G11, G12, G21, G22, then pixel 1, ...).
package sr

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/b0tShaman/neuro-sr/data"
)

// Sampler extracts patch pairs with a fixed configuration and set of
// capabilities. Build it with NewSampler.
type Sampler struct {
	cfg       Config
	resampler data.Resampler
	convolver Convolver
	perm      Permuter
	luma      data.Luma
	progress  ProgressFunc
}

func NewSampler(patchSize, patchNum int, upscale float64, opts ...Option) (*Sampler, error) {
	s := &Sampler{
		cfg: Config{
			PatchSize: patchSize,
			PatchNum:  patchNum,
			Upscale:   upscale,
		},
		resampler: data.FloatResampler{},
		convolver: DirectConvolver{Padding: PadEdge},
		perm:      globalPerm{},
		luma:      data.Rec709,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sampler) Config() Config {
	return s.cfg
}

// SamplePatches is the one-shot form of NewSampler + Sample with default
// capabilities. It returns H (PatchSize² x N) and L (4·PatchSize² x N).
func SamplePatches(img *data.Image, patchSize, patchNum int, upscale float64) (*mat.Dense, *mat.Dense, error) {
	s, err := NewSampler(patchSize, patchNum, upscale)
	if err != nil {
		return nil, nil, err
	}
	ps, err := s.Sample(img)
	if err != nil {
		return nil, nil, err
	}
	return ps.H, ps.L, nil
}

// Sample extracts min(PatchNum, (Rows-2p)·(Cols-2p)) patch pairs from img.
// On error nothing is returned.
func (s *Sampler) Sample(img *data.Image) (*PatchSet, error) {
	if err := s.checkImage(img); err != nil {
		return nil, err
	}

	hi, err := data.Grayscale(img, s.luma)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	lo := data.LowRes(s.resampler, hi, s.cfg.Upscale)

	p := s.cfg.PatchSize
	coords := Candidates(img.Rows, img.Cols, p, s.cfg.PatchNum, s.perm)
	grads := GradientMaps(s.convolver, lo)

	ps := newPatchSet(p, s.cfg.Upscale, coords)
	s.extract(hi, grads, ps)
	return ps, nil
}

func (s *Sampler) checkImage(img *data.Image) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidShape)
	}
	if img.Channels != 1 && img.Channels != 3 {
		return fmt.Errorf("%w: %d channels, want 1 or 3", ErrInvalidShape, img.Channels)
	}
	if img.Rows <= 0 || img.Cols <= 0 || len(img.Pix) != img.Rows*img.Cols*img.Channels {
		return fmt.Errorf("%w: %dx%dx%d with %d pixels",
			ErrInvalidShape, img.Rows, img.Cols, img.Channels, len(img.Pix))
	}
	if p := s.cfg.PatchSize; 2*p >= img.Rows || 2*p >= img.Cols {
		return fmt.Errorf("%w: patch size %d needs an image larger than %dx%d, got %dx%d",
			ErrInvalidGeometry, p, 2*p, 2*p, img.Rows, img.Cols)
	}
	return nil
}

// extract fills every column of ps. Workers own disjoint, contiguous column
// ranges so the result does not depend on the worker count.
func (s *Sampler) extract(hi *mat.Dense, grads [4]*mat.Dense, ps *PatchSet) {
	n := len(ps.Coords)
	numWorkers := s.cfg.workers(n)
	chunk := (n + numWorkers - 1) / numWorkers
	prog := newProgress(s.progress, n)

	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := 0; i < numWorkers; i++ {
		go func(id int) {
			defer wg.Done()
			wStart := id * chunk
			wEnd := min(wStart+chunk, n)

			hBuf := make([]float64, ps.H.RawMatrix().Rows)
			lBuf := make([]float64, ps.L.RawMatrix().Rows)
			for col := wStart; col < wEnd; col++ {
				c := ps.Coords[col]

				highPatch(hBuf, hi, c, ps.PatchSize)
				ps.H.SetCol(col, hBuf)

				lowPatch(lBuf, grads, c, ps.PatchSize)
				ps.L.SetCol(col, lBuf)

				prog.tick()
			}
		}(i)
	}
	wg.Wait()
}

// highPatch writes the column-major window at c into dst and removes its mean.
func highPatch(dst []float64, hi *mat.Dense, c Coord, size int) {
	k := 0
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			dst[k] = hi.At(c.Row+y, c.Col+x)
			k++
		}
	}
	floats.AddConst(-stat.Mean(dst, nil), dst)
}

// lowPatch writes the four gradient windows at c into dst, interleaved per pixel.
func lowPatch(dst []float64, grads [4]*mat.Dense, c Coord, size int) {
	k := 0
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for g, m := range grads {
				dst[4*k+g] = m.At(c.Row+y, c.Col+x)
			}
			k++
		}
	}
}

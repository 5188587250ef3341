package data

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Interpolation selects the resampling filter.
type Interpolation int

const (
	// InterpolationArea averages every source pixel a destination pixel covers,
	// weighted by the covered fraction. Used for downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation between pixel centres.
	InterpolationLinear

	// InterpolationNearest picks the source pixel under the destination centre.
	InterpolationNearest
)

func (i Interpolation) String() string {
	switch i {
	case InterpolationArea:
		return "area"
	case InterpolationLinear:
		return "linear"
	case InterpolationNearest:
		return "nearest"
	}
	return "unknown"
}

// Resampler resizes a single-channel float image.
type Resampler interface {
	Resize(src mat.Matrix, rows, cols int, interp Interpolation) *mat.Dense
}

// LowResSize returns the dimensions of rows x cols scaled by 1/upscale,
// rounded to the nearest pixel and never below 1.
func LowResSize(rows, cols int, upscale float64) (int, int) {
	lr := int(math.Round(float64(rows) / upscale))
	lc := int(math.Round(float64(cols) / upscale))
	return max(lr, 1), max(lc, 1)
}

// LowRes builds the low-resolution proxy of hi: an area downscale by
// 1/upscale followed by a bilinear resize back to the original grid.
func LowRes(r Resampler, hi mat.Matrix, upscale float64) *mat.Dense {
	rows, cols := hi.Dims()
	lr, lc := LowResSize(rows, cols, upscale)
	small := r.Resize(hi, lr, lc, InterpolationArea)
	return r.Resize(small, rows, cols, InterpolationLinear)
}

// FloatResampler resizes in float64 without quantization. Each resize is
// separable and computed as A * src * Bᵀ with per-axis weight matrices.
type FloatResampler struct{}

func (FloatResampler) Resize(src mat.Matrix, rows, cols int, interp Interpolation) *mat.Dense {
	srcRows, srcCols := src.Dims()

	var a, b *mat.Dense
	switch interp {
	case InterpolationLinear:
		a, b = linearWeights(srcRows, rows), linearWeights(srcCols, cols)
	case InterpolationNearest:
		a, b = nearestWeights(srcRows, rows), nearestWeights(srcCols, cols)
	default:
		a, b = areaWeights(srcRows, rows), areaWeights(srcCols, cols)
	}

	var tmp mat.Dense
	tmp.Mul(a, src)
	out := mat.NewDense(rows, cols, nil)
	out.Mul(&tmp, b.T())
	return out
}

// areaWeights returns a dst x src matrix whose row i holds the fraction of
// destination pixel i covered by each source pixel. Rows sum to 1.
func areaWeights(src, dst int) *mat.Dense {
	w := mat.NewDense(dst, src, nil)
	scale := float64(src) / float64(dst)

	for i := 0; i < dst; i++ {
		lo := float64(i) * scale
		hi := lo + scale
		first := int(math.Floor(lo))
		last := min(int(math.Ceil(hi)), src)
		for s := first; s < last; s++ {
			overlap := math.Min(hi, float64(s+1)) - math.Max(lo, float64(s))
			if overlap > 0 {
				w.Set(i, s, overlap/scale)
			}
		}
	}
	return w
}

// linearWeights maps pixel centres with the half-pixel convention and
// clamps at the borders.
func linearWeights(src, dst int) *mat.Dense {
	w := mat.NewDense(dst, src, nil)
	scale := float64(src) / float64(dst)

	for i := 0; i < dst; i++ {
		x := (float64(i)+0.5)*scale - 0.5
		x = math.Max(0, math.Min(x, float64(src-1)))
		x0 := int(math.Floor(x))
		x1 := min(x0+1, src-1)
		f := x - float64(x0)
		w.Set(i, x0, w.At(i, x0)+1-f)
		w.Set(i, x1, w.At(i, x1)+f)
	}
	return w
}

func nearestWeights(src, dst int) *mat.Dense {
	w := mat.NewDense(dst, src, nil)
	scale := float64(src) / float64(dst)

	for i := 0; i < dst; i++ {
		s := int(math.Floor((float64(i) + 0.5) * scale))
		w.Set(i, min(s, src-1), 1)
	}
	return w
}

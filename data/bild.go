package data

import (
	"github.com/anthonynsimon/bild/transform"
	"gonum.org/v1/gonum/mat"
)

// BildResampler resizes with bild's filters on an 8-bit gray image.
// The box filter is a true area average, which makes this the cheapest
// integer path for the area downscale. Precision is limited to 256 levels.
type BildResampler struct{}

func (BildResampler) Resize(src mat.Matrix, rows, cols int, interp Interpolation) *mat.Dense {
	l := levelsOf(src, 0xff)
	if l.flat() {
		return constant(rows, cols, l.lo)
	}

	var filter transform.ResampleFilter
	switch interp {
	case InterpolationLinear:
		filter = transform.Linear
	case InterpolationNearest:
		filter = transform.NearestNeighbor
	default:
		filter = transform.Box
	}

	dst := transform.Resize(toGray(src, l), cols, rows, filter)

	out := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			// Gray input is expanded to RGBA, R == G == B.
			out.Set(y, x, l.decode(float64(dst.Pix[y*dst.Stride+x*4])))
		}
	}
	return out
}

//go:build gocv

package data

import (
	"image"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"
)

// GocvResampler resizes with OpenCV on CV_64F mats, so no quantization
// happens. InterpolationArea maps to INTER_AREA.
type GocvResampler struct{}

func (GocvResampler) Resize(src mat.Matrix, rows, cols int, interp Interpolation) *mat.Dense {
	in := ToGocv(src)
	defer in.Close()

	flag := gocv.InterpolationArea
	switch interp {
	case InterpolationLinear:
		flag = gocv.InterpolationLinear
	case InterpolationNearest:
		flag = gocv.InterpolationNearestNeighbor
	}

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(in, &resized, image.Point{X: cols, Y: rows}, 0, 0, flag)

	return FromGocv(resized)
}

// ToGocv copies m into a new single-channel CV_64F mat. The caller closes it.
func ToGocv(m mat.Matrix) gocv.Mat {
	rows, cols := m.Dims()
	out := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV64F)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out.SetDoubleAt(y, x, m.At(y, x))
		}
	}
	return out
}

// FromGocv copies a single-channel CV_64F mat into a dense matrix.
func FromGocv(m gocv.Mat) *mat.Dense {
	rows, cols := m.Rows(), m.Cols()
	out := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out.Set(y, x, m.GetDoubleAt(y, x))
		}
	}
	return out
}

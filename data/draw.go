package data

import (
	"image"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/mat"
)

// DrawResampler resizes through golang.org/x/image/draw on a 16-bit gray
// image. Values are quantized to 65536 levels over the source range.
type DrawResampler struct{}

func (DrawResampler) Resize(src mat.Matrix, rows, cols int, interp Interpolation) *mat.Dense {
	l := levelsOf(src, 0xffff)
	if l.flat() {
		return constant(rows, cols, l.lo)
	}

	var scaler draw.Scaler
	switch interp {
	case InterpolationArea:
		// x/image/draw has no box filter; CatmullRom is the closest
		// high-quality downscaler it offers.
		scaler = draw.CatmullRom
	case InterpolationLinear:
		scaler = draw.BiLinear
	case InterpolationNearest:
		scaler = draw.NearestNeighbor
	default:
		scaler = draw.CatmullRom
	}

	in := toGray16(src, l)
	dst := image.NewGray16(image.Rect(0, 0, cols, rows))
	scaler.Scale(dst, dst.Bounds(), in, in.Bounds(), draw.Src, nil)

	out := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out.Set(y, x, l.decode(float64(dst.Gray16At(x, y).Y)))
		}
	}
	return out
}

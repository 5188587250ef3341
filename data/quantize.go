package data

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// levels maps float intensities onto an integer range [0, top] and back.
// Integer-based scalers only work on 8 or 16 bit pixels, so the source range
// is stretched over the full depth to keep as much precision as possible.
type levels struct {
	lo, span, top float64
}

func levelsOf(src mat.Matrix, top float64) levels {
	raw := mat.DenseCopyOf(src).RawMatrix().Data
	lo, hi := floats.Min(raw), floats.Max(raw)
	return levels{lo: lo, span: hi - lo, top: top}
}

// flat reports whether the source is constant, in which case no scaling is needed.
func (l levels) flat() bool {
	return l.span == 0
}

func (l levels) encode(v float64) float64 {
	return math.Round((v - l.lo) / l.span * l.top)
}

func (l levels) decode(q float64) float64 {
	return l.lo + q/l.top*l.span
}

func toGray16(src mat.Matrix, l levels) *image.Gray16 {
	rows, cols := src.Dims()
	g := image.NewGray16(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g.SetGray16(x, y, color.Gray16{Y: uint16(l.encode(src.At(y, x)))})
		}
	}
	return g
}

func toGray(src mat.Matrix, l levels) *image.Gray {
	rows, cols := src.Dims()
	g := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g.Pix[y*g.Stride+x] = uint8(l.encode(src.At(y, x)))
		}
	}
	return g
}

func constant(rows, cols int, v float64) *mat.Dense {
	out := mat.NewDense(rows, cols, nil)
	raw := out.RawMatrix().Data
	for i := range raw {
		raw[i] = v
	}
	return out
}

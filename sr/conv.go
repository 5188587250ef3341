package sr

import (
	"gonum.org/v1/gonum/mat"
)

// Padding selects how pixels outside the image are read during convolution.
type Padding int

const (
	// PadEdge replicates the nearest border pixel.
	PadEdge Padding = iota
	// PadZero treats everything outside the image as 0.
	PadZero
)

// Convolver computes a same-size 2D convolution of a single-channel image.
type Convolver interface {
	Convolve(src mat.Matrix, k *Kernel) *mat.Dense
}

// DirectConvolver is a plain spatial convolution. The kernel is flipped
// (true convolution, not correlation) and centred on Width/2, Height/2,
// so kernels are expected to have odd sides.
type DirectConvolver struct {
	Padding Padding
}

func (c DirectConvolver) Convolve(src mat.Matrix, k *Kernel) *mat.Dense {
	height, width := src.Dims()
	dst := mat.NewDense(height, width, nil)

	halfKW := k.Width / 2
	halfKH := k.Height / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float64

			for ky := 0; ky < k.Height; ky++ {
				sy := y + halfKH - ky
				if sy < 0 || sy >= height {
					if c.Padding == PadZero {
						continue
					}
					sy = clampInt(sy, 0, height-1)
				}
				for kx := 0; kx < k.Width; kx++ {
					sx := x + halfKW - kx
					if sx < 0 || sx >= width {
						if c.Padding == PadZero {
							continue
						}
						sx = clampInt(sx, 0, width-1)
					}
					sum += src.At(sy, sx) * k.Values[ky][kx]
				}
			}

			dst.Set(y, x, sum)
		}
	}

	return dst
}

// GradientMaps convolves lo with the four GradientKernels, in order:
// first-order horizontal, first-order vertical, second-order horizontal,
// second-order vertical.
func GradientMaps(c Convolver, lo mat.Matrix) [4]*mat.Dense {
	var maps [4]*mat.Dense
	for i, k := range GradientKernels() {
		maps[i] = c.Convolve(lo, k)
	}
	return maps
}

// clampInt clamps an integer to the given range.
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

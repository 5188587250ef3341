//go:build gocv

package sr

import (
	"image"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"

	"github.com/b0tShaman/neuro-sr/data"
)

// GocvConvolver runs the convolution through OpenCV's filter2D.
// filter2D correlates, so the kernel is flipped before the call.
type GocvConvolver struct {
	Padding Padding
}

func (c GocvConvolver) Convolve(src mat.Matrix, k *Kernel) *mat.Dense {
	in := data.ToGocv(src)
	defer in.Close()

	kernel := gocv.NewMatWithSize(k.Height, k.Width, gocv.MatTypeCV64F)
	defer kernel.Close()
	for y := 0; y < k.Height; y++ {
		for x := 0; x < k.Width; x++ {
			kernel.SetDoubleAt(k.Height-1-y, k.Width-1-x, k.Values[y][x])
		}
	}

	border := gocv.BorderReplicate
	if c.Padding == PadZero {
		border = gocv.BorderConstant
	}

	out := gocv.NewMat()
	defer out.Close()
	gocv.Filter2D(in, &out, gocv.MatTypeCV64F, kernel, image.Point{X: -1, Y: -1}, 0, border)

	return data.FromGocv(out)
}

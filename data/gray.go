package data

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var ErrChannels = errors.New("data: unsupported channel count")

// Luma holds the R, G, B weights of a grayscale conversion.
type Luma [3]float64

var (
	// Rec709 matches the conversion used by common scientific imaging stacks.
	Rec709 = Luma{0.2125, 0.7154, 0.0721}
	// BT601 is the classic TV formula: Y = 0.299*R + 0.587*G + 0.114*B
	BT601 = Luma{0.299, 0.587, 0.114}
)

// Grayscale returns the image as a Rows x Cols matrix. Single-channel images
// are copied through unchanged, RGB images are collapsed with the given weights.
func Grayscale(im *Image, w Luma) (*mat.Dense, error) {
	gray := mat.NewDense(im.Rows, im.Cols, nil)

	switch im.Channels {
	case 1:
		copy(gray.RawMatrix().Data, im.Pix)
	case 3:
		raw := gray.RawMatrix().Data
		for i := range raw {
			px := im.Pix[i*3 : i*3+3]
			raw[i] = w[0]*px[0] + w[1]*px[1] + w[2]*px[2]
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrChannels, im.Channels)
	}
	return gray, nil
}

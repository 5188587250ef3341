package data

import (
	"image"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/mat"
)

// Image is an in-memory picture of real-valued intensities.
// Pixels are stored row-major with channels interleaved, so the value at
// (row, col, ch) lives at Pix[(row*Cols+col)*Channels+ch].
type Image struct {
	Rows, Cols int
	Channels   int
	Pix        []float64
}

func NewImage(rows, cols, channels int) *Image {
	return &Image{
		Rows:     rows,
		Cols:     cols,
		Channels: channels,
		Pix:      make([]float64, rows*cols*channels),
	}
}

// NewImageFromSlice wraps pix without copying.
func NewImageFromSlice(rows, cols, channels int, pix []float64) *Image {
	if len(pix) != rows*cols*channels {
		panic("Slice length mismatch")
	}
	return &Image{
		Rows:     rows,
		Cols:     cols,
		Channels: channels,
		Pix:      pix,
	}
}

func (im *Image) At(row, col, ch int) float64 {
	return im.Pix[(row*im.Cols+col)*im.Channels+ch]
}

func (im *Image) Set(row, col, ch int, v float64) {
	im.Pix[(row*im.Cols+col)*im.Channels+ch] = v
}

// FromGray copies a single-channel matrix into an Image.
func FromGray(m mat.Matrix) *Image {
	rows, cols := m.Dims()
	im := NewImage(rows, cols, 1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			im.Pix[r*cols+c] = m.At(r, c)
		}
	}
	return im
}

// FromImage converts any decoded Go image into an Image in the 0-255 range.
// Gray sources produce one channel, everything else produces RGB.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	return FromImageScaled(src, b.Dx(), b.Dy())
}

// FromImageScaled is FromImage with a Catmull-Rom resize to targetW x targetH.
func FromImageScaled(src image.Image, targetW, targetH int) *Image {
	dstRect := image.Rect(0, 0, targetW, targetH)

	switch src.(type) {
	case *image.Gray, *image.Gray16:
		dst := image.NewGray16(dstRect)
		if src.Bounds().Size() == dstRect.Size() {
			draw.Draw(dst, dstRect, src, src.Bounds().Min, draw.Src)
		} else {
			draw.CatmullRom.Scale(dst, dstRect, src, src.Bounds(), draw.Src, nil)
		}
		im := NewImage(targetH, targetW, 1)
		for y := 0; y < targetH; y++ {
			for x := 0; x < targetW; x++ {
				im.Pix[y*targetW+x] = float64(dst.Gray16At(x, y).Y) / 257
			}
		}
		return im
	}

	dst := image.NewRGBA64(dstRect)
	if src.Bounds().Size() == dstRect.Size() {
		draw.Draw(dst, dstRect, src, src.Bounds().Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dstRect, src, src.Bounds(), draw.Src, nil)
	}

	im := NewImage(targetH, targetW, 3)
	for y := 0; y < targetH; y++ {
		for x := 0; x < targetW; x++ {
			c := dst.RGBA64At(x, y)
			off := (y*targetW + x) * 3
			im.Pix[off] = float64(c.R) / 257
			im.Pix[off+1] = float64(c.G) / 257
			im.Pix[off+2] = float64(c.B) / 257
		}
	}
	return im
}

package sr

// Kernel represents a convolution kernel.
type Kernel struct {
	Values [][]float64
	Width  int
	Height int
}

// NewKernel creates a new kernel from a 2D slice.
func NewKernel(values [][]float64) *Kernel {
	height := len(values)
	width := 0
	if height > 0 {
		width = len(values[0])
	}
	return &Kernel{
		Values: values,
		Width:  width,
		Height: height,
	}
}

// Transpose returns a new kernel with rows and columns swapped.
func (k *Kernel) Transpose() *Kernel {
	values := make([][]float64, k.Width)
	for x := range values {
		values[x] = make([]float64, k.Height)
		for y := 0; y < k.Height; y++ {
			values[x][y] = k.Values[y][x]
		}
	}
	return NewKernel(values)
}

// FirstOrderH is the 3x3 horizontal first difference [-1 0 1], repeated on three rows.
func FirstOrderH() *Kernel {
	return NewKernel([][]float64{
		{-1, 0, 1},
		{-1, 0, 1},
		{-1, 0, 1},
	})
}

// FirstOrderV is FirstOrderH transposed.
func FirstOrderV() *Kernel {
	return FirstOrderH().Transpose()
}

// SecondOrderH is the 3x5 horizontal second difference [1 0 -2 0 1], repeated on three rows.
func SecondOrderH() *Kernel {
	return NewKernel([][]float64{
		{1, 0, -2, 0, 1},
		{1, 0, -2, 0, 1},
		{1, 0, -2, 0, 1},
	})
}

// SecondOrderV is SecondOrderH transposed (5x3).
func SecondOrderV() *Kernel {
	return SecondOrderH().Transpose()
}

// GradientKernels returns the four feature kernels in output channel order.
func GradientKernels() [4]*Kernel {
	return [4]*Kernel{FirstOrderH(), FirstOrderV(), SecondOrderH(), SecondOrderV()}
}

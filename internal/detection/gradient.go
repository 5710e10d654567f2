package detection

import "math"

// Sobel operators. Rows are indexed by dy+1, columns by dx+1.
var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// HorizontalGradient applies the horizontal Sobel kernel to grey.
//
// Only pixels with a full 3×3 neighbourhood are convolved; the outermost
// one-pixel ring is left at 0.
func HorizontalGradient(grey *Grid[uint8]) *Grid[float64] {
	return convolve3x3(grey, &sobelX)
}

// VerticalGradient applies the vertical Sobel kernel to grey, with the same
// border rule as HorizontalGradient.
func VerticalGradient(grey *Grid[uint8]) *Grid[float64] {
	return convolve3x3(grey, &sobelY)
}

// GradientMagnitude combines the two directional gradients into
// sqrt(h² + v²) per pixel. Border pixels are 0.
func GradientMagnitude(grey *Grid[uint8]) *Grid[float64] {
	mag, _, _ := gradients(grey)
	return mag
}

// gradients returns magnitude, horizontal and vertical grids in one call so
// the pipeline can keep the intermediates without convolving twice.
func gradients(grey *Grid[uint8]) (mag, gx, gy *Grid[float64]) {
	gx = HorizontalGradient(grey)
	gy = VerticalGradient(grey)
	mag = NewGrid[float64](grey.Width, grey.Height)
	for y := 0; y < grey.Height; y++ {
		for x := 0; x < grey.Width; x++ {
			h, v := gx.Pix[y][x], gy.Pix[y][x]
			mag.Pix[y][x] = math.Sqrt(h*h + v*v)
		}
	}
	return mag, gx, gy
}

func convolve3x3(src *Grid[uint8], kernel *[3][3]float64) *Grid[float64] {
	out := NewGrid[float64](src.Width, src.Height)
	for y := 1; y < src.Height-1; y++ {
		for x := 1; x < src.Width-1; x++ {
			var sum float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					sum += float64(src.Pix[y+ky][x+kx]) * kernel[ky+1][kx+1]
				}
			}
			out.Pix[y][x] = sum
		}
	}
	return out
}

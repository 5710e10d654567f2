package detection

import "math"

// ITU-R BT.601 luminance weights.
const (
	lumaRed   = 0.299
	lumaGreen = 0.587
	lumaBlue  = 0.114
)

// Luminance converts one RGB pixel to its rounded BT.601 luminance.
func Luminance(r, g, b uint8) uint8 {
	v := math.Round(lumaRed*float64(r) + lumaGreen*float64(g) + lumaBlue*float64(b))
	return uint8(clampFloat(v, 0, 255))
}

// Greyscale converts img to a contrast-stretched luminance grid.
//
// Each pixel becomes round(0.299·R + 0.587·G + 0.114·B); the grid is then
// stretched so its minimum maps to 0 and its maximum to 255. When every pixel
// has the same luminance the stretch factor is zero, the whole grid becomes 0
// and flat is true.
//
// img must already be validated; see RGBImage.Validate.
func Greyscale(img *RGBImage) (grey *Grid[uint8], flat bool) {
	grey = NewGrid[uint8](img.Width, img.Height)
	if img.Width == 0 || img.Height == 0 {
		return grey, true
	}

	lo, hi := uint8(255), uint8(0)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			v := Luminance(img.Red[y][x], img.Green[y][x], img.Blue[y][x])
			grey.Pix[y][x] = v
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	scale := 0.0
	if hi != lo {
		scale = 255.0 / float64(hi-lo)
	}
	for _, row := range grey.Pix {
		for x, v := range row {
			row[x] = uint8(clampFloat(math.Round(float64(v-lo)*scale), 0, 255))
		}
	}
	return grey, hi == lo
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package imaging

import (
	"image"
	"image/color"

	"github.com/ironsheep/region-locator-mcp/internal/detection"
)

// SplitChannels converts any image into separate 8-bit red, green and blue
// planes, rebased so the top-left pixel is (0, 0).
//
// Colours are read non-premultiplied so semi-transparent pixels keep their
// true channel values; alpha itself is dropped.
func SplitChannels(img image.Image) *detection.RGBImage {
	bounds := img.Bounds()
	out := detection.NewRGBImage(bounds.Dx(), bounds.Dy())

	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			out.SetRGB(x, y, c.R, c.G, c.B)
		}
	}
	return out
}

// MergeChannels is the inverse of SplitChannels.
func MergeChannels(src *detection.RGBImage) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, src.Width, src.Height))
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			out.SetNRGBA(x, y, color.NRGBA{R: src.Red[y][x], G: src.Green[y][x], B: src.Blue[y][x], A: 255})
		}
	}
	return out
}

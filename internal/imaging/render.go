package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/ironsheep/region-locator-mcp/internal/detection"
)

// StagePreviewResult contains one intermediate pipeline grid rendered as a
// grayscale base64 PNG.
type StagePreviewResult struct {
	Stage       string `json:"stage"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`

	// Scale is the factor applied to |value| to reach the 0-255 range.
	Scale float64 `json:"scale"`
}

// RenderGrid renders a real-valued grid as an 8-bit grayscale image.
//
// Values are mapped by magnitude: the largest |v| becomes 255 and 0 stays
// black, so signed gradient grids show edges of both polarities. The
// returned scale is the factor used; it is 0 for an all-zero grid.
func RenderGrid(g *detection.Grid[float64]) (*image.Gray, float64) {
	maxAbs := 0.0
	for _, row := range g.Pix {
		for _, v := range row {
			maxAbs = math.Max(maxAbs, math.Abs(v))
		}
	}

	scale := 0.0
	if maxAbs > 0 {
		scale = 255 / maxAbs
	}

	out := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for y, row := range g.Pix {
		for x, v := range row {
			out.SetGray(x, y, color.Gray{Y: uint8(math.Min(255, math.Round(math.Abs(v)*scale)))})
		}
	}
	return out, scale
}

// MaskImage renders a binary grid (0/1 or 0/255) as black and white.
func MaskImage(mask *detection.Grid[uint8]) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, mask.Width, mask.Height))
	for y, row := range mask.Pix {
		for x, v := range row {
			if v != 0 {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return out
}

// MaskResult contains the dilated region mask as a base64 PNG.
type MaskResult struct {
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	ForegroundCount int    `json:"foreground_count"`
	ImageBase64     string `json:"image_base64"`
	MimeType        string `json:"mime_type"`
}

// EncodeMask renders mask with MaskImage and encodes it as PNG.
func EncodeMask(mask *detection.Grid[uint8]) (*MaskResult, error) {
	encoded, err := encodePNG(MaskImage(mask))
	if err != nil {
		return nil, fmt.Errorf("failed to encode mask: %w", err)
	}
	return &MaskResult{
		Width:           mask.Width,
		Height:          mask.Height,
		ForegroundCount: mask.CountNonZero(),
		ImageBase64:     encoded,
		MimeType:        "image/png",
	}, nil
}

// RenderStage renders the named intermediate grid of a run.
// See detection.StageNames for the accepted names.
func RenderStage(stages *detection.Stages, name string) (*StagePreviewResult, error) {
	g, err := stages.Float(name)
	if err != nil {
		return nil, err
	}

	gray, scale := RenderGrid(g)
	encoded, err := encodePNG(gray)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s stage: %w", name, err)
	}

	return &StagePreviewResult{
		Stage:       name,
		Width:       g.Width,
		Height:      g.Height,
		ImageBase64: encoded,
		MimeType:    "image/png",
		Scale:       math.Round(scale*10000) / 10000,
	}, nil
}

package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/region-locator-mcp/internal/detection"
)

// DefaultOutlineColor is the colour used for region outlines when none is
// configured.
const DefaultOutlineColor = "#00FF00"

// AnnotateResult contains the source image with the located region outlined.
type AnnotateResult struct {
	Width       int                 `json:"width"`
	Height      int                 `json:"height"`
	Region      detection.Rectangle `json:"region"`
	ImageBase64 string              `json:"image_base64"`
	MimeType    string              `json:"mime_type"`
}

// ParseColor parses a "#RRGGBB" or "#RGB" hex colour into an opaque RGBA.
func ParseColor(hex string) (color.RGBA, error) {
	if hex == "" {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// DrawRegion returns a copy of img with the outline of rect drawn on it.
//
// The outline is lineWidth pixels thick and grows inward from the rectangle
// edge. Parts of the rectangle outside the image are clipped, which happens
// regularly because the published rectangle includes fixed margins.
func DrawRegion(img image.Image, rect detection.Rectangle, c color.Color, lineWidth int) *image.RGBA {
	bounds := img.Bounds()
	result := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)

	if lineWidth < 1 {
		lineWidth = 1
	}
	x1, y1 := rect.X, rect.Y
	x2, y2 := rect.X+rect.Width, rect.Y+rect.Height

	fill := func(r image.Rectangle) {
		r = r.Intersect(result.Bounds())
		if !r.Empty() {
			draw.Draw(result, r, image.NewUniform(c), image.Point{}, draw.Src)
		}
	}

	// Top, bottom, left, right. Corners are inclusive, so the outer edge
	// is x2+1 / y2+1.
	fill(image.Rect(x1, y1, x2+1, y1+lineWidth))
	fill(image.Rect(x1, y2-lineWidth+1, x2+1, y2+1))
	fill(image.Rect(x1, y1, x1+lineWidth, y2+1))
	fill(image.Rect(x2-lineWidth+1, y1, x2+1, y2+1))

	return result
}

// AnnotateRegion outlines rect on img and returns the result as base64 PNG.
//
// colorHex is parsed with ParseColor; an invalid colour falls back to
// DefaultOutlineColor.
func AnnotateRegion(img image.Image, rect detection.Rectangle, colorHex string, lineWidth int) (*AnnotateResult, error) {
	c, err := ParseColor(colorHex)
	if err != nil {
		c, _ = ParseColor(DefaultOutlineColor)
	}

	result := DrawRegion(img, rect, c, lineWidth)

	encoded, err := encodePNG(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode annotated image: %w", err)
	}

	return &AnnotateResult{
		Width:       result.Bounds().Dx(),
		Height:      result.Bounds().Dy(),
		Region:      rect,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

func encodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/region-locator-mcp/internal/detection"
)

// CropResult contains the cropped region as a base64 PNG.
type CropResult struct {
	// Bounds is the part of the image actually cropped, after clamping the
	// requested rectangle to the image.
	Bounds      detection.Rectangle `json:"bounds"`
	Width       int                 `json:"width"`
	Height      int                 `json:"height"`
	ImageBase64 string              `json:"image_base64"`
	MimeType    string              `json:"mime_type"`
}

// ClampRegion converts rect (inclusive corners) to an image.Rectangle clipped
// to bounds. ok is false when nothing of rect lies inside the image.
func ClampRegion(rect detection.Rectangle, bounds image.Rectangle) (r image.Rectangle, ok bool) {
	r = image.Rect(
		bounds.Min.X+rect.X,
		bounds.Min.Y+rect.Y,
		bounds.Min.X+rect.X+rect.Width+1,
		bounds.Min.Y+rect.Y+rect.Height+1,
	).Intersect(bounds)
	return r, !r.Empty()
}

// CropRegion extracts the located region from img.
//
// The rectangle is clamped to the image first; a scale other than 1 resizes
// the crop with a Lanczos filter, which helps when the pattern is small in
// the photograph.
func CropRegion(img image.Image, rect detection.Rectangle, scale float64) (*CropResult, error) {
	r, ok := ClampRegion(rect, img.Bounds())
	if !ok {
		return nil, fmt.Errorf("region (%d,%d) %dx%d lies outside the image", rect.X, rect.Y, rect.Width, rect.Height)
	}

	cropped := imaging.Crop(img, r)

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %.3f shrinks the region to nothing", scale)
		}
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	encoded, err := encodePNG(cropped)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cropped image: %w", err)
	}

	origin := img.Bounds().Min
	return &CropResult{
		Bounds: detection.Rectangle{
			X:      r.Min.X - origin.X,
			Y:      r.Min.Y - origin.Y,
			Width:  r.Dx() - 1,
			Height: r.Dy() - 1,
		},
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

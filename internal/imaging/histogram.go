package imaging

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ironsheep/region-locator-mcp/internal/detection"
)

// DefaultHistogramBins is the bin count used when a caller asks for 0.
const DefaultHistogramBins = 64

// HistogramBin is one bucket of a luminance histogram.
type HistogramBin struct {
	// Low <= v < High.
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// HistogramResult contains the distribution of normalized luminance values.
type HistogramResult struct {
	Bins        []HistogramBin `json:"bins"`
	TotalPixels int            `json:"total_pixels"`

	// Flat is true when the image had a single luminance value and the
	// greyscale stage collapsed it to 0.
	Flat bool `json:"flat"`
}

// LuminanceHistogram bins the contrast-stretched greyscale of img into
// equal-width buckets over 0..255.
//
// It reads the same greyscale grid the detection pipeline starts from, so
// it shows what the gradient stage will see.
func LuminanceHistogram(img *detection.RGBImage, bins int) (*HistogramResult, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if bins == 0 {
		bins = DefaultHistogramBins
	}
	if bins < 1 || bins > 256 {
		return nil, fmt.Errorf("bins must be between 1 and 256, got %d", bins)
	}

	grey, flat := detection.Greyscale(img)

	values := make([]float64, 0, grey.Width*grey.Height)
	for _, row := range grey.Pix {
		for _, v := range row {
			values = append(values, float64(v))
		}
	}
	sort.Float64s(values)

	// Buckets are half-open, so the top divider is 256 to keep 255 in range.
	dividers := make([]float64, bins+1)
	floats.Span(dividers, 0, 256)

	counts := make([]float64, bins)
	if len(values) > 0 {
		stat.Histogram(counts, dividers, values, nil)
	}

	result := &HistogramResult{
		Bins:        make([]HistogramBin, bins),
		TotalPixels: len(values),
		Flat:        flat,
	}
	for i := range counts {
		result.Bins[i] = HistogramBin{
			Low:   dividers[i],
			High:  dividers[i+1],
			Count: int(counts[i]),
		}
	}
	return result, nil
}

package detection

import (
	"errors"
	"fmt"

	"github.com/ironsheep/region-locator-mcp/internal/logger"
)

// ErrNoRegion is returned by Locate when no foreground pixel survives
// binarization, component selection and dilation.
var ErrNoRegion = errors.New("no region found")

// DefaultThreshold is the binarization threshold used when none is given.
const DefaultThreshold = 70.0

const pipelineComponent = "detection"

// Stages holds every intermediate grid of one run.
type Stages struct {
	Greyscale  *Grid[uint8]
	Horizontal *Grid[float64]
	Vertical   *Grid[float64]
	Magnitude  *Grid[float64]
	Smoothed   *Grid[float64]
	Binary     *Grid[uint8]
	Component  *Grid[uint8]
	Dilated    *Grid[uint8]
}

// Result describes the region found by Locate.
type Result struct {
	// Region is the published rectangle: Raw plus the fixed margins.
	Region Rectangle `json:"region"`

	// Raw is the rectangle spanned by First and Last before inflation.
	Raw Rectangle `json:"raw"`

	// First and Last are the first foreground pixels in forward and reverse
	// raster order.
	First Point `json:"first"`
	Last  Point `json:"last"`

	// Components is how many 4-connected blobs survived binarization.
	Components int `json:"components"`

	// WinningArea is the pixel count of the component that was kept.
	WinningArea int `json:"winning_area"`

	// Degenerate is set when the input had a single luminance value.
	Degenerate bool `json:"degenerate"`

	// Mask is the dilated 0/1 grid the rectangle was read from.
	Mask *Grid[uint8] `json:"-"`

	// Stages is populated only when Locator.KeepStages is set.
	Stages *Stages `json:"-"`
}

// Locator runs the seven-stage localization pipeline.
//
// A Locator holds no per-run state and may be shared between goroutines;
// every call to Locate allocates its own grids.
type Locator struct {
	// Threshold is the binarization level applied to the smoothed grid.
	Threshold float64

	// Logger receives the flat-image warning and per-run debug lines.
	// A nil Logger discards them.
	Logger logger.Logger

	// KeepStages retains every intermediate grid in Result.Stages.
	KeepStages bool
}

// NewLocator returns a Locator with the given threshold.
func NewLocator(threshold float64, log logger.Logger) *Locator {
	return &Locator{Threshold: threshold, Logger: log}
}

// Locate finds the dominant high-contrast region in img.
//
// The input is validated before any stage runs; a malformed image yields an
// error wrapping ErrShapeMismatch. When nothing survives to the bounding box
// stage Locate returns ErrNoRegion together with a Result whose Mask (and
// Stages, if kept) show what happened.
func (l *Locator) Locate(img *RGBImage) (*Result, error) {
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("invalid input image: %w", err)
	}
	log := l.loggerOrNop()

	grey, flat := Greyscale(img)
	if flat {
		log.Warning(pipelineComponent, "image has a single luminance value, greyscale collapsed to 0", map[string]interface{}{
			"width":  img.Width,
			"height": img.Height,
		})
	}

	magnitude, gx, gy := gradients(grey)
	smoothed := MeanSmooth(magnitude)
	binary := Binarize(smoothed, l.Threshold)
	component, labeling := SelectLargestComponent(binary)
	dilated := Dilate(component)

	_, winningArea := labeling.Largest()
	res := &Result{
		Components:  labeling.Count(),
		WinningArea: winningArea,
		Degenerate:  flat,
		Mask:        dilated,
	}
	if l.KeepStages {
		res.Stages = &Stages{
			Greyscale:  grey,
			Horizontal: gx,
			Vertical:   gy,
			Magnitude:  magnitude,
			Smoothed:   smoothed,
			Binary:     binary,
			Component:  component,
			Dilated:    dilated,
		}
	}

	raw, first, last, ok := ExtractBounds(dilated)
	if !ok {
		log.Debug(pipelineComponent, "no foreground after dilation", map[string]interface{}{
			"threshold": l.Threshold,
		})
		return res, ErrNoRegion
	}

	res.Raw = raw
	res.First = first
	res.Last = last
	res.Region = InflateBounds(raw)

	log.Debug(pipelineComponent, "region located", map[string]interface{}{
		"threshold":    l.Threshold,
		"components":   res.Components,
		"winning_area": res.WinningArea,
		"x":            res.Region.X,
		"y":            res.Region.Y,
		"width":        res.Region.Width,
		"height":       res.Region.Height,
	})
	return res, nil
}

func (l *Locator) loggerOrNop() logger.Logger {
	if l.Logger == nil {
		return logger.Nop()
	}
	return l.Logger
}

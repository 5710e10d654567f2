package detection

import (
	"errors"
	"fmt"
)

// ErrUnknownStage is returned when a stage name is not one of StageNames.
var ErrUnknownStage = errors.New("unknown stage")

// StageNames lists the intermediate grids of a run in pipeline order.
var StageNames = []string{
	"greyscale",
	"horizontal",
	"vertical",
	"magnitude",
	"smoothed",
	"binary",
	"component",
	"dilated",
}

// Float returns the named intermediate grid converted to float64 samples.
// Gradient grids keep their sign.
func (s *Stages) Float(name string) (*Grid[float64], error) {
	switch name {
	case "greyscale":
		return ToFloat(s.Greyscale), nil
	case "horizontal":
		return s.Horizontal, nil
	case "vertical":
		return s.Vertical, nil
	case "magnitude":
		return s.Magnitude, nil
	case "smoothed":
		return s.Smoothed, nil
	case "binary":
		return ToFloat(s.Binary), nil
	case "component":
		return ToFloat(s.Component), nil
	case "dilated":
		return ToFloat(s.Dilated), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStage, name)
	}
}

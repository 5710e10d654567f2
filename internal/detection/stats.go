package detection

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GridStats summarizes the distribution of a grid's samples.
//
// It is mostly useful on the smoothed stage, where the binarization
// threshold is applied: a threshold between the median and P90 usually
// isolates the textured code pattern from flat surroundings.
type GridStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
	// AboveThreshold is the fraction of samples >= the threshold passed to
	// Summarize (0-1).
	AboveThreshold float64 `json:"above_threshold"`
}

// Summarize computes GridStats over every sample of g. Values are rounded
// to two decimals. An empty grid yields the zero GridStats.
func Summarize(g *Grid[float64], threshold float64) GridStats {
	values := make([]float64, 0, g.Width*g.Height)
	for _, row := range g.Pix {
		values = append(values, row...)
	}
	if len(values) == 0 {
		return GridStats{}
	}

	above := 0
	for _, v := range values {
		if v >= threshold {
			above++
		}
	}

	mean, std := stat.MeanStdDev(values, nil)
	sort.Float64s(values)

	return GridStats{
		Min:            round2(floats.Min(values)),
		Max:            round2(floats.Max(values)),
		Mean:           round2(mean),
		StdDev:         round2(zeroIfNaN(std)),
		Median:         round2(stat.Quantile(0.5, stat.Empirical, values, nil)),
		P90:            round2(stat.Quantile(0.9, stat.Empirical, values, nil)),
		P99:            round2(stat.Quantile(0.99, stat.Empirical, values, nil)),
		AboveThreshold: math.Round(float64(above)/float64(len(values))*1000) / 1000,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// zeroIfNaN covers the single-sample case, where the unbiased standard
// deviation is undefined.
func zeroIfNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

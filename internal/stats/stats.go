package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptySample is returned when summary statistics are requested over an
// empty sample. There is no defined answer, so callers must guard or handle it.
var ErrEmptySample = errors.New("empty sample")

// SummaryStats describes an empirical sample.
type SummaryStats struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Stdev  float64
}

// Summarize reduces a non-empty sample to its summary statistics.
// Stdev is the sample standard deviation, defined as 0 when the sample has
// fewer than 2 elements. The input slice is not modified.
func Summarize(sample []float64) (SummaryStats, error) {
	if len(sample) == 0 {
		return SummaryStats{}, ErrEmptySample
	}

	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	n := len(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	// Sample standard deviation needs at least 2 data points
	stdev := 0.0
	if n > 1 {
		var sqDiff float64
		for _, v := range sorted {
			d := v - mean
			sqDiff += d * d
		}
		stdev = math.Sqrt(sqDiff / float64(n-1))
	}

	return SummaryStats{
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   mean,
		Median: median,
		Stdev:  stdev,
	}, nil
}

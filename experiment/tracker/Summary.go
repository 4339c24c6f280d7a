package tracker

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds summary statistics of a tracked series
type Summary struct {
	Episodes  int
	Mean, Std float64
	Min, Max  float64
}

// Summarize computes summary statistics of data, which must not be
// empty
func Summarize(data []float64) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, fmt.Errorf("summarize: no data")
	}

	mean, std := stat.MeanStdDev(data, nil)
	if len(data) == 1 {
		std = 0
	}

	return Summary{
		Episodes: len(data),
		Mean:     mean,
		Std:      std,
		Min:      floats.Min(data),
		Max:      floats.Max(data),
	}, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("episodes: %d  |  mean: %.2f ± %.2f  |  min: %.2f  "+
		"|  max: %.2f", s.Episodes, s.Mean, s.Std, s.Min, s.Max)
}

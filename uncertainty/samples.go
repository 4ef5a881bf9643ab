package uncertainty

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// FromSamples estimates a quantity from repeated measurements: the sample
// mean with the sample standard deviation as uncertainty.
func FromSamples(samples []float64) (Quantity, error) {
	if len(samples) < 2 {
		return Quantity{}, opErr("samples", len(samples), ErrInsufficientSamples)
	}
	mean, std := stat.MeanStdDev(samples, nil)
	return New(mean, std), nil
}

// MeanOf estimates the mean of repeated measurements with the standard
// error of the mean as uncertainty.
func MeanOf(samples []float64) (Quantity, error) {
	if len(samples) < 2 {
		return Quantity{}, opErr("mean", len(samples), ErrInsufficientSamples)
	}
	mean, std := stat.MeanStdDev(samples, nil)
	return New(mean, stat.StdErr(std, float64(len(samples)))), nil
}

// WeightedMean combines independent measurements of the same quantity,
// weighting each by 1/u². The result's uncertainty is 1/sqrt(Σ 1/u²).
func WeightedMean(qs ...Quantity) (Quantity, error) {
	if len(qs) == 0 {
		return Quantity{}, opErr("weighted mean", 0, ErrInsufficientSamples)
	}

	values := make([]float64, len(qs))
	weights := make([]float64, len(qs))
	total := 0.0
	for i, q := range qs {
		if q.uncertainty == 0 {
			return Quantity{}, opErr("weighted mean", q, ErrZeroUncertainty)
		}
		values[i] = q.value
		weights[i] = 1 / (q.uncertainty * q.uncertainty)
		total += weights[i]
	}

	return New(stat.Mean(values, weights), 1/math.Sqrt(total)), nil
}

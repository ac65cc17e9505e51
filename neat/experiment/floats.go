package experiment

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Floats is a slice of samples -- per-generation fitness, age, or complexity
// across a population's genomes -- with descriptive statistics attached.
// Generation.Fill uses these to summarize a generation without keeping every
// genome around.
type Floats []float64

// Min returns the smallest value in the slice, or NaN if it is empty.
func (x Floats) Min() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Min(x)
}

// Max returns the greatest value in the slice, or NaN if it is empty.
func (x Floats) Max() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Max(x)
}

// Sum returns the total of the values in the slice.
func (x Floats) Sum() float64 {
	return floats.Sum(x)
}

// Mean returns the average of the values in the slice, or NaN if it is empty.
func (x Floats) Mean() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

// Variance returns the sample variance of the values in the slice.
func (x Floats) Variance() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Variance(x, nil)
}

// StdDev returns the sample standard deviation of the values in the slice.
func (x Floats) StdDev() float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.StdDev(x, nil)
}

// Median is the 50% empirical quantile.
func (x Floats) Median() float64 {
	return x.Quantile(0.5)
}

// Quantile returns the p-quantile (0 <= p <= 1) of the values in the slice,
// computed empirically.
func (x Floats) Quantile(p float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	sorted := append(Floats{}, x...)
	floats.Sort(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

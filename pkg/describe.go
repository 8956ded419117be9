package sampstat

import (
	"github.com/montanaflynn/stats"
)

// Mean returns the arithmetic mean of fs. An empty fs gives NaN.
func Mean(fs []float64) float64 {
	m, _ := stats.Mean(fs)
	return m
}

// SampleStandardDeviation is the two-pass, Bessel-corrected (n-1) standard
// deviation. Fewer than two observations give NaN.
func SampleStandardDeviation(fs []float64) float64 {
	sd, _ := stats.StandardDeviationSample(fs)
	return sd
}

// PopulationStandardDeviation is the two-pass standard deviation with divisor n.
func PopulationStandardDeviation(fs []float64) float64 {
	sd, _ := stats.StandardDeviationPopulation(fs)
	return sd
}

// Kind selects the divisor used for a standard deviation.
type Kind int

const (
	Sample Kind = iota
	Population
)

func (k Kind) String() string {
	switch k {
	case Sample:
		return "sample"
	case Population:
		return "population"
	default:
		return "unknown"
	}
}

// MinLen is the smallest sequence for which the deviation of kind k is defined.
func (k Kind) MinLen() int {
	if k == Population {
		return 1
	}
	return 2
}

func (k Kind) StandardDeviation(fs []float64) float64 {
	if k == Population {
		return PopulationStandardDeviation(fs)
	}
	return SampleStandardDeviation(fs)
}

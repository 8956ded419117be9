package sampstat

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Policy decides what happens to sequences that are too short for a
// statistic. Permissive, the default, lets NaN and Inf through the way
// unguarded float arithmetic produces them. Strict returns ErrInvalidInput.
type Policy int

const (
	Permissive Policy = iota
	Strict
)

func (p Policy) String() string {
	if p == Strict {
		return "strict"
	}
	return "permissive"
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	}
	return Permissive, errors.Newf("unknown policy %q", s)
}

func (p Policy) check(statistic string, min int, fs []float64) error {
	if p == Strict && len(fs) < min {
		return tooFew(statistic, min, len(fs))
	}
	return nil
}

func (p Policy) Mean(fs []float64) (float64, error) {
	if e := p.check("mean", 1, fs); e != nil {
		return 0, e
	}
	return Mean(fs), nil
}

func (p Policy) SampleStandardDeviation(fs []float64) (float64, error) {
	return p.StandardDeviation(Sample, fs)
}

func (p Policy) PopulationStandardDeviation(fs []float64) (float64, error) {
	return p.StandardDeviation(Population, fs)
}

func (p Policy) StandardDeviation(k Kind, fs []float64) (float64, error) {
	if e := p.check(k.String()+" standard deviation", k.MinLen(), fs); e != nil {
		return 0, e
	}
	return k.StandardDeviation(fs), nil
}

package sampstat

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// PlaceholderPValue is reported by every t-test until a Student's t CDF is
// wired in. It is not a probability computed from the data.
const PlaceholderPValue = 0.05

type TTestResult struct {
	T      float64
	PValue float64
	// Placeholder is true while PValue is PlaceholderPValue.
	Placeholder bool
}

// Formula picks how the two deviations are pooled under the square root.
type Formula int

const (
	// Legacy divides each standard deviation (not variance) by its count.
	Legacy Formula = iota
	// Welch divides each variance by its count.
	Welch
)

func (f Formula) String() string {
	if f == Welch {
		return "welch"
	}
	return "legacy"
}

func ParseFormula(s string) (Formula, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legacy":
		return Legacy, nil
	case "welch":
		return Welch, nil
	}
	return Legacy, errors.Newf("unknown t-test formula %q", s)
}

func (f Formula) pooled(a, b SampleStatistics) float64 {
	if f == Welch {
		return a.StandardError*a.StandardError/float64(a.N) + b.StandardError*b.StandardError/float64(b.N)
	}
	return a.StandardError/float64(a.N) + b.StandardError/float64(b.N)
}

func (f Formula) TTest(a, b SampleStatistics) TTestResult {
	delta := a.SampleMean - b.SampleMean
	t := delta / math.Sqrt(f.pooled(a, b))

	// TODO: derive PValue from a Student's t CDF once degrees of freedom are
	// carried on TTestResult.
	return TTestResult{T: t, PValue: PlaceholderPValue, Placeholder: true}
}

// TwoSampleTTest compares two samples with the Legacy formula. Zero counts or
// zero deviations give a non-finite T rather than an error.
func TwoSampleTTest(a, b SampleStatistics) TTestResult {
	return Legacy.TTest(a, b)
}

func WelchTTest(a, b SampleStatistics) TTestResult {
	return Welch.TTest(a, b)
}

func (p Policy) TTest(f Formula, a, b SampleStatistics) (TTestResult, error) {
	if p == Strict {
		if a.N < 2 {
			return TTestResult{}, tooFew("t-test first sample", 2, a.N)
		}
		if b.N < 2 {
			return TTestResult{}, tooFew("t-test second sample", 2, b.N)
		}
		if term := f.pooled(a, b); !(term > 0) || math.IsInf(term, 0) {
			return TTestResult{}, errors.Wrapf(ErrInvalidInput, "%v t-test: pooled term %v is not a positive finite number", f, term)
		}
	}
	return f.TTest(a, b), nil
}

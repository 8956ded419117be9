// Package sampstat computes descriptive statistics over float64 observations
// and a two-sample t-statistic from summarized samples.
//
// # Descriptive statistics
//
//	m := sampstat.Mean(xs)
//	sd := sampstat.SampleStandardDeviation(xs)      // divisor n-1
//	pd := sampstat.PopulationStandardDeviation(xs)  // divisor n
//
// These use naive two-pass summation and never fail: an empty sequence, or a
// single observation for the sample deviation, gives NaN. To get an error
// instead, go through a Policy:
//
//	sd, err := sampstat.Strict.SampleStandardDeviation(xs)
//	if errors.Is(err, sampstat.ErrInvalidInput) {
//	    // fewer than two observations
//	}
//
// # Summaries
//
//	a := sampstat.NewSampleStatistics(xs)
//	b := sampstat.NewSampleStatistics(ys)
//	res := sampstat.TwoSampleTTest(a, b)
//
// The StandardError field of SampleStatistics and PopulationStatistics holds
// the standard deviation. StandardErrorOfMean returns sd/sqrt(n).
//
// TwoSampleTTest pools each standard deviation divided by its count, which is
// not the textbook formula; WelchTTest pools variances. Neither computes a
// p-value yet: TTestResult.PValue is PlaceholderPValue and
// TTestResult.Placeholder is set.
package sampstat

package sampstat

import (
	"math"
)

// Summary is the shared view over SampleStatistics and PopulationStatistics.
type Summary interface {
	Mean() float64
	Deviation() float64
	Len() int
	StandardErrorOfMean() float64
}

// SampleStatistics summarizes a sample.
//
// StandardError holds the sample standard deviation, not the standard error
// of the mean. The name is kept for compatibility with existing consumers;
// use StandardErrorOfMean for sd/sqrt(n).
type SampleStatistics struct {
	SampleMean    float64
	StandardError float64
	N             int
}

// PopulationStatistics summarizes a whole population. As with
// SampleStatistics, StandardError holds the (population) standard deviation.
type PopulationStatistics struct {
	PopulationMean float64
	StandardError  float64
	N              int
}

func NewSampleStatistics(fs []float64) SampleStatistics {
	return SampleStatistics{
		SampleMean:    Mean(fs),
		StandardError: SampleStandardDeviation(fs),
		N:             len(fs),
	}
}

func NewPopulationStatistics(fs []float64) PopulationStatistics {
	return PopulationStatistics{
		PopulationMean: Mean(fs),
		StandardError:  PopulationStandardDeviation(fs),
		N:              len(fs),
	}
}

func (p Policy) SampleStatistics(fs []float64) (SampleStatistics, error) {
	if e := p.check("sample statistics", Sample.MinLen(), fs); e != nil {
		return SampleStatistics{}, e
	}
	return NewSampleStatistics(fs), nil
}

func (p Policy) PopulationStatistics(fs []float64) (PopulationStatistics, error) {
	if e := p.check("population statistics", Population.MinLen(), fs); e != nil {
		return PopulationStatistics{}, e
	}
	return NewPopulationStatistics(fs), nil
}

// Summarize builds the statistics value matching k.
func Summarize(k Kind, fs []float64) Summary {
	if k == Population {
		return NewPopulationStatistics(fs)
	}
	return NewSampleStatistics(fs)
}

func (p Policy) Summarize(k Kind, fs []float64) (Summary, error) {
	if e := p.check(k.String()+" statistics", k.MinLen(), fs); e != nil {
		return nil, e
	}
	return Summarize(k, fs), nil
}

func (s SampleStatistics) Mean() float64      { return s.SampleMean }
func (s SampleStatistics) Deviation() float64 { return s.StandardError }
func (s SampleStatistics) Len() int           { return s.N }

func (s SampleStatistics) StandardErrorOfMean() float64 {
	return s.StandardError / math.Sqrt(float64(s.N))
}

func (s PopulationStatistics) Mean() float64      { return s.PopulationMean }
func (s PopulationStatistics) Deviation() float64 { return s.StandardError }
func (s PopulationStatistics) Len() int           { return s.N }

func (s PopulationStatistics) StandardErrorOfMean() float64 {
	return s.StandardError / math.Sqrt(float64(s.N))
}

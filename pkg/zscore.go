package sampstat

// Zscores standardizes fs against its own mean and the standard deviation of
// kind k. A zero deviation gives NaN or Inf entries.
func Zscores(k Kind, fs []float64) []float64 {
	s := Summarize(k, fs)
	out := make([]float64, 0, len(fs))
	for _, f := range fs {
		out = append(out, (f-s.Mean())/s.Deviation())
	}
	return out
}

func (p Policy) Zscores(k Kind, fs []float64) ([]float64, error) {
	if e := p.check(k.String()+" z-scores", k.MinLen(), fs); e != nil {
		return nil, e
	}
	return Zscores(k, fs), nil
}

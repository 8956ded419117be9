package sampstat

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/jgbaldwinbrown/csvh"
)

// SummaryRow is one named Summary, usually one input file.
type SummaryRow struct {
	Name string
	Kind Kind
	Summary
}

// SummaryJson is the JSON form of a SummaryRow. Non-finite values become null.
type SummaryJson struct {
	Name                string
	Kind                string
	Mean                *float64
	Deviation           *float64
	N                   int
	StandardErrorOfMean *float64
}

type TTestRow struct {
	A       string
	B       string
	Formula Formula
	TTestResult
}

type TTestResultJson struct {
	A           string
	B           string
	Formula     string
	T           *float64
	PValue      *float64
	Placeholder bool
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func (r SummaryRow) Json() SummaryJson {
	return SummaryJson{
		Name:                r.Name,
		Kind:                r.Kind.String(),
		Mean:                finite(r.Mean()),
		Deviation:           finite(r.Deviation()),
		N:                   r.Len(),
		StandardErrorOfMean: finite(r.StandardErrorOfMean()),
	}
}

func (r TTestRow) Json() TTestResultJson {
	return TTestResultJson{
		A:           r.A,
		B:           r.B,
		Formula:     r.Formula.String(),
		T:           finite(r.T),
		PValue:      finite(r.PValue),
		Placeholder: r.Placeholder,
	}
}

func WriteSummaries(w io.Writer, rows ...SummaryRow) error {
	if _, e := fmt.Fprintf(w, "name\tkind\tmean\tdeviation\tn\tsem\n"); e != nil {
		return e
	}
	for _, r := range rows {
		if _, e := fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\t%v\n",
			r.Name, r.Kind, r.Mean(), r.Deviation(), r.Len(), r.StandardErrorOfMean(),
		); e != nil {
			return e
		}
	}
	return nil
}

func WriteSummariesJson(w io.Writer, rows ...SummaryRow) error {
	enc := json.NewEncoder(w)
	for _, r := range rows {
		if e := enc.Encode(r.Json()); e != nil {
			return e
		}
	}
	return nil
}

func WriteTTest(w io.Writer, r TTestRow) error {
	if _, e := fmt.Fprintf(w, "a\tb\tformula\tt\tp_value\tp_placeholder\n"); e != nil {
		return e
	}
	_, e := fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\t%v\n", r.A, r.B, r.Formula, r.T, r.PValue, r.Placeholder)
	return e
}

func WriteTTestJson(w io.Writer, r TTestRow) error {
	return json.NewEncoder(w).Encode(r.Json())
}

// WritePath creates path (gzipped if it ends in .gz) and hands it to write.
func WritePath(path string, write func(io.Writer) error) (err error) {
	w, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return e
	}
	defer func() { csvh.DeferE(&err, w.Close()) }()
	return write(w)
}

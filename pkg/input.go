package sampstat

import (
	"encoding/csv"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/iterh"
	"github.com/sirupsen/logrus"
)

// ReadOptions describes a delimited observation file. Column is zero-based.
// Delim defaults to a tab. Lines starting with '#' and blank lines are skipped.
type ReadOptions struct {
	Column int
	Header bool
	Delim  rune
}

func (o ReadOptions) delim() rune {
	if o.Delim == 0 {
		return '\t'
	}
	return o.Delim
}

func parseField(line []string, col int) (float64, error) {
	if col < 0 || col >= len(line) {
		return 0, errors.Wrapf(ErrParse, "column %v out of range for %v fields", col, len(line))
	}
	field := []string{strings.TrimSpace(line[col])}
	var f float64
	if _, e := csvh.Scan(field, &f); e != nil {
		return 0, errors.Mark(errors.Wrapf(e, "field %q", field[0]), ErrParse)
	}
	return f, nil
}

func ParseObservations(r io.Reader, opts ReadOptions) iter.Seq2[float64, error] {
	return func(y func(float64, error) bool) {
		h := csvh.Handle0("ParseObservations: %w")
		hl := func(e error, l []string) error {
			return errors.Wrapf(e, "ParseObservations: line %v", l)
		}
		cr := csvh.CsvIn(r)
		cr.Comma = opts.delim()
		cr.Comment = '#'
		cr.FieldsPerRecord = -1

		if opts.Header {
			_, e := cr.Read()
			if e == io.EOF {
				return
			}
			if e != nil {
				y(0, h(e))
				return
			}
		}

		for l, e := cr.Read(); e != io.EOF; l, e = cr.Read() {
			if e != nil {
				var pe *csv.ParseError
				if errors.As(e, &pe) {
					if !y(0, hl(errors.Mark(e, ErrParse), l)) {
						return
					}
					continue
				}
				y(0, h(e))
				return
			}
			f, e := parseField(l, opts.Column)
			if e != nil {
				if !y(0, hl(e, l)) {
					return
				}
				continue
			}
			if !y(f, nil) {
				return
			}
		}
	}
}

// ParseObservationsPath reads a possibly gzipped file. The path "-" reads
// standard input.
func ParseObservationsPath(path string, opts ReadOptions) iter.Seq2[float64, error] {
	return func(y func(float64, error) bool) {
		if path == "-" {
			for f, e := range ParseObservations(os.Stdin, opts) {
				if !y(f, e) {
					return
				}
			}
			return
		}
		r, e := csvh.OpenMaybeGz(path)
		if e != nil {
			y(0, errors.Wrapf(e, "ParseObservationsPath: %v", path))
			return
		}
		defer r.Close()
		for f, e := range ParseObservations(r, opts) {
			if !y(f, e) {
				return
			}
		}
	}
}

func ReadObservationsPath(path string, opts ReadOptions) ([]float64, error) {
	fs, e := iterh.CollectWithError(ParseObservationsPath(path, opts))
	if e != nil {
		return nil, e
	}
	logrus.Debugf("read %v observations from %v", len(fs), path)
	return fs, nil
}

// ReadPathList reads a file listing one input path per line.
func ReadPathList(path string) ([]string, error) {
	var e error
	var paths []string
	for line := range iterh.BreakOnError(iterh.PathIter(path, iterh.LineIter), &e) {
		if p := strings.TrimSpace(line); p != "" {
			paths = append(paths, p)
		}
	}
	if e != nil {
		return nil, errors.Wrapf(e, "ReadPathList: %v", path)
	}
	return paths, nil
}

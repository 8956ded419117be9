package sampstat

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidInput is returned in Strict mode when a sequence is too short for
// the requested statistic, or when a t-test would divide by zero.
var ErrInvalidInput = errors.New("invalid input")

// ErrParse marks rows of an observation file that could not be read.
var ErrParse = errors.New("observation parsing error")

func tooFew(statistic string, min, n int) error {
	return errors.Wrapf(ErrInvalidInput, "%v needs at least %v observations, got %v", statistic, min, n)
}

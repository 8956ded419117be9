package sampstat

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	cases := map[string]Policy{
		"":           Permissive,
		"permissive": Permissive,
		" Strict ":   Strict,
		"STRICT":     Strict,
	}
	for in, want := range cases {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParsePolicy("lenient")
	require.Error(t, err)
}

func TestStrictPolicy(t *testing.T) {
	_, err := Strict.Mean(nil)
	require.True(t, errors.Is(err, ErrInvalidInput))
	require.Contains(t, err.Error(), "mean needs at least 1 observations, got 0")

	_, err = Strict.SampleStandardDeviation([]float64{1})
	require.True(t, errors.Is(err, ErrInvalidInput))

	_, err = Strict.PopulationStandardDeviation(nil)
	require.True(t, errors.Is(err, ErrInvalidInput))

	sd, err := Strict.SampleStandardDeviation([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 1.0, sd)

	m, err := Strict.Mean([]float64{1, 3})
	require.NoError(t, err)
	require.Equal(t, 2.0, m)
}

func TestPermissivePolicy(t *testing.T) {
	m, err := Permissive.Mean(nil)
	require.NoError(t, err)
	require.True(t, math.IsNaN(m))

	sd, err := Permissive.SampleStandardDeviation([]float64{1})
	require.NoError(t, err)
	require.True(t, math.IsNaN(sd))

	pd, err := Permissive.StandardDeviation(Population, []float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, PopulationStandardDeviation([]float64{1, 2, 3}), pd)
}

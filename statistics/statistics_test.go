package statistics_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/stopwatch/statistics"
)

func TestAccessors(t *testing.T) {
	t.Parallel()

	s := statistics.New(2, 4, 4, 4, 5, 5, 7, 9)

	mean, err := s.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 5.0, mean, 1e-12)

	lo, err := s.Minimum()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, lo, 0)

	hi, err := s.Maximum()
	require.NoError(t, err)
	assert.InDelta(t, 9.0, hi, 0)

	median, err := s.Median()
	require.NoError(t, err)
	assert.InDelta(t, 4.5, median, 0)

	assert.InDelta(t, 40.0, s.Total(), 1e-12)

	variance, err := s.Variance()
	require.NoError(t, err)
	assert.InDelta(t, 32.0/7.0, variance, 1e-12)

	stdev, err := s.Stdev()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(32.0/7.0), stdev, 1e-12)

	pstdev, err := s.PopulationStdev()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, pstdev, 1e-12)
}

func TestMedianOdd(t *testing.T) {
	t.Parallel()

	median, err := statistics.New(3, 1, 2).Median()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, median, 0)
}

func TestInsufficientSamples(t *testing.T) {
	t.Parallel()

	empty := statistics.New()
	one := statistics.New(0.5)

	tcs := map[string]struct {
		get func() (float64, error)
	}{
		"mean of empty":     {get: empty.Mean},
		"minimum of empty":  {get: empty.Minimum},
		"maximum of empty":  {get: empty.Maximum},
		"median of empty":   {get: empty.Median},
		"pstdev of empty":   {get: empty.PopulationStdev},
		"variance of one":   {get: one.Variance},
		"stdev of one":      {get: one.Stdev},
		"variance of empty": {get: empty.Variance},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := tc.get()
			require.ErrorIs(t, err, statistics.ErrInsufficientSamples)
		})
	}

	assert.Zero(t, empty.Total())
}

func TestOrderingProperties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))

	for range 200 {
		s := statistics.New()

		n := 1 + rng.IntN(20)
		for range n {
			s.Add(rng.Float64() * 2)
		}

		lo, err := s.Minimum()
		require.NoError(t, err)
		hi, err := s.Maximum()
		require.NoError(t, err)
		mean, err := s.Mean()
		require.NoError(t, err)
		median, err := s.Median()
		require.NoError(t, err)

		assert.LessOrEqual(t, lo, median)
		assert.LessOrEqual(t, median, hi)
		assert.LessOrEqual(t, lo, mean)
		assert.LessOrEqual(t, mean, hi)
	}

	// Equal samples whose sum does not divide back exactly.
	s := statistics.New(0.1, 0.1, 0.1)
	mean, err := s.Mean()
	require.NoError(t, err)
	assert.LessOrEqual(t, mean, 0.1)
	assert.GreaterOrEqual(t, mean, 0.1)
}

func TestDump(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		values  []float64
		fields  []string
		want    string
		wantErr error
	}{
		"default fields": {
			values: []float64{0.2, 0.4},
			want:   "total=0.6000s, mean=0.3000s, min=0.2000s, median=0.3000s, max=0.4000s, stdev=0.1414s",
		},
		"single sample omits stdev": {
			values: []float64{0.2},
			want:   "total=0.2000s, mean=0.2000s, min=0.2000s, median=0.2000s, max=0.2000s",
		},
		"explicit stdev with one sample": {
			values: []float64{0.2},
			fields: []string{"hits", "stdev"},
			want:   "hits=1",
		},
		"empty keeps hits only": {
			values: nil,
			fields: []string{"hits", "total", "mean"},
			want:   "hits=0",
		},
		"aliases": {
			values: []float64{0.005, 0.015},
			fields: []string{"minimum", "maximum", "variance"},
			want:   "minimum=5.00ms, maximum=15.00ms, variance=50.00µs",
		},
		"field order preserved": {
			values: []float64{0.5},
			fields: []string{"max", "hits"},
			want:   "max=0.5000s, hits=1",
		},
		"unknown field": {
			values:  []float64{0.5},
			fields:  []string{"mean", "p99"},
			wantErr: statistics.ErrUnknownField,
		},
		"unknown field on empty": {
			fields:  []string{"p99"},
			wantErr: statistics.ErrUnknownField,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := statistics.New(tc.values...).Dump(tc.fields...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	s := statistics.New(0.25, 0.75)

	got, err := s.Format("hits,mean,  max")
	require.NoError(t, err)
	assert.Equal(t, "hits=2, mean=0.5000s, max=0.7500s", got)

	got, err = s.Format("")
	require.NoError(t, err)
	assert.Equal(t, s.String(), got)

	_, err = s.Format("mean, bogus")
	require.ErrorIs(t, err, statistics.ErrUnknownField)
}

func TestParseFields(t *testing.T) {
	t.Parallel()

	assert.Nil(t, statistics.ParseFields("  "))
	assert.Equal(t, []string{"a", "b", "c"}, statistics.ParseFields("a, b,c"))
	assert.Equal(t, []string{"hits"}, statistics.ParseFields("hits"))
}

func TestValidateFields(t *testing.T) {
	t.Parallel()

	require.NoError(t, statistics.ValidateFields(statistics.Fields()...))
	require.NoError(t, statistics.ValidateFields(statistics.DefaultFields()...))
	require.ErrorIs(t, statistics.ValidateFields("mean", "nope"), statistics.ErrUnknownField)
}

func TestAppendOnly(t *testing.T) {
	t.Parallel()

	s := statistics.New()
	s.Add(1)

	values := s.Values()
	values[0] = 42

	clone := s.Clone()
	clone.Add(2)

	assert.Equal(t, []float64{1}, s.Values())
	assert.Equal(t, 2, clone.Len())
	assert.Equal(t, 1, s.Len())
}

func TestDefaultFieldsIsACopy(t *testing.T) {
	t.Parallel()

	fields := statistics.DefaultFields()
	fields[0] = "hits"

	assert.Equal(t, []string{"total", "mean", "min", "median", "max", "stdev"}, statistics.DefaultFields())

	out, err := statistics.New(1).Dump()
	require.NoError(t, err)
	assert.Equal(t, "total=1.0000s, mean=1.0000s, min=1.0000s, median=1.0000s, max=1.0000s", out)
}

func TestMedianLeavesSamplesUnsorted(t *testing.T) {
	t.Parallel()

	s := statistics.New(3, 1, 2, 10)

	median, err := s.Median()
	require.NoError(t, err)
	assert.InDelta(t, 2.5, median, 1e-12)
	assert.Equal(t, []float64{3, 1, 2, 10}, s.Values())
}

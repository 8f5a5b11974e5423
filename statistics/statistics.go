package statistics

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
)

var (
	// ErrInsufficientSamples indicates an accessor needs more samples than
	// the [Statistics] holds.
	ErrInsufficientSamples = errors.New("insufficient samples")
	// ErrUnknownField indicates an unrecognized field name was requested.
	ErrUnknownField = errors.New("unknown field")
)

var defaultFields = []string{"total", "mean", "min", "median", "max", "stdev"}

// DefaultFields returns the fields rendered by [Statistics.Dump] when no
// field list is given.
func DefaultFields() []string {
	return slices.Clone(defaultFields)
}

var fieldSeparator = regexp.MustCompile(`, *`)

// Statistics is an append-only sequence of duration samples, in seconds.
//
// A Statistics is not safe for concurrent use.
type Statistics struct {
	values []float64
}

// New creates a [Statistics] holding the given samples.
func New(values ...float64) *Statistics {
	return &Statistics{values: slices.Clone(values)}
}

// Add appends one sample, in seconds.
func (s *Statistics) Add(value float64) {
	s.values = append(s.values, value)
}

// AddDuration appends d as a sample.
func (s *Statistics) AddDuration(d time.Duration) {
	s.Add(d.Seconds())
}

// Len returns the number of samples.
func (s *Statistics) Len() int {
	return len(s.values)
}

// Values returns a copy of all samples in insertion order.
func (s *Statistics) Values() []float64 {
	return slices.Clone(s.values)
}

// Clone returns an independent copy of s.
func (s *Statistics) Clone() *Statistics {
	return New(s.values...)
}

// Total returns the sum of all samples, or 0 when empty.
func (s *Statistics) Total() float64 {
	if len(s.values) == 0 {
		return 0
	}

	total, err := stats.Sum(s.values)
	must(err)

	return total
}

// Mean returns the arithmetic mean.
func (s *Statistics) Mean() (float64, error) {
	mean, err := s.compute("mean", 1, stats.Mean)
	if err != nil {
		return 0, err
	}

	// Rounding can push the quotient just outside the sample range.
	return min(max(mean, slices.Min(s.values)), slices.Max(s.values)), nil
}

// Minimum returns the smallest sample.
func (s *Statistics) Minimum() (float64, error) {
	return s.compute("minimum", 1, stats.Min)
}

// Maximum returns the largest sample.
func (s *Statistics) Maximum() (float64, error) {
	return s.compute("maximum", 1, stats.Max)
}

// Median returns the middle sample, or the mean of the two middle samples
// when the count is even.
func (s *Statistics) Median() (float64, error) {
	return s.compute("median", 1, stats.Median)
}

// Variance returns the sample variance (n-1 divisor).
func (s *Statistics) Variance() (float64, error) {
	return s.compute("variance", 2, stats.SampleVariance)
}

// Stdev returns the sample standard deviation.
func (s *Statistics) Stdev() (float64, error) {
	return s.compute("stdev", 2, stats.StandardDeviationSample)
}

// PopulationVariance returns the population variance (n divisor).
func (s *Statistics) PopulationVariance() (float64, error) {
	return s.compute("population variance", 1, stats.PopulationVariance)
}

// PopulationStdev returns the population standard deviation.
func (s *Statistics) PopulationStdev() (float64, error) {
	return s.compute("population stdev", 1, stats.StandardDeviationPopulation)
}

// Dump renders "field=value" pairs joined by ", " for the given fields, in
// order. With no fields, [DefaultFields] are used. Fields that need more
// samples than are available are skipped. An unknown field name fails with
// [ErrUnknownField].
func (s *Statistics) Dump(fields ...string) (string, error) {
	if len(fields) == 0 {
		fields = defaultFields
	}

	items := make([]string, 0, len(fields))

	for _, name := range fields {
		f, ok := lookupField(name)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
		}

		if len(s.values) < f.minSamples {
			continue
		}

		value, err := f.render(s)
		if err != nil {
			return "", fmt.Errorf("render %s: %w", name, err)
		}

		items = append(items, name+"="+value)
	}

	return strings.Join(items, ", "), nil
}

// Format renders the fields listed in spec, a comma-separated field list
// such as "mean, max". An empty spec renders [DefaultFields].
func (s *Statistics) Format(spec string) (string, error) {
	return s.Dump(ParseFields(spec)...)
}

// String renders [DefaultFields].
func (s *Statistics) String() string {
	out, err := s.Dump()
	if err != nil {
		return err.Error()
	}

	return out
}

func (s *Statistics) require(name string, n int) error {
	if len(s.values) < n {
		return fmt.Errorf("%w: %s needs at least %d, have %d",
			ErrInsufficientSamples, name, n, len(s.values))
	}

	return nil
}

// compute evaluates fn once s holds at least n samples.
func (s *Statistics) compute(name string, n int, fn func(stats.Float64Data) (float64, error)) (float64, error) {
	err := s.require(name, n)
	if err != nil {
		return 0, err
	}

	v, err := fn(s.values)
	if errors.Is(err, stats.ErrEmptyInput) {
		return 0, fmt.Errorf("%w: %s: %w", ErrInsufficientSamples, name, err)
	} else if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	return v, nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// ParseFields splits a comma-separated field list. Empty input yields nil.
func ParseFields(spec string) []string {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil
	}

	return fieldSeparator.Split(spec, -1)
}

// ValidateFields reports the first unknown name in fields, wrapped in
// [ErrUnknownField].
func ValidateFields(fields ...string) error {
	for _, name := range fields {
		if _, ok := lookupField(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
	}

	return nil
}

// Fields returns all recognized field names.
func Fields() []string {
	names := make([]string, 0, len(fieldTable))
	for _, f := range fieldTable {
		names = append(names, f.name)
	}

	return names
}

type field struct {
	render     func(*Statistics) (string, error)
	name       string
	minSamples int
}

func seconds(get func(*Statistics) (float64, error)) func(*Statistics) (string, error) {
	return func(s *Statistics) (string, error) {
		v, err := get(s)
		if err != nil {
			return "", err
		}

		return FormatSeconds(v), nil
	}
}

var fieldTable = []field{
	{
		name:       "hits",
		minSamples: 0,
		render: func(s *Statistics) (string, error) {
			return strconv.Itoa(s.Len()), nil
		},
	},
	{name: "total", minSamples: 1, render: seconds(func(s *Statistics) (float64, error) { return s.Total(), nil })},
	{name: "mean", minSamples: 1, render: seconds((*Statistics).Mean)},
	{name: "minimum", minSamples: 1, render: seconds((*Statistics).Minimum)},
	{name: "min", minSamples: 1, render: seconds((*Statistics).Minimum)},
	{name: "median", minSamples: 1, render: seconds((*Statistics).Median)},
	{name: "maximum", minSamples: 1, render: seconds((*Statistics).Maximum)},
	{name: "max", minSamples: 1, render: seconds((*Statistics).Maximum)},
	{name: "variance", minSamples: 2, render: seconds((*Statistics).Variance)},
	{name: "stdev", minSamples: 2, render: seconds((*Statistics).Stdev)},
	{name: "pstdev", minSamples: 1, render: seconds((*Statistics).PopulationStdev)},
}

func lookupField(name string) (field, bool) {
	for _, f := range fieldTable {
		if f.name == name {
			return f, true
		}
	}

	return field{}, false
}

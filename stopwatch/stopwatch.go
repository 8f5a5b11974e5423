package stopwatch

import (
	"time"

	"go.jacobcolvin.com/stopwatch/statistics"
)

// Stopwatch is a named, resumable aggregate of laps.
//
// Create instances with [New].
type Stopwatch struct {
	clock Clock
	// current is the running lap, if any. It is always the last element of
	// laps.
	current *Lap
	name    string
	laps    []*Lap
}

// Option configures a [Stopwatch].
type Option func(*Stopwatch)

// WithName sets the name shown by [Stopwatch.Report].
func WithName(name string) Option {
	return func(s *Stopwatch) {
		s.name = name
	}
}

// WithClock sets the [Clock] used for all laps.
func WithClock(clock Clock) Option {
	return func(s *Stopwatch) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New creates a stopped [Stopwatch] with no laps.
func New(opts ...Option) *Stopwatch {
	s := &Stopwatch{clock: SystemClock{}}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start opens a new lap. It does nothing while a lap is already running, so
// repeated calls never double count.
func (s *Stopwatch) Start() {
	if s.current != nil {
		return
	}

	lap := NewLap(s.clock)
	s.laps = append(s.laps, lap)
	s.current = lap
	lap.Start()
}

// Stop closes the running lap. It does nothing when no lap is running.
func (s *Stopwatch) Stop() {
	if s.current == nil {
		return
	}

	s.current.Stop()
	s.current = nil
}

// Time runs fn inside a lap. It calls [Stopwatch.Start] before fn and
// exactly one [Stopwatch.Stop] after it, however fn exits, including when
// the stopwatch was already running. The error of fn is returned unchanged.
func (s *Stopwatch) Time(fn func() error) error {
	s.Start()
	defer s.Stop()

	return fn()
}

// Reset discards all laps.
func (s *Stopwatch) Reset() {
	s.laps = nil
	s.current = nil
}

// Running reports whether a lap is being timed.
func (s *Stopwatch) Running() bool {
	return s.current != nil
}

// Name returns the stopwatch name.
func (s *Stopwatch) Name() string {
	return s.name
}

// Laps returns the elapsed time of every lap, in order.
func (s *Stopwatch) Laps() []time.Duration {
	laps := make([]time.Duration, len(s.laps))
	for i, lap := range s.laps {
		laps[i] = lap.Elapsed()
	}

	return laps
}

// Elapsed returns the sum of all laps, including the live interval of a
// running lap.
func (s *Stopwatch) Elapsed() time.Duration {
	var total time.Duration
	for _, lap := range s.laps {
		total += lap.Elapsed()
	}

	return total
}

// Statistics returns the lap durations as [statistics.Statistics].
func (s *Stopwatch) Statistics() *statistics.Statistics {
	stats := statistics.New()
	for _, d := range s.Laps() {
		stats.AddDuration(d)
	}

	return stats
}

// Report renders the total and, with more than one lap, the distribution of
// lap durations:
//
//	[Stopwatch#name] total=0.3000s, mean=0.1000s, min=..., median=..., max=..., stdev=...
func (s *Stopwatch) Report() string {
	tag := ""
	if s.name != "" {
		tag = "#" + s.name
	}

	fields := []string{"total"}
	if len(s.laps) > 1 {
		fields = statistics.DefaultFields()
	}

	out, err := s.Statistics().Dump(fields...)
	if err != nil {
		panic(err)
	}

	if len(s.laps) == 0 {
		out = "total=" + statistics.FormatSeconds(0)
	}

	return "[Stopwatch" + tag + "] " + out
}

// String renders the elapsed time with [statistics.FormatDuration].
func (s *Stopwatch) String() string {
	return statistics.FormatDuration(s.Elapsed())
}

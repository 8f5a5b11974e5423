package stopwatch

import "time"

// Lap is one resumable timed interval.
//
// Create instances with [NewLap].
type Lap struct {
	clock   Clock
	start   time.Time
	elapsed time.Duration
	running bool
}

// NewLap creates a stopped [Lap] that reads time from clock. A nil clock
// uses [SystemClock].
func NewLap(clock Clock) *Lap {
	if clock == nil {
		clock = SystemClock{}
	}

	return &Lap{clock: clock}
}

// Start begins timing. It does nothing if the lap is already running.
func (l *Lap) Start() {
	if l.running {
		return
	}

	l.start = l.clock.Now()
	l.running = true
}

// Stop folds the live interval into the accumulated time. It does nothing
// if the lap is not running.
func (l *Lap) Stop() {
	if !l.running {
		return
	}

	l.elapsed += l.delta()
	l.start = time.Time{}
	l.running = false
}

// Running reports whether the lap is being timed.
func (l *Lap) Running() bool {
	return l.running
}

// Elapsed returns the accumulated time plus the live interval when running.
func (l *Lap) Elapsed() time.Duration {
	if !l.running {
		return l.elapsed
	}

	return l.elapsed + l.delta()
}

func (l *Lap) delta() time.Duration {
	return max(l.clock.Now().Sub(l.start), 0)
}

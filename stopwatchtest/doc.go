// Package stopwatchtest provides helpers for testing code instrumented with
// the stopwatch packages.
//
// [Clock] is a manually advanced clock that satisfies [stopwatch.Clock], so
// elapsed times in tests are exact. [Recorder] is a report sink that keeps
// every message it receives.
//
//	clock := stopwatchtest.NewClock()
//	rec := &stopwatchtest.Recorder{}
//
//	p, err := profile.New(profile.WithClock(clock), profile.WithLogger(rec))
//	...
//	clock.Advance(time.Second)
//
// [JoinLF] builds expected multi-line output.
package stopwatchtest

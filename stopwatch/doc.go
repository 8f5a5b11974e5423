// Package stopwatch measures resumable wall-clock durations.
//
// A [Lap] is one timed interval that can be started and stopped repeatedly,
// accumulating elapsed time. A [Stopwatch] composes laps: every
// [Stopwatch.Start] after a full stop opens a new lap, and the elapsed time
// of the stopwatch is the sum of all of its laps.
//
//	sw := stopwatch.New(stopwatch.WithName("load"))
//
//	err := sw.Time(func() error {
//	    return load(ctx)
//	})
//
//	fmt.Println(sw.Report()) // [Stopwatch#load] total=0.1203s, ...
//
// Time is read from a [Clock], which defaults to the monotonic reading of
// [time.Now]. Neither type is safe for concurrent use.
package stopwatch

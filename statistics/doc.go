// Package statistics aggregates duration samples and renders descriptive
// statistics about them.
//
// A [Statistics] is an append-only sequence of samples, in seconds. Every
// accessor is computed from the full sequence at call time, so values stay
// exact under streaming updates:
//
//	s := statistics.New()
//	s.AddDuration(120 * time.Millisecond)
//	s.AddDuration(80 * time.Millisecond)
//
//	mean, err := s.Mean()
//
// [Statistics.Dump] renders a comma-joined list of named fields, skipping
// fields that need more samples than are available:
//
//	out, err := s.Dump("hits", "mean", "stdev")
//	// hits=2, mean=0.1000s, stdev=28.28ms
//
// Durations are rendered with [FormatSeconds].
package statistics

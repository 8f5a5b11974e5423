// Package caller identifies the code location that called into an
// instrumentation entry point.
//
// [Identify] resolves the frame two levels above itself, so that an entry
// point calling it directly gets the location of its own caller:
//
//	func Wrap(...) {
//	    c := caller.Identify(0) // the line that called Wrap
//	}
//
// Helpers that sit between the entry point and Identify pass the number of
// extra frames to skip.
package caller

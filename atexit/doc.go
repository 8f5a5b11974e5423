// Package atexit keeps a process-wide table of functions to run at orderly
// shutdown.
//
// Go has no interpreter exit hook, so programs drain the table themselves,
// typically with a deferred [Run] in main or by exiting through [Exit]:
//
//	func main() {
//	    defer atexit.Run()
//	    ...
//	}
//
// Functions run in reverse registration order. A [Registry] may be drained
// any number of times; each function runs at most once.
//
// [Default] is also hooked into [github.com/tebeka/atexit], so a program
// that terminates through that package's Exit or Fatal still flushes it.
package atexit

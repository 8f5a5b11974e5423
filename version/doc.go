// Package version reports build metadata of the stopwatch binary.
//
// [Version] and [BuildDate] are set at link time:
//
//	go build -ldflags "-X go.jacobcolvin.com/stopwatch/version.Version=v1.2.0"
//
// [Revision] is read from the VCS information embedded by the Go toolchain.
package version

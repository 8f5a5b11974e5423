package profile

import (
	"go.jacobcolvin.com/stopwatch/atexit"
	"go.jacobcolvin.com/stopwatch/caller"
	"go.jacobcolvin.com/stopwatch/log"
	"go.jacobcolvin.com/stopwatch/stopwatch"
)

const (
	// DefaultFormat is the interim report template of a [Profiler].
	DefaultFormat = "[[[bold][blue]{module}[/blue]:[green]{name}[/green][/bold]]]" +
		" ~ [magenta]{elapsed}[/magenta] - {statistics:hits, mean, min, median, max, stdev}"

	// DefaultFormatAtExit is the exit summary template of a [Profiler].
	DefaultFormatAtExit = "[[[bold][blue]{module}[/blue]:[green]{name}[/green][/bold]]]" +
		" {statistics:hits, total, mean, min, median, max, stdev}"

	// DefaultScopeFormat is the report template of a [Scope].
	DefaultScopeFormat = "[bold][[[blue]{module}[/blue]:[green]{function}[/green]:" +
		"[yellow]L{line}[/yellow]]][/bold] ~ [bold][magenta]{elapsed}[/magenta][/bold]{message}"
)

// Option configures a [Profiler] or a [Scope].
type Option func(*options)

type options struct {
	logger       Logger
	clock        stopwatch.Clock
	registry     *atexit.Registry
	caller       *caller.Caller
	name         string
	message      string
	format       string
	formatAtExit string
	reportEvery  int
	reportAtExit bool
	color        bool
}

func newOptions(format, formatAtExit string) *options {
	return &options{
		logger:       log.Stderr(),
		clock:        stopwatch.SystemClock{},
		registry:     atexit.Default,
		format:       format,
		formatAtExit: formatAtExit,
		reportEvery:  1,
		reportAtExit: true,
		color:        true,
	}
}

// WithName sets the name reported by the {name} field.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithReportEvery emits an interim report after every n-th sample. Values
// below one disable interim reports.
func WithReportEvery(n int) Option {
	return func(o *options) {
		o.reportEvery = n
	}
}

// WithReportAtExit controls whether the exit summary is registered.
func WithReportAtExit(enabled bool) Option {
	return func(o *options) {
		o.reportAtExit = enabled
	}
}

// WithFormat sets the interim report template, or the report template of a
// [Scope].
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithFormatAtExit sets the exit summary template.
func WithFormatAtExit(format string) Option {
	return func(o *options) {
		o.formatAtExit = format
	}
}

// WithLogger sets the report destination. The default is [log.Stderr].
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock sets the clock samples are measured with.
func WithClock(clock stopwatch.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithRegistry sets the registry the exit summary is registered with. The
// default is [atexit.Default].
func WithRegistry(registry *atexit.Registry) Option {
	return func(o *options) {
		if registry != nil {
			o.registry = registry
		}
	}
}

// WithCaller overrides the detected call site.
func WithCaller(c caller.Caller) Option {
	return func(o *options) {
		o.caller = &c
	}
}

// WithMessage sets the {message} of a [Scope]. Profilers ignore it.
func WithMessage(msg string) Option {
	return func(o *options) {
		o.message = msg
	}
}

// WithColor controls terminal styling in reports. Disable it for sinks that
// do not write to a terminal.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

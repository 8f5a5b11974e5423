package profile

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.jacobcolvin.com/stopwatch/caller"
	"go.jacobcolvin.com/stopwatch/statistics"
	"go.jacobcolvin.com/stopwatch/stopwatch"
)

// ErrInvalidFormat indicates a report template that cannot be compiled.
var ErrInvalidFormat = errors.New("invalid format")

// Logger receives rendered reports. Every [go.jacobcolvin.com/stopwatch/log.Sink]
// is a Logger.
type Logger interface {
	Info(msg string)
}

// Profiler aggregates timing samples for one call site and reports them.
//
// Wrap callables with [Func], [FuncErr], [Seq], [Seq2], [Async] or
// [Stream]; every completed invocation adds one sample. A Profiler is safe
// for concurrent use.
//
// Create instances with [New] or [Config.NewProfiler].
type Profiler struct {
	logger       Logger
	clock        stopwatch.Clock
	stats        *statistics.Statistics
	format       *template
	formatAtExit *template
	caller       caller.Caller
	name         string
	last         time.Duration
	reportEvery  int
	mu           sync.Mutex
}

// New creates a [Profiler] for the call site that calls New. With
// report-at-exit enabled (the default), [Profiler.Flush] is registered once
// with the registry set by [WithRegistry].
func New(opts ...Option) (*Profiler, error) {
	return newProfiler(caller.Identify(0), opts)
}

// Must returns p, or panics when err is not nil.
//
//	var timed = profile.Func(profile.Must(profile.New()), parse)
func Must(p *Profiler, err error) *Profiler {
	must(err)

	return p
}

func newProfiler(c caller.Caller, opts []Option) (*Profiler, error) {
	o := newOptions(DefaultFormat, DefaultFormatAtExit)
	for _, opt := range opts {
		opt(o)
	}

	if o.caller != nil {
		c = *o.caller
	}

	format, err := compileTemplate(o.format, profilerFields, o.color)
	if err != nil {
		return nil, err
	}

	formatAtExit, err := compileTemplate(o.formatAtExit, profilerFields, o.color)
	if err != nil {
		return nil, err
	}

	p := &Profiler{
		logger:       o.logger,
		clock:        o.clock,
		stats:        statistics.New(),
		format:       format,
		formatAtExit: formatAtExit,
		caller:       c,
		name:         o.name,
		reportEvery:  o.reportEvery,
	}

	if o.reportAtExit {
		o.registry.Register(p.Flush)
	}

	return p, nil
}

// Name returns the report name. It falls back to the wrapped function's
// name, then to the calling function.
func (p *Profiler) Name() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.displayName()
}

// Caller returns the call site the profiler was created at.
func (p *Profiler) Caller() caller.Caller {
	return p.caller
}

// Hits returns the number of recorded samples.
func (p *Profiler) Hits() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.stats.Len()
}

// Statistics returns a snapshot of the recorded samples.
func (p *Profiler) Statistics() *statistics.Statistics {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.stats.Clone()
}

// Flush reports the exit summary. Nothing is reported before the first
// sample.
func (p *Profiler) Flush() {
	p.mu.Lock()

	if p.stats.Len() == 0 {
		p.mu.Unlock()

		return
	}

	msg := p.formatAtExit.execute(p.values)
	p.mu.Unlock()

	p.logger.Info(msg)
}

// record adds one sample and emits an interim report when the cadence is
// due.
func (p *Profiler) record(d time.Duration) {
	p.mu.Lock()

	p.last = d
	p.stats.AddDuration(d)

	if p.reportEvery <= 0 || p.stats.Len()%p.reportEvery != 0 {
		p.mu.Unlock()

		return
	}

	msg := p.format.execute(p.values)
	p.mu.Unlock()

	p.logger.Info(msg)
}

// bind names the profiler after fn unless a name was already set.
func (p *Profiler) bind(fn any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.name == "" {
		p.name = caller.FuncName(fn)
	}
}

func (p *Profiler) stopwatch() *stopwatch.Stopwatch {
	return stopwatch.New(stopwatch.WithClock(p.clock))
}

func (p *Profiler) displayName() string {
	if p.name != "" {
		return p.name
	}

	return p.caller.Function
}

// values resolves template fields. Callers hold p.mu.
func (p *Profiler) values(name, spec string) string {
	switch name {
	case "name":
		return p.displayName()
	case "elapsed":
		return statistics.FormatDuration(p.last)
	case "hits":
		return fmt.Sprint(p.stats.Len())
	case "statistics":
		out, err := p.stats.Format(spec)
		must(err)

		return out
	}

	return callerValue(p.caller, name)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

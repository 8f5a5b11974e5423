package profile

import (
	"sync"
	"time"

	"go.jacobcolvin.com/stopwatch/caller"
	"go.jacobcolvin.com/stopwatch/statistics"
	"go.jacobcolvin.com/stopwatch/stopwatch"
)

// Scope times a block of code and reports it once when stopped:
//
//	s, err := profile.Start(profile.WithMessage("load index"))
//	if err != nil {
//		return err
//	}
//	defer s.Stop()
//
// Create instances with [Start].
type Scope struct {
	logger  Logger
	sw      *stopwatch.Stopwatch
	format  *template
	caller  caller.Caller
	name    string
	message string
	once    sync.Once
}

// Start starts a [Scope] at the call site that calls Start. The report
// template is set with [WithFormat] and defaults to [DefaultScopeFormat].
func Start(opts ...Option) (*Scope, error) {
	c := caller.Identify(0)

	o := newOptions(DefaultScopeFormat, "")
	for _, opt := range opts {
		opt(o)
	}

	if o.caller != nil {
		c = *o.caller
	}

	format, err := compileTemplate(o.format, scopeFields, o.color)
	if err != nil {
		return nil, err
	}

	s := &Scope{
		logger:  o.logger,
		sw:      stopwatch.New(stopwatch.WithClock(o.clock), stopwatch.WithName(o.name)),
		format:  format,
		caller:  c,
		name:    o.name,
		message: o.message,
	}
	s.sw.Start()

	return s, nil
}

// Stop stops the scope and returns its elapsed time. Only the first call
// reports.
func (s *Scope) Stop() time.Duration {
	s.once.Do(func() {
		s.sw.Stop()
		s.logger.Info(s.format.execute(s.values))
	})

	return s.sw.Elapsed()
}

func (s *Scope) values(field, _ string) string {
	switch field {
	case "name":
		if s.name == "" {
			return s.caller.Function
		}

		return s.name
	case "elapsed":
		return statistics.FormatDuration(s.sw.Elapsed())
	case "message":
		if s.message == "" {
			return ""
		}

		return " - " + s.message
	}

	return callerValue(s.caller, field)
}

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	charmlog "charm.land/log/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/rs/zerolog"
)

// Sink receives finished report messages.
type Sink interface {
	Info(msg string)
}

// NewSink creates a [Sink] writing to w in the given format. Messages are
// written at info severity and dropped when lvl is above [LevelInfo].
func NewSink(w io.Writer, lvl Level, f Format) Sink {
	switch f {
	case FormatText:
		return NewCharmSink(charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmLevel(lvl),
			ReportTimestamp: true,
			Formatter:       charmlog.TextFormatter,
		}))

	case FormatJSON:
		return NewSlogSink(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slogLevel(lvl),
		})))

	case FormatLogfmt:
		return NewSlogSink(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slogLevel(lvl),
		})))

	case FormatConsole:
		return NewZerologSink(zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
		}).Level(zerologLevel(lvl)).With().Timestamp().Logger())
	}

	if !lvl.passesInfo() {
		return Discard{}
	}

	return NewWriterSink(w)
}

// NewSinkFromStrings creates a [Sink] from level and format strings.
func NewSinkFromStrings(w io.Writer, level, format string) (Sink, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	f, err := ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewSink(w, lvl, f), nil
}

var (
	stderrOnce sync.Once
	stderrSink *WriterSink
)

// Stderr returns the shared [WriterSink] on standard error. Output passes
// through a [colorprofile.Writer], which adapts ANSI styling to the
// terminal and environment.
func Stderr() *WriterSink {
	stderrOnce.Do(func() {
		stderrSink = NewWriterSink(colorprofile.NewWriter(os.Stderr, os.Environ()))
	})

	return stderrSink
}

// WriterSink writes every message as one line. Safe for concurrent use.
//
// Create instances with [NewWriterSink].
type WriterSink struct {
	w  io.Writer
	mu sync.Mutex
}

// NewWriterSink creates a [WriterSink] writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Writer returns the destination of s.
func (s *WriterSink) Writer() io.Writer {
	return s.w
}

// Info writes msg followed by a newline. Write errors are dropped; a
// report sink has nowhere to send them.
func (s *WriterSink) Info(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:errcheck // Reports are best effort.
	io.WriteString(s.w, msg+"\n")
}

// SlogSink writes messages through a [*slog.Logger].
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a [SlogSink].
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger}
}

// Info logs msg at [slog.LevelInfo].
func (s *SlogSink) Info(msg string) {
	s.logger.Info(msg)
}

// CharmSink writes messages through a [*charmlog.Logger].
type CharmSink struct {
	logger *charmlog.Logger
}

// NewCharmSink creates a [CharmSink].
func NewCharmSink(logger *charmlog.Logger) *CharmSink {
	return &CharmSink{logger: logger}
}

// Info logs msg at info level.
func (s *CharmSink) Info(msg string) {
	s.logger.Info(msg)
}

// ZerologSink writes messages through a [zerolog.Logger].
type ZerologSink struct {
	logger zerolog.Logger
}

// NewZerologSink creates a [ZerologSink].
func NewZerologSink(logger zerolog.Logger) *ZerologSink {
	return &ZerologSink{logger: logger}
}

// Info logs msg at info level.
func (s *ZerologSink) Info(msg string) {
	s.logger.Info().Msg(msg)
}

// Discard is a [Sink] that drops every message.
type Discard struct{}

// Info does nothing.
func (Discard) Info(string) {}

func slogLevel(lvl Level) slog.Level {
	switch lvl {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

func charmLevel(lvl Level) charmlog.Level {
	switch lvl {
	case LevelError:
		return charmlog.ErrorLevel
	case LevelWarn:
		return charmlog.WarnLevel
	case LevelDebug:
		return charmlog.DebugLevel
	}

	return charmlog.InfoLevel
}

func zerologLevel(lvl Level) zerolog.Level {
	switch lvl {
	case LevelError:
		return zerolog.ErrorLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelDebug:
		return zerolog.DebugLevel
	}

	return zerolog.InfoLevel
}

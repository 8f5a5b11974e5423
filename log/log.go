package log

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Level represents a sink severity threshold. Reports are written at
// [LevelInfo], so thresholds above it silence them.
type Level string

const (
	// LevelError only passes errors.
	LevelError Level = "error"
	// LevelWarn passes warnings and errors.
	LevelWarn Level = "warn"
	// LevelInfo passes reports.
	LevelInfo Level = "info"
	// LevelDebug passes everything.
	LevelDebug Level = "debug"
)

// Format represents the sink output format.
type Format string

const (
	// FormatPlain writes each message as one line.
	FormatPlain Format = "plain"
	// FormatText writes human-readable log lines.
	FormatText Format = "text"
	// FormatJSON writes JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt writes logfmt lines.
	FormatLogfmt Format = "logfmt"
	// FormatConsole writes colored console lines.
	FormatConsole Format = "console"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

var (
	allLevels  = []Level{LevelError, LevelWarn, LevelInfo, LevelDebug}
	allFormats = []Format{FormatPlain, FormatText, FormatJSON, FormatLogfmt, FormatConsole}
)

// ParseLevel parses a log level string. "warning" is accepted as an alias
// of "warn"; matching is case insensitive.
func ParseLevel(level string) (Level, error) {
	lvl := Level(strings.ToLower(level))
	if lvl == "warning" {
		return LevelWarn, nil
	}

	if slices.Contains(allLevels, lvl) {
		return lvl, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
}

// ParseFormat parses a log format string, case insensitively.
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if slices.Contains(allFormats, f) {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
}

// GetAllLevelStrings returns all level names, most severe first.
func GetAllLevelStrings() []string {
	out := make([]string, len(allLevels))
	for i, l := range allLevels {
		out[i] = string(l)
	}

	return out
}

// GetAllFormatStrings returns all format names.
func GetAllFormatStrings() []string {
	out := make([]string, len(allFormats))
	for i, f := range allFormats {
		out[i] = string(f)
	}

	return out
}

// passesInfo reports whether a sink at lvl writes info messages.
func (l Level) passesInfo() bool {
	return l == LevelInfo || l == LevelDebug
}

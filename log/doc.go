// Package log provides the sinks that instrumentation reports are written
// to.
//
// A [Sink] receives one finished report message at a time through
// [Sink.Info]. Sinks exist for several output styles:
//
//   - [FormatPlain]: [WriterSink], one line per message, as written.
//   - [FormatText]: [CharmSink], human-readable lines via [charm.land/log/v2].
//   - [FormatJSON] and [FormatLogfmt]: [SlogSink], via [log/slog].
//   - [FormatConsole]: [ZerologSink], via [github.com/rs/zerolog].
//
// Use [NewSink] to create a sink directly, or use [Config] with CLI flag
// integration via [github.com/spf13/pflag] and shell completion support via
// [github.com/spf13/cobra]:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	sink, err := cfg.NewSink(os.Stderr)
//
// [Stderr] returns the default sink: a [WriterSink] on standard error that
// downsamples ANSI styling to what the terminal supports, and strips it
// when standard error is not a terminal or NO_COLOR is set.
package log

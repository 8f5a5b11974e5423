// Package profile instruments callables with timing reports.
//
// A [Profiler] belongs to one call site. It owns the samples recorded there
// and reports them through a [Logger]: an interim report after every n-th
// sample, and a summary when the process exits. Wrappers keep the shape of
// the wrapped callable:
//
//   - [Func] and [FuncErr] for plain calls, and [Func0] and [FuncErr0]
//     when there is no argument. Functions of several arguments are
//     wrapped through a struct or a closure.
//   - [Seq] and [Seq2] for functions returning iterators.
//   - [Async] for functions delivering one result on a channel.
//   - [Stream] for functions producing values on a channel.
//
// Every completed invocation adds one sample. Failed, panicking and
// cancelled invocations add none, and their errors pass through unchanged.
//
//	var parse = profile.FuncErr(profile.Must(profile.New(
//		profile.WithReportEvery(100),
//	)), parseDocument)
//
// Reports are rendered from templates. Templates use
// [go.jacobcolvin.com/stopwatch/markup] tags for styling and "{field}"
// placeholders for values: {module}, {function}, {line}, {name},
// {elapsed}, {hits} and {statistics}. The statistics field takes an
// optional field list, e.g. "{statistics:mean, max}". Literal braces are
// written "{{" and "}}".
//
// Exit summaries are registered with an
// [go.jacobcolvin.com/stopwatch/atexit.Registry]; programs call
// [go.jacobcolvin.com/stopwatch/atexit.Run] before they return.
//
// For one-off blocks, [Start] returns a [Scope] that reports once when
// stopped.
//
// [Config] exposes the reporting settings as CLI flags via
// [github.com/spf13/pflag] and as a YAML file:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	err := cfg.LoadFile("stopwatch.yaml", rootCmd.PersistentFlags())
//	p, err := cfg.NewProfiler(profile.WithName("build"))
package profile

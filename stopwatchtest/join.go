package stopwatchtest

import "strings"

// JoinLF joins lines with LF line endings, for expected output such as the
// lines written by a [log.WriterSink]:
//
//	want := stopwatchtest.JoinLF(
//		"first report",
//		"second report",
//		"",
//	) // -> "first report\nsecond report\n"
//
// [log.WriterSink]: go.jacobcolvin.com/stopwatch/log.WriterSink
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}

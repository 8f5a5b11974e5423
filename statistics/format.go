package statistics

import (
	"fmt"
	"time"
)

// FormatSeconds renders a duration given in seconds using the largest unit
// whose threshold it reaches:
//
//	>= 0.1     "%.4fs"
//	>= 1e-3    "%.2fms"
//	>= 1e-6    "%.2fµs"
//	otherwise  "%.2fns"
func FormatSeconds(value float64) string {
	switch {
	case value >= 0.1:
		return fmt.Sprintf("%.4fs", value)
	case value >= 1e-3:
		return fmt.Sprintf("%.2fms", value*1e3)
	case value >= 1e-6:
		return fmt.Sprintf("%.2fµs", value*1e6)
	}

	return fmt.Sprintf("%.2fns", value*1e9)
}

// FormatDuration renders d with [FormatSeconds].
func FormatDuration(d time.Duration) string {
	return FormatSeconds(d.Seconds())
}

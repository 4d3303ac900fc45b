package render

import (
	"fmt"
	"strings"
)

// ProgressBar renders a fixed-width ASCII bar for current/total counts,
// e.g. "[==========          ] 50%". Totals of zero render an empty bar;
// current is clamped to total.
func ProgressBar(current, total, width int) string {
	if width <= 0 {
		width = 20
	}

	ratio := 0.0
	if total > 0 {
		ratio = float64(current) / float64(total)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	filled := int(ratio * float64(width))
	return fmt.Sprintf("[%s%s] %d%%",
		strings.Repeat("=", filled),
		strings.Repeat(" ", width-filled),
		int(ratio*100))
}

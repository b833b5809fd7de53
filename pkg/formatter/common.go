package formatter

import (
	"fmt"
	"io"
	"time"
)

// printTimestamp prints when a run started and how long it took
func printTimestamp(out io.Writer, started time.Time, took time.Duration) {
	if started.IsZero() {
		return
	}

	// Format the start time
	timeStr := started.Format("2006-01-02 15:04:05")

	// Format the duration
	durationStr := fmt.Sprintf("%.2fs", took.Seconds())

	fmt.Fprintf(out, "Run started at %s (took %s)\n", timeStr, durationStr)
}

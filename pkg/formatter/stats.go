package formatter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/younsl/justify/internal/models"
)

// PrintRunStats prints the statistics of a justify run
func PrintRunStats(out io.Writer, stats models.RunStats) {
	fmt.Fprintln(out, "\n## Justify Statistics")
	printTimestamp(out, stats.Started, stats.Duration)

	// Use tabwriter for clean tabular output
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)

	// Print header
	fmt.Fprintln(w, "SOURCE\tWIDTH\tMODE\tLINES\tOUTPUT LINES\tINPUT\tOUTPUT\tDURATION\tTHROUGHPUT")

	fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%.2fs\t%s/s\n",
		stats.Source,
		stats.Width,
		stats.Mode,
		humanize.Comma(stats.Lines),
		humanize.Comma(stats.OutputLines),
		humanize.Bytes(stats.InputBytes),
		humanize.Bytes(stats.OutputBytes),
		stats.Duration.Seconds(),
		humanize.Bytes(stats.Throughput()),
	)

	w.Flush()
}

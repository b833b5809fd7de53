package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/younsl/justify/internal/models"
	"github.com/younsl/justify/pkg/justify"
)

// process justifies every line read from in independently and writes each
// result followed by a newline to out.
func process(in io.Reader, out io.Writer, s justify.Settings, logger *slog.Logger) (stats models.RunStats, err error) {
	stats = models.RunStats{Width: s.Width, Mode: s.Mode.String(), Started: time.Now()}
	defer func() { stats.Duration = time.Since(stats.Started) }()

	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)
	defer w.Flush()

	for {
		line, rerr := r.ReadString('\n')
		if len(line) > 0 {
			stats.Lines++
			stats.InputBytes += uint64(len(line))

			text := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			res, jerr := justify.Justify(text, s)
			if jerr != nil {
				return stats, fmt.Errorf("line %d: %w", stats.Lines, jerr)
			}
			logger.Debug("justified line",
				"line", stats.Lines,
				"in_bytes", len(line),
				"out_bytes", len(res)+1)

			n, werr := fmt.Fprintln(w, res)
			if werr != nil {
				return stats, fmt.Errorf("write output: %w", werr)
			}
			stats.OutputBytes += uint64(n)
			stats.OutputLines += int64(strings.Count(res, "\n") + 1)
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return stats, fmt.Errorf("read input: %w", rerr)
		}
	}

	if err := w.Flush(); err != nil {
		return stats, fmt.Errorf("write output: %w", err)
	}
	return stats, nil
}

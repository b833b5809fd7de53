package models

import "time"

// RunStats holds counters collected while justifying an input stream.
type RunStats struct {
	Source      string // "stdin" or the input file path
	Width       int
	Mode        string // Measurement mode name
	Lines       int64  // Input lines read
	OutputLines int64  // Lines written, including paragraph separators
	InputBytes  uint64
	OutputBytes uint64
	Started     time.Time
	Duration    time.Duration
}

// Throughput returns input bytes per second, or 0 for an instant run.
func (s RunStats) Throughput() uint64 {
	if s.Duration <= 0 {
		return 0
	}
	return uint64(float64(s.InputBytes) / s.Duration.Seconds())
}

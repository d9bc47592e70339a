package sink

import (
	"encoding/json"
	"fmt"
	"os"
)

// StatsLog appends run records to a shared JSON-lines file. Each invocation
// opens the file in append mode, writes one line, and closes it, so prior
// entries are never rewritten and a failed sink elsewhere in the run cannot
// leave a partial record behind.
type StatsLog struct {
	path string
}

// NewStatsLog creates a StatsLog targeting the given file path. The file is
// not opened until Append is called.
func NewStatsLog(path string) *StatsLog {
	return &StatsLog{path: path}
}

// Path returns the log file path.
func (s *StatsLog) Path() string {
	return s.path
}

// Append writes one record as a single JSON line.
func (s *StatsLog) Append(rec RunRecord) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open stats log: %w", err)
	}

	enc := json.NewEncoder(f)
	if err := enc.Encode(rec); err != nil {
		f.Close()
		return fmt.Errorf("append run record: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close stats log: %w", err)
	}

	return nil
}

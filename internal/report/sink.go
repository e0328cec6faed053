package report

import (
	"fmt"
	"os"
)

// Sink persists a finished report text.
type Sink interface {
	Persist(text string) error
	Path() string
}

// FileSink writes the report to a fixed-name file, replacing any
// previous report.
type FileSink struct {
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Persist(text string) error {
	if err := os.WriteFile(s.path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write report to %s: %w", s.path, err)
	}
	return nil
}

func (s *FileSink) Path() string { return s.path }

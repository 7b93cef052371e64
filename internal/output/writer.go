// Package output persists generated documents to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default output locations, relative to the working directory.
const (
	DefaultResumePath   = "custom_resume_ats_optimized.txt"
	DefaultFeedbackPath = "recruiter_feedback.txt"
)

// WriteError represents a failure to persist an output document
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// WriteText writes text to path, replacing any existing file.
// Missing parent directories are created.
func WriteText(path, text string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &WriteError{Path: path, Cause: err}
		}
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	return nil
}

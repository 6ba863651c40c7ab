package ingestion

import "fmt"

// SkipError signals that a listed document is absent or unreadable. Callers
// log it and exclude the document from results; the run continues.
type SkipError struct {
	Document string
	Cause    error
}

func (e *SkipError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skipping document %s: %v", e.Document, e.Cause)
	}
	return fmt.Sprintf("skipping document %s", e.Document)
}

func (e *SkipError) Unwrap() error {
	return e.Cause
}

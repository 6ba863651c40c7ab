package types

import "fmt"

// InputError represents a malformed or missing persona/job field in the input
// configuration. It is fatal and aborts the run.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("input error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("input error: %s", e.Message)
}

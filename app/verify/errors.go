package verify

import (
	"errors"
	"fmt"
)

// sentinel errors for run failures
var (
	ErrNotReady        = errors.New("vault did not become idle")
	ErrEmptyScreenshot = errors.New("empty screenshot")
	ErrNotPNG          = errors.New("screenshot is not a png")
)

// StepError reports which scenario step failed.
type StepError struct {
	Step string
	Err  error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("step %q: %v", e.Step, e.Err)
}

// Unwrap returns the underlying error.
func (e *StepError) Unwrap() error {
	return e.Err
}

package filter

import (
	"errors"
	"fmt"
)

// ErrFilterNotFound is returned when a named filter is not registered
var ErrFilterNotFound = errors.New("filter not found")

// Error types for filter operations
type (
	// CompilationError indicates a filter expression could not be compiled
	CompilationError struct {
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError indicates a filter could not be evaluated against a result
	EvaluationError struct {
		Expression string
		ItemID     string
		Reason     string
		Err        error
	}
)

func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compilation error in '%s': %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error for filter '%s' on item '%s': %s", e.Expression, e.ItemID, e.Reason)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

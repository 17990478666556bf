package enrich

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingColumn matches a *MissingColumnError
	ErrMissingColumn = errors.New("missing column")
	// ErrUnexpected matches any *StageError
	ErrUnexpected = errors.New("unexpected error")
)

// MissingColumnError reports an input table without the required column.
// It is a reported condition rather than a failure: nothing is written.
type MissingColumnError struct {
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found (available: %s)", e.Column, strings.Join(e.Available, ", "))
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// StageError wraps a failure outside the input taxonomy with the pass stage
// it happened in
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func (e *StageError) Is(target error) bool {
	return target == ErrUnexpected
}

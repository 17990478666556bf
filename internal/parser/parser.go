// Package parser loads delimited result tables from disk.
package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound means the input path does not name a readable file
	ErrInputNotFound = errors.New("input not found")
	// ErrMalformedInput means the file could not be parsed as a table
	ErrMalformedInput = errors.New("malformed input")
)

// ParseError represents a loading error with a specific stage
type ParseError struct {
	Stage string
	Path  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s stage for %s: %v", e.Stage, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(stage, path string, err error) *ParseError {
	return &ParseError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}

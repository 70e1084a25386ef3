package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDataLoad matches any DataLoadError.
	ErrDataLoad = errors.New("data load failed")
	// ErrColumnNotFound matches any ColumnNotFoundError.
	ErrColumnNotFound = errors.New("column not found")
	// ErrInvalidArgument matches any InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
)

// DataLoadError reports that a dataset could not be read. Line is the 1-based
// line of the offending record, or zero when the failure is not tied to one.
type DataLoadError struct {
	Source string
	Line   int
	Err    error
}

func (e *DataLoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s: line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

func (e *DataLoadError) Is(target error) bool { return target == ErrDataLoad }

// ColumnNotFoundError reports a column that is unknown or of the wrong kind
// for the requested operation.
type ColumnNotFoundError struct {
	Column string
	Want   ColumnKind
}

func (e *ColumnNotFoundError) Error() string {
	if e.Want != KindUnknown {
		return fmt.Sprintf("column %q not found or not %s", e.Column, e.Want)
	}
	return fmt.Sprintf("column %q not found", e.Column)
}

func (e *ColumnNotFoundError) Is(target error) bool { return target == ErrColumnNotFound }

// InvalidArgumentError reports a caller contract violation.
type InvalidArgumentError struct {
	Name   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Name, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// Package errors provides custom error types for the routelint system.
// These errors enable programmatic error checking and carry the record
// path through the batch loop so one bad file never aborts a scan.
package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors for the routelint system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformed indicates that a file could not be parsed at all
	ErrMalformed = errors.New("malformed input")

	// ErrReferenceList indicates that the canonical reference list could
	// not be loaded. This is the only batch-aborting condition.
	ErrReferenceList = errors.New("reference list unavailable")
)

// ParseError represents a record file that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}

// NewParseError creates a new ParseError
func NewParseError(path string, err error) *ParseError {
	return &ParseError{Path: path, Err: err}
}

// SchemaError represents a record with a missing or mistyped required field.
type SchemaError struct {
	Path    string
	Field   string
	Message string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field %s: %s", e.Path, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(path, field, message string) *SchemaError {
	return &SchemaError{Path: path, Field: field, Message: message}
}

// ReferenceError represents a failure to load or decode the canonical
// reference list. Unlike per-record errors it aborts the batch.
type ReferenceError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *ReferenceError) Error() string {
	return fmt.Sprintf("reference list %s: %v", e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReferenceList
}

// NewReferenceError creates a new ReferenceError
func NewReferenceError(path string, err error) *ReferenceError {
	return &ReferenceError{Path: path, Err: err}
}

// IOError represents a filesystem operation failure.
type IOError struct {
	Op   string // Operation: "read", "write", "walk"
	Path string
	Err  error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Err: err}
}

// RepairError represents a failed StartGameMapId insertion.
type RepairError struct {
	Path    string
	Message string
}

// Error implements the error interface
func (e *RepairError) Error() string {
	return fmt.Sprintf("repair %s: %s", e.Path, e.Message)
}

// NewRepairError creates a new RepairError
func NewRepairError(path, message string) *RepairError {
	return &RepairError{Path: path, Message: message}
}

// Is reports whether any error in err's chain matches target.
// It's an alias for the standard library errors.Is.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// It's an alias for the standard library errors.As.
var As = errors.As

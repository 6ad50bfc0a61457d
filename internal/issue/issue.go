// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing errors that carry enough context to fix
// the problem: the operation that failed, the resource involved, and concrete
// suggestions. The CLI layer renders them; library packages only build them.
package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError is an error with context for user-facing error messages.
type ActionableError struct {
	// Operation describes what was being attempted ("scan declarations",
	// "transcode audio").
	Operation string

	// Resource identifies the file, path, or entity involved (optional).
	Resource string

	// Suggestions are hints on how to fix the issue (optional).
	Suggestions []string

	// Cause is the underlying error (optional).
	Cause error
}

// New creates an ActionableError for the given operation.
func New(operation string) *ActionableError {
	return &ActionableError{Operation: operation}
}

// Wrap wraps err with operation context. Returns nil for a nil err so call
// sites can wrap unconditionally.
func Wrap(err error, operation string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Cause: err}
}

// WithResource sets the resource and returns the error for chaining.
func (e *ActionableError) WithResource(resource string) *ActionableError {
	e.Resource = resource
	return e
}

// WithSuggestion appends a suggestion and returns the error for chaining.
func (e *ActionableError) WithSuggestion(s string) *ActionableError {
	e.Suggestions = append(e.Suggestions, s)
	return e
}

// WithCause sets the underlying error and returns the error for chaining.
func (e *ActionableError) WithCause(err error) *ActionableError {
	e.Cause = err
	return e
}

// Error implements the error interface with a single-line summary.
func (e *ActionableError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "failed to %s", e.Operation)
	if e.Resource != "" {
		fmt.Fprintf(&b, " (%s)", e.Resource)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap exposes the cause for errors.Is/errors.As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders a multi-line, user-facing message. Verbose mode includes the
// full cause chain; otherwise only the immediate cause is shown.
func (e *ActionableError) Format(verbose bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "failed to %s", e.Operation)
	if e.Resource != "" {
		fmt.Fprintf(&b, "\n  resource: %s", e.Resource)
	}
	if e.Cause != nil {
		if verbose {
			for c := e.Cause; c != nil; c = errors.Unwrap(c) {
				fmt.Fprintf(&b, "\n  cause: %v", c)
			}
		} else {
			fmt.Fprintf(&b, "\n  cause: %v", e.Cause)
		}
	}
	for _, s := range e.Suggestions {
		fmt.Fprintf(&b, "\n  hint: %s", s)
	}
	return b.String()
}

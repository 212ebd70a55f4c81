// Package apperr defines the error taxonomy the query layer reports to the
// HTTP dispatcher: validation failures and entity lookups that found nothing.
// Store failures stay ordinary wrapped errors and map to a generic 500.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports malformed or out-of-range input. It is produced
// before any store round-trip.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// NewValidation builds a ValidationError from one or more constraint messages.
func NewValidation(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// NotFoundError reports a well-formed request that matched nothing. Detail
// carries the requested coordinates so callers can produce a useful message.
type NotFoundError struct {
	Resource string
	Detail   string
}

func (e *NotFoundError) Error() string {
	if e.Detail == "" {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Detail)
}

// NewNotFound builds a NotFoundError for the given resource and coordinates.
func NewNotFound(resource, detailFormat string, args ...any) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Detail:   fmt.Sprintf(detailFormat, args...),
	}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Package domain holds the quote model, the paging arithmetic, and the
// error kinds shared by the service, the store, and the CLI.
// Errors here describe what went wrong in quote terms; adapters decide how
// to render them (HTTP status, CLI message, log line).
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested quote does not exist, or a random
	// pick could not land on a row.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates an invalid argument (page size, row range, quote fields).
	ErrValidation = errors.New("invalid argument")

	// ErrOutOfRange indicates a page number beyond the computed page count.
	ErrOutOfRange = errors.New("out of range")

	// ErrRange indicates an empty interval was handed to the random number primitive.
	ErrRange = errors.New("range error")

	// ErrConflict indicates a duplicate quote key on insert.
	ErrConflict = errors.New("conflict")

	// ErrUnavailable indicates the quote store cannot be reached or queried.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError describes a rejected argument.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}

	return "invalid argument: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// OutOfRangeError reports a page number past the last page.
type OutOfRangeError struct {
	Page      uint64
	PageCount uint64
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("page %d out of range (page count %d)", e.Page, e.PageCount)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// NewOutOfRangeError creates an out of range error for the given page.
func NewOutOfRangeError(page, pageCount uint64) error {
	return &OutOfRangeError{Page: page, PageCount: pageCount}
}

// RangeError reports an empty [Min, Max) interval. It is a programming
// error on the caller's side and is never retried.
type RangeError struct {
	Min uint64
	Max uint64
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range [%d, %d): max must be greater than min", e.Min, e.Max)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *RangeError) Unwrap() error {
	return ErrRange
}

// NewRangeError creates a range error for the interval [lo, hi).
func NewRangeError(lo, hi uint64) error {
	return &RangeError{Min: lo, Max: hi}
}

// ConflictError provides context for conflict errors.
type ConflictError struct {
	Entity string
	Reason string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a conflict error with context.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is an invalid argument error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsOutOfRange checks if an error is an out of range error.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsRange checks if an error is a range error from the random number primitive.
func IsRange(err error) bool {
	return errors.Is(err, ErrRange)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

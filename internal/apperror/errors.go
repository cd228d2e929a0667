// Package apperror defines the errors the query and mutation layers hand to
// their callers.
package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrDataAccess = errors.New("data access failed")
)

// ValidationError reports malformed input per field. It is returned before
// any write is attempted.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DataAccessError hides the store failure behind a generic message. The
// cause is logged where the error is created and deliberately not wrapped.
type DataAccessError struct {
	Op      string
	Message string
}

func NewDataAccessError(op, message string) *DataAccessError {
	return &DataAccessError{Op: op, Message: message}
}

func (e *DataAccessError) Error() string {
	return e.Message
}

func (e *DataAccessError) Is(target error) bool {
	return target == ErrDataAccess
}

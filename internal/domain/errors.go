// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// General errors
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")

	// Auth errors
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthenticated)
	ErrSessionExpired     = fmt.Errorf("session expired: %w", ErrUnauthenticated)

	// Entity errors
	ErrOrganizationNotFound = fmt.Errorf("organization %w", ErrNotFound)
	ErrDepartmentNotFound   = fmt.Errorf("department %w", ErrNotFound)
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrReportNotFound       = fmt.Errorf("report %w", ErrNotFound)
	ErrQuoteNotFound        = fmt.Errorf("quote %w", ErrNotFound)
	ErrAPITokenNotFound     = fmt.Errorf("api token %w", ErrNotFound)
	ErrEmailAlreadyExists   = fmt.Errorf("email already exists: %w", ErrConflict)

	// Email errors
	ErrDeliveryFailed = errors.New("failed to send email")
)

// ValidationError carries field-addressable messages keyed by dotted JSON
// path, e.g. "customer.email" or "lineItems[0].quantity".
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Is lets callers match any validation failure with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors resolved at the component boundary. Persistence failures
// that are not one of these propagate unchanged to the caller.
var (
	ErrGroupNotFound      = errors.New("group not found")
	ErrTestNotFound       = errors.New("test not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrTeacherNotFound    = errors.New("teacher not found")
	ErrStudentNotFound    = errors.New("student not found in any group")
	ErrInvalidIdentity    = errors.New("invalid identifier")
	ErrEmailTaken         = errors.New("email already registered")
	ErrTeacherNotApproved = errors.New("teacher account is not approved")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOTPInvalid         = errors.New("otp expired or invalid")
	ErrInvalidPhone       = errors.New("invalid phone number")
)

// CapacityError reports a roster exceeding its group's capacity. It carries
// both the limit and the attempted size so callers can echo them back.
type CapacityError struct {
	Limit     int
	Attempted int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("cannot exceed maximum of %d students (attempted %d)", e.Limit, e.Attempted)
}

// ValidationError reports which fields failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, e.Fields[key]))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

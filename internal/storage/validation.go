package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"facultyload/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrNilParameter     = errors.New("parameter cannot be nil")
	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrInvalidEntry     = errors.New("invalid workload entry")
	ErrInvalidUser      = errors.New("invalid user")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateEntry validates a workload entry before persisting it.
func validateEntry(entry *model.WorkloadEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry", ErrNilParameter)
	}
	if entry.UserID == 0 {
		return fmt.Errorf("%w: missing user", ErrInvalidEntry)
	}
	if entry.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidEntry)
	}
	if strings.TrimSpace(entry.Activity) == "" {
		return fmt.Errorf("%w: missing activity", ErrInvalidEntry)
	}
	if !entry.Category.Valid() {
		return fmt.Errorf("%w: category %q", ErrInvalidEntry, entry.Category)
	}
	if entry.TotalHours < 0 {
		return fmt.Errorf("%w: negative total hours", ErrInvalidEntry)
	}
	return nil
}

// validateUser validates a user before persisting it.
func validateUser(user *model.User) error {
	if user == nil {
		return fmt.Errorf("%w: user", ErrNilParameter)
	}
	if strings.TrimSpace(user.Email) == "" {
		return fmt.Errorf("%w: missing email", ErrInvalidUser)
	}
	if strings.TrimSpace(user.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidUser)
	}
	if user.Role != model.RoleAdmin && user.Role != model.RoleFaculty {
		return fmt.Errorf("%w: role %q", ErrInvalidUser, user.Role)
	}
	return nil
}

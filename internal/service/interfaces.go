// Package service defines the interfaces and orchestration for recording
// workload entries.
package service

import (
	"context"
	"time"

	"facultyload/internal/model"
)

// EntryFilter defines filtering options for entry queries.
type EntryFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Entry operations
	CreateEntry(ctx context.Context, entry *model.WorkloadEntry) error
	GetEntryByID(ctx context.Context, id int64) (*model.WorkloadEntry, error)
	ListEntriesByUser(ctx context.Context, userID int64) ([]model.WorkloadEntry, error)
	ListEntries(ctx context.Context, filter EntryFilter) ([]model.WorkloadEntry, error)
	UpdateValidationNotes(ctx context.Context, entryID int64, notes string) error
	SetEntryCategory(ctx context.Context, entryID int64, category model.Category) error

	// Validation audit trail
	SaveValidationLog(ctx context.Context, entryID int64, result *model.ValidationResult) error

	// User operations
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)

	// Subject operations
	CreateDepartment(ctx context.Context, dept *model.Department) error
	CreateSubject(ctx context.Context, subject *model.Subject) error
	ListSubjects(ctx context.Context) ([]model.Subject, error)

	// Reporting
	CategorySummary(ctx context.Context, userID int64, from, to time.Time) (map[model.Category]float64, error)
	BillingSummary(ctx context.Context, from, to time.Time) ([]model.BillingReport, error)

	// Schema management
	Migrate(ctx context.Context) error
	Close() error
}

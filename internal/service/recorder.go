package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"facultyload/internal/classify"
	"facultyload/internal/model"
	"facultyload/internal/validate"
)

// autoClassifyThreshold is the classifier confidence above which the
// inferred category replaces the one supplied by the user.
const autoClassifyThreshold = 0.7

// Recorder persists new workload entries and runs the classification
// and validation engine over them.
type Recorder struct {
	store Storage
	now   func() time.Time
}

// NewRecorder creates a Recorder backed by the given storage.
func NewRecorder(store Storage) *Recorder {
	return &Recorder{
		store: store,
		now:   time.Now,
	}
}

// Record stores the entry and validates it against the user's history.
// The activity text is classified first; a confident classification
// overrides the caller-supplied category. Validation findings are
// advisory and never roll back the insert — issue messages are persisted
// as notes on the entry and the full result is written to the audit log.
//
// Record reads the user's history in a plain snapshot without locking.
// Two concurrent submissions for the same user can each validate against
// a history that excludes the other; callers needing strictness must
// serialize per-user submissions themselves.
func (r *Recorder) Record(ctx context.Context, entry model.WorkloadEntry) (*model.WorkloadEntry, *model.ValidationResult, error) {
	if classification := classify.Classify(entry.Activity); classification.Confidence > autoClassifyThreshold {
		if entry.Category != classification.Category {
			slog.Debug("overriding supplied category",
				"supplied", entry.Category,
				"classified", classification.Category,
				"confidence", classification.Confidence)
		}
		entry.Category = classification.Category
	}

	if !entry.Category.Valid() {
		return nil, nil, fmt.Errorf("cannot record entry: unknown category %q", entry.Category)
	}

	entry.CreatedAt = r.now()
	entry.UpdatedAt = entry.CreatedAt

	if err := r.store.CreateEntry(ctx, &entry); err != nil {
		return nil, nil, fmt.Errorf("failed to save entry: %w", err)
	}

	existing, err := r.store.ListEntriesByUser(ctx, entry.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load existing entries: %w", err)
	}

	result, err := validate.Validate(entry, existing)
	if err != nil {
		return nil, nil, fmt.Errorf("validation failed: %w", err)
	}

	if len(result.Issues) > 0 {
		entry.ValidationNotes = result.Notes()
		if err := r.store.UpdateValidationNotes(ctx, entry.ID, entry.ValidationNotes); err != nil {
			return nil, nil, fmt.Errorf("failed to save validation notes: %w", err)
		}
	}

	if err := r.store.SaveValidationLog(ctx, entry.ID, &result); err != nil {
		return nil, nil, fmt.Errorf("failed to save validation log: %w", err)
	}

	slog.Info("recorded workload entry",
		"entry", entry.ID,
		"user", entry.UserID,
		"category", entry.Category,
		"valid", result.IsValid,
		"issues", len(result.Issues))

	return &entry, &result, nil
}

// Check validates a prospective entry against the user's history without
// persisting anything.
func (r *Recorder) Check(ctx context.Context, entry model.WorkloadEntry) (*model.ValidationResult, error) {
	existing, err := r.store.ListEntriesByUser(ctx, entry.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing entries: %w", err)
	}

	result, err := validate.Validate(entry, existing)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"facultyload/internal/common"
	"facultyload/internal/model"
	"facultyload/internal/service"
)

// CreateEntry inserts a workload entry and sets its generated ID.
func (s *SQLiteStorage) CreateEntry(ctx context.Context, entry *model.WorkloadEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateEntry(entry); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO workload_logs (
			user_id, subject_id, date, time_in, time_out, total_hours,
			activity, category, description, location, is_validated, validation_notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		entry.UserID,
		nullableID(entry.SubjectID),
		entry.Date,
		entry.TimeIn,
		entry.TimeOut,
		entry.TotalHours,
		entry.Activity,
		string(entry.Category),
		nullableString(entry.Description),
		nullableString(entry.Location),
		entry.Validated,
		nullableString(entry.ValidationNotes),
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read entry id: %w", err)
	}
	entry.ID = id

	return nil
}

// GetEntryByID fetches a single entry.
func (s *SQLiteStorage) GetEntryByID(ctx context.Context, id int64) (*model.WorkloadEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, entrySelect+` WHERE id = ?`, id)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("entry %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListEntriesByUser returns all of a user's entries, most recent first.
func (s *SQLiteStorage) ListEntriesByUser(ctx context.Context, userID int64) ([]model.WorkloadEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, entrySelect+` WHERE user_id = ? ORDER BY date DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectEntries(rows)
}

// ListEntries returns entries across all users, filtered by date range.
func (s *SQLiteStorage) ListEntries(ctx context.Context, filter service.EntryFilter) ([]model.WorkloadEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, ErrInvalidDateRange
	}

	query := entrySelect + ` WHERE 1=1`
	args := []any{}
	if filter.From != nil {
		query += ` AND date >= ?`
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		query += ` AND date <= ?`
		args = append(args, *filter.To)
	}
	query += ` ORDER BY date DESC, id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectEntries(rows)
}

// UpdateValidationNotes attaches validation findings to a stored entry.
func (s *SQLiteStorage) UpdateValidationNotes(ctx context.Context, entryID int64, notes string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE workload_logs
		SET validation_notes = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, notes, entryID)
	if err != nil {
		return fmt.Errorf("failed to update validation notes: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("entry %d: %w", entryID, common.ErrNotFound)
	}
	return nil
}

// SetEntryCategory updates an entry's category after reclassification.
func (s *SQLiteStorage) SetEntryCategory(ctx context.Context, entryID int64, category model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if !category.Valid() {
		return fmt.Errorf("%w: %q", common.ErrInvalidCategory, category)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE workload_logs
		SET category = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, string(category), entryID)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("entry %d: %w", entryID, common.ErrNotFound)
	}
	return nil
}

// SaveValidationLog records one validation run in the audit table.
// Issues and suggestions are stored as JSON.
func (s *SQLiteStorage) SaveValidationLog(ctx context.Context, entryID int64, result *model.ValidationResult) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("%w: result", ErrNilParameter)
	}

	issuesJSON, err := json.Marshal(result.Issues)
	if err != nil {
		return fmt.Errorf("failed to marshal issues: %w", err)
	}
	suggestionsJSON, err := json.Marshal(result.Suggestions)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO validation_logs (workload_log_id, is_valid, confidence, issues, suggestions)
		VALUES (?, ?, ?, ?, ?)
	`, entryID, result.IsValid, result.Confidence, string(issuesJSON), string(suggestionsJSON))
	if err != nil {
		return fmt.Errorf("failed to insert validation log: %w", err)
	}
	return nil
}

const entrySelect = `
	SELECT id, user_id, subject_id, date, time_in, time_out, total_hours,
	       activity, category, description, location, is_validated,
	       validation_notes, created_at, updated_at
	FROM workload_logs`

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*model.WorkloadEntry, error) {
	var entry model.WorkloadEntry
	var subjectID sql.NullInt64
	var description, location, notes sql.NullString
	var date, createdAt, updatedAt time.Time

	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&subjectID,
		&date,
		&entry.TimeIn,
		&entry.TimeOut,
		&entry.TotalHours,
		&entry.Activity,
		&entry.Category,
		&description,
		&location,
		&entry.Validated,
		&notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Date = date
	entry.CreatedAt = createdAt
	entry.UpdatedAt = updatedAt
	if subjectID.Valid {
		entry.SubjectID = &subjectID.Int64
	}
	entry.Description = description.String
	entry.Location = location.String
	entry.ValidationNotes = notes.String

	return &entry, nil
}

func collectEntries(rows *sql.Rows) ([]model.WorkloadEntry, error) {
	var entries []model.WorkloadEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}
	return entries, nil
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

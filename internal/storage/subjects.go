package storage

import (
	"context"
	"fmt"

	"facultyload/internal/model"
)

// CreateDepartment inserts a department and sets its generated ID.
func (s *SQLiteStorage) CreateDepartment(ctx context.Context, dept *model.Department) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if dept == nil {
		return fmt.Errorf("%w: dept", ErrNilParameter)
	}
	if err := validateString(dept.Name, "name"); err != nil {
		return err
	}
	if err := validateString(dept.Code, "code"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO departments (name, code) VALUES (?, ?)
	`, dept.Name, dept.Code)
	if err != nil {
		return fmt.Errorf("failed to insert department: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read department id: %w", err)
	}
	dept.ID = id
	return nil
}

// CreateSubject inserts a subject and sets its generated ID.
func (s *SQLiteStorage) CreateSubject(ctx context.Context, subject *model.Subject) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if subject == nil {
		return fmt.Errorf("%w: subject", ErrNilParameter)
	}
	if err := validateString(subject.Name, "name"); err != nil {
		return err
	}
	if err := validateString(subject.Code, "code"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO subjects (name, code, department_id, credits, type)
		VALUES (?, ?, ?, ?, ?)
	`, subject.Name, subject.Code, subject.DepartmentID, subject.Credits, string(subject.Type))
	if err != nil {
		return fmt.Errorf("failed to insert subject: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read subject id: %w", err)
	}
	subject.ID = id
	return nil
}

// ListSubjects returns all subjects ordered by code.
func (s *SQLiteStorage) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, code, department_id, credits, type, created_at
		FROM subjects
		ORDER BY code
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query subjects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var subjects []model.Subject
	for rows.Next() {
		var subject model.Subject
		if err := rows.Scan(
			&subject.ID,
			&subject.Name,
			&subject.Code,
			&subject.DepartmentID,
			&subject.Credits,
			&subject.Type,
			&subject.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subjects: %w", err)
	}
	return subjects, nil
}

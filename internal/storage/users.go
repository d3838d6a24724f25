package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"facultyload/internal/common"
	"facultyload/internal/model"
)

// CreateUser inserts a user and sets its generated ID.
func (s *SQLiteStorage) CreateUser(ctx context.Context, user *model.User) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUser(user); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO users (email, name, role, department_id, employee_id, designation, hourly_rate, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		user.Email,
		user.Name,
		string(user.Role),
		nullableID(user.DepartmentID),
		nullableString(user.EmployeeID),
		nullableString(user.Designation),
		user.HourlyRate,
		user.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	user.ID = id
	return nil
}

// GetUserByEmail fetches a user by email address.
func (s *SQLiteStorage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(email, "email"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, userSelect+` WHERE email = ?`, email)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", email, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns all users ordered by name.
func (s *SQLiteStorage) ListUsers(ctx context.Context) ([]model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, userSelect+` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []model.User
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan user: %w", scanErr)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

const userSelect = `
	SELECT id, email, name, role, department_id, employee_id, designation,
	       hourly_rate, is_active, created_at, updated_at
	FROM users`

func scanUser(row rowScanner) (*model.User, error) {
	var user model.User
	var departmentID sql.NullInt64
	var employeeID, designation sql.NullString

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Role,
		&departmentID,
		&employeeID,
		&designation,
		&user.HourlyRate,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if departmentID.Valid {
		user.DepartmentID = &departmentID.Int64
	}
	user.EmployeeID = employeeID.String
	user.Designation = designation.String
	return &user, nil
}

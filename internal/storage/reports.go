package storage

import (
	"context"
	"fmt"
	"time"

	"facultyload/internal/model"
)

// CategorySummary returns total hours per category for one user within
// the given date range (inclusive).
func (s *SQLiteStorage) CategorySummary(ctx context.Context, userID int64, from, to time.Time) (map[model.Category]float64, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, SUM(total_hours)
		FROM workload_logs
		WHERE user_id = ? AND date >= ? AND date <= ?
		GROUP BY category
	`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query category summary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summary := make(map[model.Category]float64)
	for rows.Next() {
		var category model.Category
		var hours float64
		if err := rows.Scan(&category, &hours); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		summary[category] = hours
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summary: %w", err)
	}
	return summary, nil
}

// BillingSummary computes billable totals per user for the given period:
// sum of logged hours multiplied by the user's hourly rate.
func (s *SQLiteStorage) BillingSummary(ctx context.Context, from, to time.Time) ([]model.BillingReport, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT u.id, u.name, u.hourly_rate, COALESCE(SUM(w.total_hours), 0)
		FROM users u
		LEFT JOIN workload_logs w
			ON w.user_id = u.id AND w.date >= ? AND w.date <= ?
		WHERE u.role = 'faculty' AND u.is_active = 1
		GROUP BY u.id, u.name, u.hourly_rate
		ORDER BY u.name
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query billing summary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var reports []model.BillingReport
	for rows.Next() {
		var report model.BillingReport
		if err := rows.Scan(&report.UserID, &report.UserName, &report.HourlyRate, &report.TotalHours); err != nil {
			return nil, fmt.Errorf("failed to scan billing row: %w", err)
		}
		report.TotalAmount = report.TotalHours * report.HourlyRate
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate billing summary: %w", err)
	}
	return reports, nil
}

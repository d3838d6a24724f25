package model

import "time"

// Role distinguishes administrators from faculty members.
type Role string

// User roles.
const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
)

// User represents a faculty member or administrator who logs workload.
type User struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Email        string
	Name         string
	EmployeeID   string
	Designation  string
	Role         Role
	DepartmentID *int64
	ID           int64
	HourlyRate   float64
	Active       bool
}

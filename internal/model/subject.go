package model

import "time"

// SubjectType describes how a subject is taught.
type SubjectType string

// Subject types.
const (
	SubjectTheory  SubjectType = "theory"
	SubjectLab     SubjectType = "lab"
	SubjectProject SubjectType = "project"
)

// Department groups subjects and faculty.
type Department struct {
	CreatedAt time.Time
	Name      string
	Code      string
	ID        int64
}

// Subject is a taught course that workload entries may reference.
type Subject struct {
	CreatedAt    time.Time
	Name         string
	Code         string
	Type         SubjectType
	ID           int64
	DepartmentID int64
	Credits      int
}

// BillingReport summarizes billable hours for one user over a period.
type BillingReport struct {
	UserName    string
	UserID      int64
	TotalHours  float64
	HourlyRate  float64
	TotalAmount float64
}

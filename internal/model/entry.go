package model

import "time"

// WorkloadEntry represents a single logged unit of faculty work.
// TimeIn and TimeOut are clock times in "HH:MM" form; TotalHours is
// supplied by the caller and is not re-derived from the clock times.
type WorkloadEntry struct {
	Date            time.Time `json:"date"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	TimeIn          string    `json:"timeIn"`
	TimeOut         string    `json:"timeOut"`
	Activity        string    `json:"activity"`
	Category        Category  `json:"category"`
	Description     string    `json:"description,omitempty"`
	Location        string    `json:"location,omitempty"`
	ValidationNotes string    `json:"validationNotes,omitempty"`
	SubjectID       *int64    `json:"subjectId,omitempty"`
	ID              int64     `json:"id"` // 0 until the entry is persisted
	UserID          int64     `json:"userId"`
	TotalHours      float64   `json:"totalHours"`
	Validated       bool      `json:"isValidated"`
}

// SameDay reports whether the entry falls on the same calendar day as
// the other entry, ignoring time-of-day.
func (e *WorkloadEntry) SameDay(other *WorkloadEntry) bool {
	y1, m1, d1 := e.Date.Date()
	y2, m2, d2 := other.Date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Package model defines the core domain models used throughout the application.
package model

import "fmt"

// Category classifies the kind of work a faculty entry records.
type Category string

// Workload category constants.
const (
	CategoryLecture      Category = "lecture"
	CategoryLab          Category = "lab"
	CategoryEvaluation   Category = "evaluation"
	CategoryAdminWork    Category = "admin_work"
	CategoryResearchWork Category = "research_work"
)

// Categories returns all valid categories in their fixed priority order.
// The order matters: classification tie-breaking keeps the earliest match.
func Categories() []Category {
	return []Category{
		CategoryLecture,
		CategoryLab,
		CategoryEvaluation,
		CategoryAdminWork,
		CategoryResearchWork,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryLecture, CategoryLab, CategoryEvaluation, CategoryAdminWork, CategoryResearchWork:
		return true
	}
	return false
}

// ParseCategory converts a string into a Category, rejecting unknown values.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

package model

import "strings"

// IssueType identifies which validation check produced an issue.
type IssueType string

// Validation issue types.
const (
	IssueOverlap           IssueType = "overlap"
	IssueImpossibleHours   IssueType = "impossible_hours"
	IssueSuspiciousPattern IssueType = "suspicious_pattern"
	IssueAnomaly           IssueType = "anomaly"
)

// Severity ranks how serious a validation issue is. Only SeverityHigh
// makes an entry invalid.
type Severity string

// Issue severities.
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ValidationIssue is a single advisory finding from one of the
// validation checks.
type ValidationIssue struct {
	Type        IssueType `json:"type"`
	Severity    Severity  `json:"severity"`
	Message     string    `json:"message"`
	Suggestions []string  `json:"suggestions"`
}

// ValidationResult aggregates the findings of all checks for one entry.
// Issues appear in check-execution order: overlap, impossible_hours,
// suspicious_pattern, anomaly.
type ValidationResult struct {
	Issues      []ValidationIssue `json:"issues"`
	Suggestions []string          `json:"suggestions"`
	Confidence  float64           `json:"confidence"`
	IsValid     bool              `json:"isValid"`
}

// Notes renders the issue messages as a single free-text summary
// suitable for storing alongside the entry.
func (r *ValidationResult) Notes() string {
	if len(r.Issues) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		msgs = append(msgs, issue.Message)
	}
	return strings.Join(msgs, "; ")
}

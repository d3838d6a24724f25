// Package validate checks a new workload entry against a user's history
// for overlaps, impossible hours, suspicious patterns, and statistical
// anomalies. Every check is advisory: checks append issues and never
// abort the others. The only hard failure is a malformed clock time.
//
// The existing-entries snapshot is read-only within a call and is
// assumed consistent by the caller; the validator takes no locks, so
// callers racing concurrent submissions for the same user must
// serialize validation themselves.
package validate

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"facultyload/internal/classify"
	"facultyload/internal/model"
)

const (
	// maxSessionHours flags single sessions longer than a plausible shift.
	maxSessionHours = 12.0
	// minSessionHours flags sessions shorter than 15 minutes.
	minSessionHours = 0.25
	// maxDailyHours flags days whose combined entries exceed waking hours.
	maxDailyHours = 16.0
	// anomalyMinSamples is the history size required before the IQR
	// anomaly check has enough data to run.
	anomalyMinSamples = 5
	// suggestionThreshold is the classifier confidence above which the
	// inferred category is surfaced as a suggestion.
	suggestionThreshold = 0.7
)

// Validate runs all checks on entry against the user's existing entries
// and aggregates their findings. Issues are concatenated in check order:
// overlap, impossible_hours, suspicious_pattern, anomaly. The result is
// invalid exactly when a high-severity issue was found.
func Validate(entry model.WorkloadEntry, existing []model.WorkloadEntry) (model.ValidationResult, error) {
	var issues []model.ValidationIssue
	var suggestions []string

	overlapIssues, err := checkTimeOverlaps(&entry, existing)
	if err != nil {
		return model.ValidationResult{}, err
	}
	issues = append(issues, overlapIssues...)

	hourIssues, err := checkImpossibleHours(&entry)
	if err != nil {
		return model.ValidationResult{}, err
	}
	issues = append(issues, hourIssues...)

	issues = append(issues, checkSuspiciousPatterns(&entry, existing)...)
	issues = append(issues, detectAnomalies(&entry, existing)...)

	if c := classify.Classify(entry.Activity); c.Confidence > suggestionThreshold {
		suggestions = append(suggestions, fmt.Sprintf("Activity appears to be: %s (%d%% confidence)",
			c.Category, int(math.Round(c.Confidence*100))))
	}

	highCount, mediumCount := 0, 0
	for _, issue := range issues {
		switch issue.Severity {
		case model.SeverityHigh:
			highCount++
		case model.SeverityMedium:
			mediumCount++
		}
	}

	confidence := 1 - (float64(highCount)*0.5 + float64(mediumCount)*0.3)
	if confidence < 0 {
		confidence = 0
	}

	return model.ValidationResult{
		IsValid:     highCount == 0,
		Issues:      issues,
		Confidence:  confidence,
		Suggestions: suggestions,
	}, nil
}

// checkTimeOverlaps reports a high-severity issue for every other
// same-day entry whose [timeIn, timeOut) interval intersects the new
// entry's interval.
func checkTimeOverlaps(entry *model.WorkloadEntry, existing []model.WorkloadEntry) ([]model.ValidationIssue, error) {
	var issues []model.ValidationIssue

	entryStart, err := parseClock(entry.TimeIn)
	if err != nil {
		return nil, err
	}
	entryEnd, err := parseClock(entry.TimeOut)
	if err != nil {
		return nil, err
	}

	for i := range existing {
		other := &existing[i]
		if other.ID == entry.ID || !entry.SameDay(other) {
			continue
		}

		otherStart, err := parseClock(other.TimeIn)
		if err != nil {
			return nil, err
		}
		otherEnd, err := parseClock(other.TimeOut)
		if err != nil {
			return nil, err
		}

		if overlapping(entryStart, entryEnd, otherStart, otherEnd) {
			issues = append(issues, model.ValidationIssue{
				Type:     model.IssueOverlap,
				Severity: model.SeverityHigh,
				Message:  fmt.Sprintf("Time overlap detected with existing entry (%s-%s)", other.TimeIn, other.TimeOut),
				Suggestions: []string{
					"Adjust time to avoid overlap",
					"Check if this is a continuation of previous work",
					"Consider combining entries if same activity",
				},
			})
		}
	}

	return issues, nil
}

// checkImpossibleHours flags inverted clock times, sessions over 12
// hours, and sessions under 15 minutes. The three conditions are
// independent, so one entry can collect several issues here.
func checkImpossibleHours(entry *model.WorkloadEntry) ([]model.ValidationIssue, error) {
	var issues []model.ValidationIssue

	start, err := parseClock(entry.TimeIn)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(entry.TimeOut)
	if err != nil {
		return nil, err
	}

	if end <= start {
		issues = append(issues, model.ValidationIssue{
			Type:        model.IssueImpossibleHours,
			Severity:    model.SeverityHigh,
			Message:     "End time must be after start time",
			Suggestions: []string{"Correct the time-out to be after time-in"},
		})
	}

	if entry.TotalHours > maxSessionHours {
		issues = append(issues, model.ValidationIssue{
			Type:     model.IssueImpossibleHours,
			Severity: model.SeverityMedium,
			Message:  "Work session exceeds 12 hours",
			Suggestions: []string{
				"Break into multiple shorter sessions",
				"Verify if this includes breaks",
				"Consider splitting across multiple days",
			},
		})
	}

	if entry.TotalHours < minSessionHours {
		issues = append(issues, model.ValidationIssue{
			Type:     model.IssueImpossibleHours,
			Severity: model.SeverityLow,
			Message:  "Work session is very short (less than 15 minutes)",
			Suggestions: []string{
				"Consider if this is worth logging",
				"Check if time was rounded incorrectly",
			},
		})
	}

	return issues, nil
}

// checkSuspiciousPatterns flags duplicated entries and days whose total
// logged hours exceed 16.
func checkSuspiciousPatterns(entry *model.WorkloadEntry, existing []model.WorkloadEntry) []model.ValidationIssue {
	var issues []model.ValidationIssue

	duplicate := false
	dayTotal := entry.TotalHours

	for i := range existing {
		other := &existing[i]
		if other.ID == entry.ID || !entry.SameDay(other) {
			continue
		}

		dayTotal += other.TotalHours

		if strings.EqualFold(other.Activity, entry.Activity) && other.TotalHours == entry.TotalHours {
			duplicate = true
		}
	}

	if duplicate {
		issues = append(issues, model.ValidationIssue{
			Type:     model.IssueSuspiciousPattern,
			Severity: model.SeverityMedium,
			Message:  "Identical work entry already exists for this day",
			Suggestions: []string{
				"Verify if this is a duplicate entry",
				"Consider if work was actually repeated",
			},
		})
	}

	if dayTotal > maxDailyHours {
		issues = append(issues, model.ValidationIssue{
			Type:     model.IssueSuspiciousPattern,
			Severity: model.SeverityHigh,
			Message:  fmt.Sprintf("Total work hours for day exceed 16 hours (%.1fh)", dayTotal),
			Suggestions: []string{
				"Review all entries for this day",
				"Ensure breaks are accounted for",
				"Check for data entry errors",
			},
		})
	}

	return issues
}

// detectAnomalies flags durations outside the Tukey fences of the
// user's historical durations. The guard is deliberately two-stage: the
// whole check is skipped when the global history is small, and the
// per-user subset is then required to be large enough on its own.
func detectAnomalies(entry *model.WorkloadEntry, existing []model.WorkloadEntry) []model.ValidationIssue {
	if len(existing) < anomalyMinSamples {
		return nil
	}

	var durations []float64
	for i := range existing {
		other := &existing[i]
		if other.UserID == entry.UserID && other.ID != entry.ID {
			durations = append(durations, other.TotalHours)
		}
	}

	if len(durations) < anomalyMinSamples {
		return nil
	}

	sort.Float64s(durations)

	// Nearest-rank quartiles, not interpolated: the index formula is
	// part of the contract and moves the fences if changed.
	q1 := durations[int(float64(len(durations))*0.25)]
	q3 := durations[int(float64(len(durations))*0.75)]
	iqr := q3 - q1
	lowerBound := q1 - 1.5*iqr
	upperBound := q3 + 1.5*iqr

	if entry.TotalHours < lowerBound || entry.TotalHours > upperBound {
		return []model.ValidationIssue{{
			Type:     model.IssueAnomaly,
			Severity: model.SeverityMedium,
			Message:  "Work duration is unusual compared to typical patterns",
			Suggestions: []string{
				"Verify the accuracy of time logged",
				"Consider if this represents exceptional circumstances",
				"Check for data entry errors",
			},
		}}
	}

	return nil
}

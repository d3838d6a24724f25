package validate

import (
	"testing"
	"time"

	"facultyload/internal/common"
	"facultyload/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testEntry(id int64, date time.Time, in, out string, hours float64) model.WorkloadEntry {
	return model.WorkloadEntry{
		ID:         id,
		UserID:     1,
		Date:       date,
		TimeIn:     in,
		TimeOut:    out,
		TotalHours: hours,
		Activity:   "miscellaneous duties",
	}
}

func issuesOfType(issues []model.ValidationIssue, issueType model.IssueType) []model.ValidationIssue {
	var matched []model.ValidationIssue
	for _, issue := range issues {
		if issue.Type == issueType {
			matched = append(matched, issue)
		}
	}
	return matched
}

func TestValidateCleanEntry(t *testing.T) {
	entry := testEntry(1, day(2024, 1, 15), "09:00", "10:30", 1.5)

	result, err := Validate(entry, nil)
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Issues)
	assert.InDelta(t, 1.0, result.Confidence, 1e-9)
}

func TestValidateOverlap(t *testing.T) {
	entry := testEntry(1, day(2024, 1, 15), "09:00", "10:30", 1.5)
	existing := []model.WorkloadEntry{
		testEntry(2, day(2024, 1, 15), "10:00", "11:00", 1),
	}

	result, err := Validate(entry, existing)
	require.NoError(t, err)

	overlaps := issuesOfType(result.Issues, model.IssueOverlap)
	require.Len(t, overlaps, 1)
	assert.Equal(t, model.SeverityHigh, overlaps[0].Severity)
	assert.Contains(t, overlaps[0].Message, "10:00-11:00")
	assert.Len(t, overlaps[0].Suggestions, 3)

	assert.False(t, result.IsValid)
	assert.InDelta(t, 0.5, result.Confidence, 1e-9)
}

func TestValidateOverlapEdges(t *testing.T) {
	tests := []struct {
		name        string
		existing    model.WorkloadEntry
		wantOverlap bool
	}{
		{
			name:        "touching intervals do not overlap",
			existing:    testEntry(2, day(2024, 1, 15), "10:30", "11:30", 1),
			wantOverlap: false,
		},
		{
			name:        "contained interval overlaps",
			existing:    testEntry(2, day(2024, 1, 15), "09:30", "10:00", 0.5),
			wantOverlap: true,
		},
		{
			name:        "different day never overlaps",
			existing:    testEntry(2, day(2024, 1, 16), "09:00", "10:30", 1.5),
			wantOverlap: false,
		},
		{
			name:        "same id is skipped",
			existing:    testEntry(1, day(2024, 1, 15), "09:00", "10:30", 1.5),
			wantOverlap: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := testEntry(1, day(2024, 1, 15), "09:00", "10:30", 1.5)

			result, err := Validate(entry, []model.WorkloadEntry{tt.existing})
			require.NoError(t, err)

			overlaps := issuesOfType(result.Issues, model.IssueOverlap)
			if tt.wantOverlap {
				assert.Len(t, overlaps, 1)
			} else {
				assert.Empty(t, overlaps)
			}
		})
	}
}

func TestValidateMultipleOverlapsReportedSeparately(t *testing.T) {
	entry := testEntry(1, day(2024, 1, 15), "09:00", "12:00", 3)
	existing := []model.WorkloadEntry{
		testEntry(2, day(2024, 1, 15), "09:30", "10:00", 0.5),
		testEntry(3, day(2024, 1, 15), "11:00", "11:30", 0.5),
	}

	result, err := Validate(entry, existing)
	require.NoError(t, err)

	assert.Len(t, issuesOfType(result.Issues, model.IssueOverlap), 2)
}

func TestValidateImpossibleHours(t *testing.T) {
	t.Run("end before start", func(t *testing.T) {
		entry := testEntry(1, day(2024, 1, 15), "10:00", "09:00", 1)

		result, err := Validate(entry, nil)
		require.NoError(t, err)

		impossible := issuesOfType(result.Issues, model.IssueImpossibleHours)
		require.Len(t, impossible, 1)
		assert.Equal(t, model.SeverityHigh, impossible[0].Severity)
		assert.Equal(t, "End time must be after start time", impossible[0].Message)
		assert.False(t, result.IsValid)
	})

	t.Run("end equals start", func(t *testing.T) {
		entry := testEntry(1, day(2024, 1, 15), "09:00", "09:00", 1)

		result, err := Validate(entry, nil)
		require.NoError(t, err)

		impossible := issuesOfType(result.Issues, model.IssueImpossibleHours)
		require.Len(t, impossible, 1)
		assert.Equal(t, model.SeverityHigh, impossible[0].Severity)
	})

	t.Run("thirteen hour session is medium, not high", func(t *testing.T) {
		entry := testEntry(1, day(2024, 1, 15), "08:00", "21:00", 13)

		result, err := Validate(entry, nil)
		require.NoError(t, err)

		impossible := issuesOfType(result.Issues, model.IssueImpossibleHours)
		require.Len(t, impossible, 1)
		assert.Equal(t, model.SeverityMedium, impossible[0].Severity)
		assert.Contains(t, impossible[0].Message, "12 hours")
		assert.True(t, result.IsValid)
		assert.InDelta(t, 0.7, result.Confidence, 1e-9)
	})

	t.Run("very short session is low severity", func(t *testing.T) {
		entry := testEntry(1, day(2024, 1, 15), "09:00", "09:10", 0.17)

		result, err := Validate(entry, nil)
		require.NoError(t, err)

		impossible := issuesOfType(result.Issues, model.IssueImpossibleHours)
		require.Len(t, impossible, 1)
		assert.Equal(t, model.SeverityLow, impossible[0].Severity)
		assert.True(t, result.IsValid)
		assert.InDelta(t, 1.0, result.Confidence, 1e-9)
	})

	t.Run("inverted times and excessive hours stack", func(t *testing.T) {
		entry := testEntry(1, day(2024, 1, 15), "22:00", "09:00", 13)

		result, err := Validate(entry, nil)
		require.NoError(t, err)

		impossible := issuesOfType(result.Issues, model.IssueImpossibleHours)
		assert.Len(t, impossible, 2)
	})
}

func TestValidateDuplicateEntry(t *testing.T) {
	entry := testEntry(1, day(2024, 1, 15), "09:00", "10:30", 1.5)
	entry.Activity = "Delivered Lecture"

	duplicate := testEntry(2, day(2024, 1, 15), "14:00", "15:30", 1.5)
	duplicate.Activity = "delivered lecture" // case differs

	result, err := Validate(entry, []model.WorkloadEntry{duplicate})
	require.NoError(t, err)

	suspicious := issuesOfType(result.Issues, model.IssueSuspiciousPattern)
	require.Len(t, suspicious, 1)
	assert.Equal(t, model.SeverityMedium, suspicious[0].Severity)
	assert.Contains(t, suspicious[0].Message, "Identical work entry")
}

func TestValidateDuplicateRequiresSameHours(t *testing.T) {
	entry := testEntry(1, day(2024, 1, 15), "09:00", "10:30", 1.5)
	entry.Activity = "delivered lecture"

	other := testEntry(2, day(2024, 1, 15), "14:00", "16:00", 2)
	other.Activity = "delivered lecture"

	result, err := Validate(entry, []model.WorkloadEntry{other})
	require.NoError(t, err)

	assert.Empty(t, issuesOfType(result.Issues, model.IssueSuspiciousPattern))
}

func TestValidateDailyTotal(t *testing.T) {
	entry := testEntry(1, day(2024, 1, 15), "20:00", "22:00", 2)
	existing := []model.WorkloadEntry{
		testEntry(2, day(2024, 1, 15), "01:00", "06:00", 5),
		testEntry(3, day(2024, 1, 15), "06:00", "11:00", 5),
		testEntry(4, day(2024, 1, 15), "11:00", "16:00", 5),
	}

	result, err := Validate(entry, existing)
	require.NoError(t, err)

	suspicious := issuesOfType(result.Issues, model.IssueSuspiciousPattern)
	require.Len(t, suspicious, 1)
	assert.Equal(t, model.SeverityHigh, suspicious[0].Severity)
	assert.Contains(t, suspicious[0].Message, "17.0")
	assert.False(t, result.IsValid)
}

func TestValidateDailyTotalExactlySixteenIsFine(t *testing.T) {
	entry := testEntry(1, day(2024, 1, 15), "20:00", "22:00", 2)
	existing := []model.WorkloadEntry{
		testEntry(2, day(2024, 1, 15), "01:00", "08:00", 7),
		testEntry(3, day(2024, 1, 15), "08:00", "15:00", 7),
	}

	result, err := Validate(entry, existing)
	require.NoError(t, err)

	assert.Empty(t, issuesOfType(result.Issues, model.IssueSuspiciousPattern))
}

func TestValidateAnomaly(t *testing.T) {
	history := []model.WorkloadEntry{
		testEntry(2, day(2024, 1, 8), "09:00", "10:00", 1),
		testEntry(3, day(2024, 1, 9), "09:00", "10:00", 1),
		testEntry(4, day(2024, 1, 10), "09:00", "10:00", 1),
		testEntry(5, day(2024, 1, 11), "09:00", "10:00", 1),
		testEntry(6, day(2024, 1, 12), "08:00", "18:00", 10),
	}

	entry := testEntry(1, day(2024, 1, 15), "08:00", "18:00", 10)

	result, err := Validate(entry, history)
	require.NoError(t, err)

	// sorted durations [1 1 1 1 10]: q1 = q3 = 1, so the fences collapse
	// to [1, 1] and 10 is outside them
	anomalies := issuesOfType(result.Issues, model.IssueAnomaly)
	require.Len(t, anomalies, 1)
	assert.Equal(t, model.SeverityMedium, anomalies[0].Severity)
	assert.Contains(t, anomalies[0].Message, "unusual")
	assert.True(t, result.IsValid)
	assert.InDelta(t, 0.7, result.Confidence, 1e-9)
}

func TestValidateAnomalySkippedWithSmallHistory(t *testing.T) {
	history := []model.WorkloadEntry{
		testEntry(2, day(2024, 1, 8), "09:00", "10:00", 1),
		testEntry(3, day(2024, 1, 9), "09:00", "10:00", 1),
		testEntry(4, day(2024, 1, 10), "09:00", "10:00", 1),
		testEntry(5, day(2024, 1, 11), "09:00", "10:00", 1),
	}

	// Extreme duration, but only 4 existing entries overall.
	entry := testEntry(1, day(2024, 1, 15), "08:00", "20:00", 12)

	result, err := Validate(entry, history)
	require.NoError(t, err)

	assert.Empty(t, issuesOfType(result.Issues, model.IssueAnomaly))
}

func TestValidateAnomalyDoubleGuard(t *testing.T) {
	// Five entries globally, but only two belong to the entry's user:
	// the outer guard passes and the per-user guard then skips the check.
	history := []model.WorkloadEntry{
		testEntry(2, day(2024, 1, 8), "09:00", "10:00", 1),
		testEntry(3, day(2024, 1, 9), "09:00", "10:00", 1),
	}
	for i := int64(4); i <= 6; i++ {
		other := testEntry(i, day(2024, 1, int(i)), "09:00", "10:00", 1)
		other.UserID = 99
		history = append(history, other)
	}

	entry := testEntry(1, day(2024, 1, 15), "08:00", "20:00", 12)

	result, err := Validate(entry, history)
	require.NoError(t, err)

	assert.Empty(t, issuesOfType(result.Issues, model.IssueAnomaly))
}

func TestValidateAnomalyWithinBounds(t *testing.T) {
	history := []model.WorkloadEntry{
		testEntry(2, day(2024, 1, 8), "09:00", "11:00", 2),
		testEntry(3, day(2024, 1, 9), "09:00", "12:00", 3),
		testEntry(4, day(2024, 1, 10), "09:00", "11:30", 2.5),
		testEntry(5, day(2024, 1, 11), "09:00", "12:00", 3),
		testEntry(6, day(2024, 1, 12), "09:00", "11:00", 2),
	}

	entry := testEntry(1, day(2024, 1, 15), "09:00", "11:30", 2.5)

	result, err := Validate(entry, history)
	require.NoError(t, err)

	assert.Empty(t, issuesOfType(result.Issues, model.IssueAnomaly))
	assert.True(t, result.IsValid)
}

func TestValidateConfidenceAggregation(t *testing.T) {
	// One high (overlap) and one medium (13 hour session): 1 - 0.8 = 0.2.
	entry := testEntry(1, day(2024, 1, 15), "08:00", "21:00", 13)
	existing := []model.WorkloadEntry{
		testEntry(2, day(2024, 1, 15), "09:00", "10:00", 1),
	}

	result, err := Validate(entry, existing)
	require.NoError(t, err)

	require.Len(t, result.Issues, 2)
	assert.False(t, result.IsValid)
	assert.InDelta(t, 0.2, result.Confidence, 1e-9)
}

func TestValidateConfidenceFloor(t *testing.T) {
	// Enough high-severity issues drive the confidence to the floor of 0.
	entry := testEntry(1, day(2024, 1, 15), "01:00", "23:00", 22)
	existing := []model.WorkloadEntry{
		testEntry(2, day(2024, 1, 15), "02:00", "03:00", 1),
		testEntry(3, day(2024, 1, 15), "04:00", "05:00", 1),
		testEntry(4, day(2024, 1, 15), "06:00", "07:00", 1),
	}

	result, err := Validate(entry, existing)
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestValidateIssueOrdering(t *testing.T) {
	// Overlap issues must come before impossible-hours issues, which
	// come before suspicious-pattern issues.
	entry := testEntry(1, day(2024, 1, 15), "01:00", "22:00", 21)
	existing := []model.WorkloadEntry{
		testEntry(2, day(2024, 1, 15), "02:00", "03:00", 1),
	}

	result, err := Validate(entry, existing)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(result.Issues), 3)
	assert.Equal(t, model.IssueOverlap, result.Issues[0].Type)
	assert.Equal(t, model.IssueImpossibleHours, result.Issues[1].Type)
	assert.Equal(t, model.IssueSuspiciousPattern, result.Issues[2].Type)
}

func TestValidateClassifierSuggestion(t *testing.T) {
	entry := testEntry(1, day(2024, 1, 15), "09:00", "10:30", 1.5)
	entry.Activity = "delivered a lecture class to teach calculus"

	result, err := Validate(entry, nil)
	require.NoError(t, err)

	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, "Activity appears to be: lecture (100% confidence)", result.Suggestions[0])
}

func TestValidateNoSuggestionAtLowConfidence(t *testing.T) {
	entry := testEntry(1, day(2024, 1, 15), "09:00", "10:30", 1.5)
	entry.Activity = "miscellaneous duties"

	result, err := Validate(entry, nil)
	require.NoError(t, err)

	assert.Empty(t, result.Suggestions)
}

func TestValidateInvalidTimeFormat(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*model.WorkloadEntry, *model.WorkloadEntry)
		existing bool
	}{
		{
			name: "bad entry time in",
			mutate: func(entry, _ *model.WorkloadEntry) {
				entry.TimeIn = "morning"
			},
		},
		{
			name: "bad entry time out",
			mutate: func(entry, _ *model.WorkloadEntry) {
				entry.TimeOut = "25:00"
			},
		},
		{
			name: "bad existing entry time",
			mutate: func(_, existing *model.WorkloadEntry) {
				existing.TimeIn = "9am"
			},
			existing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := testEntry(1, day(2024, 1, 15), "09:00", "10:30", 1.5)
			other := testEntry(2, day(2024, 1, 15), "11:00", "12:00", 1)
			tt.mutate(&entry, &other)

			var existing []model.WorkloadEntry
			if tt.existing {
				existing = []model.WorkloadEntry{other}
			}

			_, err := Validate(entry, existing)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidTimeFormat)
		})
	}
}

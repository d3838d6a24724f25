package cli

import (
	"testing"

	"facultyload/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFormatClassification(t *testing.T) {
	out := FormatClassification(model.ClassificationResult{
		Category:   model.CategoryLab,
		Confidence: 0.67,
	})

	assert.Contains(t, out, "lab")
	assert.Contains(t, out, "67% confidence")
}

func TestFormatValidationResultValid(t *testing.T) {
	out := FormatValidationResult(&model.ValidationResult{
		IsValid:    true,
		Confidence: 1,
	})

	assert.Contains(t, out, "Entry looks valid")
	assert.Contains(t, out, "100%")
}

func TestFormatValidationResultWithIssues(t *testing.T) {
	result := &model.ValidationResult{
		IsValid:    false,
		Confidence: 0.5,
		Issues: []model.ValidationIssue{
			{
				Type:        model.IssueOverlap,
				Severity:    model.SeverityHigh,
				Message:     "Time overlap detected with existing entry (10:00-11:00)",
				Suggestions: []string{"Adjust time to avoid overlap"},
			},
			{
				Type:     model.IssueImpossibleHours,
				Severity: model.SeverityMedium,
				Message:  "Work session exceeds 12 hours",
			},
		},
		Suggestions: []string{"Activity appears to be: lecture (85% confidence)"},
	}

	out := FormatValidationResult(result)

	assert.Contains(t, out, "Entry flagged for review")
	assert.Contains(t, out, "Time overlap detected with existing entry (10:00-11:00)")
	assert.Contains(t, out, "Adjust time to avoid overlap")
	assert.Contains(t, out, "Work session exceeds 12 hours")
	assert.Contains(t, out, "Activity appears to be: lecture (85% confidence)")
}

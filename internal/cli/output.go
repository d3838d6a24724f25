package cli

import (
	"fmt"
	"strings"

	"facultyload/internal/model"
)

// FormatClassification renders a classification result for the terminal.
func FormatClassification(result model.ClassificationResult) string {
	return fmt.Sprintf("%s %s",
		BoldStyle.Render(string(result.Category)),
		SubtleStyle.Render(fmt.Sprintf("(%.0f%% confidence)", result.Confidence*100)))
}

// FormatValidationResult renders a validation result: verdict line,
// issues grouped with their suggestions, then classifier suggestions.
func FormatValidationResult(result *model.ValidationResult) string {
	var b strings.Builder

	if result.IsValid {
		b.WriteString(SuccessStyle.Render(fmt.Sprintf("%s Entry looks valid", SuccessIcon)))
	} else {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("%s Entry flagged for review", ErrorIcon)))
	}
	b.WriteString(SubtleStyle.Render(fmt.Sprintf(" (confidence %.0f%%)", result.Confidence*100)))
	b.WriteString("\n")

	for _, issue := range result.Issues {
		b.WriteString(formatIssue(issue))
	}

	for _, suggestion := range result.Suggestions {
		b.WriteString(fmt.Sprintf("%s %s\n", BulletIcon, suggestion))
	}

	return b.String()
}

func formatIssue(issue model.ValidationIssue) string {
	var style = WarningStyle
	if issue.Severity == model.SeverityHigh {
		style = ErrorStyle
	} else if issue.Severity == model.SeverityLow {
		style = SubtleStyle
	}

	var b strings.Builder
	b.WriteString(style.Render(fmt.Sprintf("%s [%s/%s] %s", WarningIcon, issue.Type, issue.Severity, issue.Message)))
	b.WriteString("\n")
	for _, suggestion := range issue.Suggestions {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("    %s %s", BulletIcon, suggestion)))
		b.WriteString("\n")
	}
	return b.String()
}

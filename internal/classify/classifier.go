// Package classify infers a workload category from free-text activity
// descriptions using keyword scoring. It holds no state; both entry
// points are pure functions over the fixed keyword table.
package classify

import (
	"strings"

	"facultyload/internal/model"
)

// minConfidence is the floor applied to every classification.
const minConfidence = 0.3

// Classify maps an activity description to a category with a confidence
// score. Each keyword counts at most once regardless of how often it
// appears; the first category in table order wins ties, so text matching
// nothing falls back to lecture at the confidence floor.
func Classify(activity string) model.ClassificationResult {
	text := strings.ToLower(activity)

	maxScore := 0
	predicted := model.CategoryLecture

	for _, ck := range keywordTable {
		score := 0
		for _, keyword := range ck.keywords {
			if strings.Contains(text, keyword) {
				score++
			}
		}
		if score > maxScore {
			maxScore = score
			predicted = ck.category
		}
	}

	confidence := minConfidence
	if maxScore > 0 {
		confidence = float64(maxScore) / 3
		if confidence > 1 {
			confidence = 1
		}
		if confidence < minConfidence {
			confidence = minConfidence
		}
	}

	return model.ClassificationResult{
		Category:   predicted,
		Confidence: confidence,
	}
}

// ClassifyWithContext refines Classify using the surrounding subject and
// session duration. An empty subject or zero duration means the context
// is unknown and leaves the base result untouched. Only an upper clamp
// is applied to the adjusted confidence.
func ClassifyWithContext(activity, subject string, duration float64) model.ClassificationResult {
	result := Classify(activity)

	if duration != 0 {
		switch {
		case duration <= 1 && result.Category == model.CategoryLecture:
			// Short sessions make a lecture reading less certain.
			result.Confidence *= 0.8
		case duration >= 3 && result.Category == model.CategoryLab:
			// Long sessions strengthen a lab reading.
			result.Confidence *= 1.2
		}
	}

	if subject != "" {
		if strings.Contains(strings.ToLower(subject), "lab") && result.Category == model.CategoryLecture {
			result.Category = model.CategoryLab
			result.Confidence *= 1.1
		}
	}

	if result.Confidence > 1 {
		result.Confidence = 1
	}

	return result
}

package model

// ClassificationResult is the outcome of classifying an activity
// description. Confidence is always within [0.3, 1.0].
type ClassificationResult struct {
	Category   Category `json:"category"`
	Confidence float64  `json:"confidence"`
}

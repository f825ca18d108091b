package analysis

import "fmt"

// Thresholds holds the quality-validation thresholds. They are distinct
// from the retry loop's minimum usable length on purpose: the two measure
// different things and are tuned independently.
type Thresholds struct {
	MinDescriptionChars  int // below this the record is invalid
	GoodDescriptionChars int // below this a warning is emitted
	MinObjects           int
	MinTags              int
	MinConfidence        float64
}

// DefaultThresholds returns the standard validation thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinDescriptionChars:  200,
		GoodDescriptionChars: 400,
		MinObjects:           3,
		MinTags:              3,
		MinConfidence:        0.5,
	}
}

// Validate scores a record's completeness. The result is informational:
// it never blocks record construction or delivery, callers log it.
func Validate(record *AnalysisRecord, t Thresholds) (bool, []string) {
	valid := true
	var warnings []string

	switch {
	case len(record.DescriptionFull) < t.MinDescriptionChars:
		valid = false
		warnings = append(warnings, fmt.Sprintf("description too short: %d chars (minimum %d)", len(record.DescriptionFull), t.MinDescriptionChars))
	case len(record.DescriptionFull) < t.GoodDescriptionChars:
		warnings = append(warnings, fmt.Sprintf("description shorter than desired: %d chars (want %d)", len(record.DescriptionFull), t.GoodDescriptionChars))
	}

	if !ValidCategory(record.SceneCategory) {
		valid = false
		warnings = append(warnings, fmt.Sprintf("unknown scene category %q", record.SceneCategory))
	}

	if len(record.DetectedObjects) < t.MinObjects {
		warnings = append(warnings, fmt.Sprintf("few objects detected: %d (want %d)", len(record.DetectedObjects), t.MinObjects))
	}

	if len(record.Tags) < t.MinTags {
		warnings = append(warnings, fmt.Sprintf("few tags: %d (want %d)", len(record.Tags), t.MinTags))
	}

	if record.Confidence < t.MinConfidence {
		warnings = append(warnings, fmt.Sprintf("low confidence: %.2f (want %.2f)", record.Confidence, t.MinConfidence))
	}

	return valid, warnings
}

package analysis

// FallbackRecord returns the minimal valid record used when invocation
// cannot produce any usable text. Every consumer-required field is
// populated with its total default.
func FallbackRecord(elapsedMS int64) *AnalysisRecord {
	return &AnalysisRecord{
		DescriptionFull:  PlaceholderDescription,
		DescriptionShort: PlaceholderDescription,
		DetectedObjects:  []string{},
		DetectedFaces:    0,
		SceneCategory:    CategoryOther,
		Tags:             []string{},
		Confidence:       0.0,
		ProcessingTimeMS: elapsedMS,
		ModelVersion:     FallbackModelVersion,
	}
}

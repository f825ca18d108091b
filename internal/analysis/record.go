// Package analysis converts free-form vision-model output into structured,
// validated photo-description records. The pipeline is a fixed sequence of
// pure stages (clean, extract, normalize, validate) driven by a retrying
// invocation controller; every stage is total, so a record is always
// produced even under complete upstream failure.
package analysis

// AnalysisRequest describes one photo to analyze.
type AnalysisRequest struct {
	// ImagePath is an opaque image reference: a local file path or URL.
	ImagePath string `json:"image_path"`

	// LocationHint is an optional place name to fold into the prompt.
	LocationHint string `json:"location_hint,omitempty"`

	// FaceHint is optional face-cluster context, e.g. "likely shows Anna
	// and Marco".
	FaceHint string `json:"face_hint,omitempty"`

	// Model overrides the configured model when non-empty.
	Model string `json:"model,omitempty"`

	// Detailed selects the deep model variant instead of the fast one.
	Detailed bool `json:"detailed,omitempty"`

	// AllowFallback controls transport-failure behavior: when true the
	// pipeline returns a minimal fallback record, when false the failure
	// surfaces as an *InvokeError so batch tooling can distinguish infra
	// failures from content failures.
	AllowFallback bool `json:"allow_fallback,omitempty"`
}

// AnalysisRecord is the pipeline's output contract. Once returned it is
// never mutated; downstream consumers persist or index it verbatim.
type AnalysisRecord struct {
	// DescriptionFull is always non-empty and at most 2000 characters.
	DescriptionFull string `json:"description_full"`

	// DescriptionShort is the first sentence of the full description,
	// at most 200 characters.
	DescriptionShort string `json:"description_short"`

	// ExtractedText lists text visually present in the image, in order of
	// appearance. Nil when no text was found; never contains "".
	ExtractedText []string `json:"extracted_text,omitempty"`

	// DetectedObjects holds canonical object names, deduplicated, capped
	// at 12.
	DetectedObjects []string `json:"detected_objects"`

	// DetectedFaces is the number of people or faces described, >= 0.
	DetectedFaces int `json:"detected_faces"`

	// SceneCategory is one of the values in Categories.
	SceneCategory string `json:"scene_category"`

	// Tags holds deduplicated descriptive labels, capped at 8.
	Tags []string `json:"tags"`

	// Confidence is a heuristic completeness proxy in [0, 0.90], not a
	// calibrated probability.
	Confidence float64 `json:"confidence_score"`

	// Provenance metadata.
	ProcessingTimeMS int64  `json:"processing_time_ms"`
	ModelVersion     string `json:"model_version"`
}

// Scene categories form a closed set; extraction never produces a value
// outside it.
const (
	CategoryIndoor   = "indoor"
	CategoryOutdoor  = "outdoor"
	CategoryFood     = "food"
	CategoryDocument = "document"
	CategoryPeople   = "people"
	CategoryNature   = "nature"
	CategoryUrban    = "urban"
	CategoryVehicle  = "vehicle"
	CategoryOther    = "other"
)

// Categories is the closed scene-category set.
var Categories = []string{
	CategoryIndoor,
	CategoryOutdoor,
	CategoryFood,
	CategoryDocument,
	CategoryPeople,
	CategoryNature,
	CategoryUrban,
	CategoryVehicle,
	CategoryOther,
}

// ValidCategory reports whether c is in the closed category set.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Output caps shared by the extraction stages.
const (
	maxDescriptionChars      = 2000
	maxShortDescriptionChars = 200
	maxExtractedText         = 20
	maxObjects               = 12
	maxTags                  = 8
	maxConfidence            = 0.90
)

// Default phrases used when the model produced nothing usable.
const (
	// PlaceholderDescription replaces an unusably short description after
	// the retry budget is exhausted.
	PlaceholderDescription = "A photo from the diary. The image could not be described in detail."

	// FallbackModelVersion marks records produced without any model
	// output.
	FallbackModelVersion = "fallback"
)

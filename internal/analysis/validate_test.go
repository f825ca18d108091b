package analysis

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	longDescription := strings.Repeat("Una descrizione molto dettagliata della scena. ", 10) // ~470 chars

	tests := []struct {
		name         string
		record       *AnalysisRecord
		wantValid    bool
		wantWarnings int
	}{
		{
			name: "complete record",
			record: &AnalysisRecord{
				DescriptionFull: longDescription,
				SceneCategory:   CategoryFood,
				DetectedObjects: []string{"table", "plate", "cup"},
				Tags:            []string{"food", "table", "bright"},
				Confidence:      0.7,
			},
			wantValid:    true,
			wantWarnings: 0,
		},
		{
			name: "short description is invalid",
			record: &AnalysisRecord{
				DescriptionFull: "Breve.",
				SceneCategory:   CategoryOther,
				DetectedObjects: []string{"a", "b", "c"},
				Tags:            []string{"x", "y", "z"},
				Confidence:      0.6,
			},
			wantValid:    false,
			wantWarnings: 1,
		},
		{
			name: "mid length description warns but stays valid",
			record: &AnalysisRecord{
				DescriptionFull: strings.Repeat("a", 250),
				SceneCategory:   CategoryIndoor,
				DetectedObjects: []string{"a", "b", "c"},
				Tags:            []string{"x", "y", "z"},
				Confidence:      0.6,
			},
			wantValid:    true,
			wantWarnings: 1,
		},
		{
			name: "unknown category is invalid",
			record: &AnalysisRecord{
				DescriptionFull: longDescription,
				SceneCategory:   "selfie",
				DetectedObjects: []string{"a", "b", "c"},
				Tags:            []string{"x", "y", "z"},
				Confidence:      0.6,
			},
			wantValid:    false,
			wantWarnings: 1,
		},
		{
			name: "soft warnings only",
			record: &AnalysisRecord{
				DescriptionFull: longDescription,
				SceneCategory:   CategoryNature,
				DetectedObjects: []string{"tree"},
				Tags:            []string{"nature"},
				Confidence:      0.3,
			},
			wantValid:    true,
			wantWarnings: 3, // objects, tags, confidence
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, warnings := Validate(tt.record, DefaultThresholds())
			if valid != tt.wantValid {
				t.Errorf("valid = %v, want %v (warnings: %v)", valid, tt.wantValid, warnings)
			}
			if len(warnings) != tt.wantWarnings {
				t.Errorf("warnings = %v, want %d of them", warnings, tt.wantWarnings)
			}
		})
	}
}

func TestFallbackRecordIsValidShape(t *testing.T) {
	record := FallbackRecord(1234)

	if record.DescriptionFull == "" {
		t.Error("fallback record has empty description")
	}
	if !ValidCategory(record.SceneCategory) {
		t.Errorf("fallback category %q not in closed set", record.SceneCategory)
	}
	if record.Confidence != 0.0 {
		t.Errorf("fallback confidence = %.2f, want 0", record.Confidence)
	}
	if record.ModelVersion != FallbackModelVersion {
		t.Errorf("fallback model version = %q, want %q", record.ModelVersion, FallbackModelVersion)
	}
	if record.ProcessingTimeMS != 1234 {
		t.Errorf("fallback processing time = %d, want 1234", record.ProcessingTimeMS)
	}
	if record.DetectedObjects == nil || record.Tags == nil {
		t.Error("fallback lists must be non-nil empty slices")
	}
}

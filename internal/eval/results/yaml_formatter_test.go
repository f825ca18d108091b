package results

import (
	"strings"
	"testing"

	"photodiary/internal/eval/metrics"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := EvalConfig{
		Provider:    "ollama",
		Model:       "qwen2.5vl:3b",
		DatasetPath: "photos.jsonl",
		SampleSize:  2,
	}
	summary := metrics.Aggregate{Items: 2, Scored: 2, CategoryAccuracy: 0.5}
	items := []metrics.ItemResult{
		{ID: "p1", Comparison: &metrics.Comparison{CategoryCorrect: true, OverallScore: 1}},
		{ID: "p2", Comparison: &metrics.Comparison{OverallScore: 0.2}},
	}

	path, err := SaveToYAML(cfg, summary, items)
	if err != nil {
		t.Fatalf("SaveToYAML returned error: %v", err)
	}

	spec, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML returned error: %v", err)
	}
	if spec.Config.Model != "qwen2.5vl:3b" || spec.Config.Timestamp == "" {
		t.Errorf("config = %+v", spec.Config)
	}
	if spec.Summary.Items != 2 || len(spec.Results) != 2 {
		t.Errorf("summary = %+v, results = %d", spec.Summary, len(spec.Results))
	}
}

func TestSaveToYAMLRegistryModelName(t *testing.T) {
	t.Chdir(t.TempDir())

	// Registry-style names must not introduce path separators.
	path, err := SaveToYAML(EvalConfig{Model: "library/llava:7b"}, metrics.Aggregate{}, nil)
	if err != nil {
		t.Fatalf("SaveToYAML returned error: %v", err)
	}
	if strings.Contains(path, "library/") || strings.Contains(path, "llava:") {
		t.Errorf("model name not sanitized in path %q", path)
	}
	if !strings.Contains(path, "library_llava_7b-") {
		t.Errorf("path = %q, want sanitized model prefix", path)
	}
}

func TestSanitizeModelName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"qwen2.5vl:3b", "qwen2.5vl_3b"},
		{"library/llava:7b", "library_llava_7b"},
		{"plain", "plain"},
		{"", "unknown"},
	}
	for _, tt := range tests {
		if got := sanitizeModelName(tt.in); got != tt.want {
			t.Errorf("sanitizeModelName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package results

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"photodiary/internal/eval/metrics"
)

// EvalConfig records how an evaluation run was configured.
type EvalConfig struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	DatasetPath string `yaml:"datasetpath"`
	SampleSize  int    `yaml:"samplesize"`
	Offline     bool   `yaml:"offline"`
	Timestamp   string `yaml:"timestamp"`
}

// EvalSpec is the complete YAML document written for one run.
type EvalSpec struct {
	Config  EvalConfig           `yaml:"config"`
	Summary metrics.Aggregate    `yaml:"summary"`
	Results []metrics.ItemResult `yaml:"results"`
}

// SaveToYAML writes evaluation results into the evals/ directory and
// returns the file path.
func SaveToYAML(cfg EvalConfig, summary metrics.Aggregate, results []metrics.ItemResult) (string, error) {
	if err := os.MkdirAll("evals", 0755); err != nil {
		return "", fmt.Errorf("failed to create evals directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	cfg.Timestamp = timestamp

	spec := EvalSpec{
		Config:  cfg,
		Summary: summary,
		Results: results,
	}

	filename := fmt.Sprintf("evals/%s-%s.yaml", sanitizeModelName(cfg.Model), timestamp)

	data, err := yaml.Marshal(&spec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write YAML file: %w", err)
	}

	absPath, _ := filepath.Abs(filename)
	return absPath, nil
}

// sanitizeModelName makes a registry-style model name safe for use in a
// filename: "library/llava:7b" would otherwise produce a nested path.
func sanitizeModelName(model string) string {
	model = strings.ReplaceAll(model, "/", "_")
	model = strings.ReplaceAll(model, ":", "_")
	if model == "" {
		model = "unknown"
	}
	return model
}

// LoadFromYAML reads a previously saved evaluation file.
func LoadFromYAML(path string) (*EvalSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}

	var spec EvalSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse results file: %w", err)
	}
	return &spec, nil
}

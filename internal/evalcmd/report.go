package evalcmd

import (
	"fmt"

	"photodiary/internal/eval/results"
)

func executeReport(path string) error {
	spec, err := results.LoadFromYAML(path)
	if err != nil {
		return err
	}

	fmt.Printf("Evaluation run: %s / %s (%s)\n", spec.Config.Provider, spec.Config.Model, spec.Config.Timestamp)
	fmt.Printf("Dataset: %s (sample %d, offline=%v)\n\n", spec.Config.DatasetPath, spec.Config.SampleSize, spec.Config.Offline)

	s := spec.Summary
	fmt.Printf("Items:             %d\n", s.Items)
	fmt.Printf("Scored:            %d\n", s.Scored)
	fmt.Printf("Failures:          %d\n", s.Failures)
	for kind, count := range s.FailuresByKind {
		fmt.Printf("  %-16s %d\n", kind+":", count)
	}
	fmt.Printf("Category accuracy: %.2f\n", s.CategoryAccuracy)
	fmt.Printf("Mean object F1:    %.2f\n", s.MeanObjectF1)
	fmt.Printf("Mean face error:   %.2f\n", s.MeanFaceError)
	fmt.Printf("Mean overall:      %.2f\n\n", s.MeanOverall)

	low := 0
	for _, r := range spec.Results {
		if r.Comparison != nil && r.Comparison.OverallScore < 0.5 {
			low++
			if low <= 10 {
				fmt.Printf("low score %.2f: %s (category %s vs %s, object F1 %.2f)\n",
					r.Comparison.OverallScore, r.ID,
					r.Comparison.CategoryActual, r.Comparison.CategoryExpected,
					r.Comparison.ObjectF1)
			}
		}
	}
	if low > 10 {
		fmt.Printf("... and %d more low-scoring items\n", low-10)
	}
	return nil
}

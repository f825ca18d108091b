package metrics

// ItemResult pairs an evaluated dataset item with its comparison, or with
// the failure that prevented one. Infrastructure failures carry the error
// kind so they can be reported separately from content quality.
type ItemResult struct {
	ID         string      `json:"id" yaml:"id"`
	Comparison *Comparison `json:"comparison,omitempty" yaml:"comparison,omitempty"`
	Error      string      `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind  string      `json:"error_kind,omitempty" yaml:"errorkind,omitempty"`
}

// Aggregate summarizes an evaluation run.
type Aggregate struct {
	Items            int     `json:"items" yaml:"items"`
	Scored           int     `json:"scored" yaml:"scored"`
	Failures         int     `json:"failures" yaml:"failures"`
	CategoryAccuracy float64 `json:"category_accuracy" yaml:"categoryaccuracy"`
	MeanObjectF1     float64 `json:"mean_object_f1" yaml:"meanobjectf1"`
	MeanFaceError    float64 `json:"mean_face_error" yaml:"meanfaceerror"`
	MeanOverall      float64 `json:"mean_overall" yaml:"meanoverall"`

	FailuresByKind map[string]int `json:"failures_by_kind,omitempty" yaml:"failuresbykind,omitempty"`
}

// Summarize reduces per-item results into an Aggregate.
func Summarize(results []ItemResult) Aggregate {
	agg := Aggregate{
		Items:          len(results),
		FailuresByKind: map[string]int{},
	}

	categoryHits := 0
	var f1Sum, faceErrSum, overallSum float64

	for _, r := range results {
		if r.Comparison == nil {
			agg.Failures++
			kind := r.ErrorKind
			if kind == "" {
				kind = "unknown"
			}
			agg.FailuresByKind[kind]++
			continue
		}
		agg.Scored++
		if r.Comparison.CategoryCorrect {
			categoryHits++
		}
		f1Sum += r.Comparison.ObjectF1
		faceErrSum += float64(r.Comparison.FaceError)
		overallSum += r.Comparison.OverallScore
	}

	if agg.Scored > 0 {
		agg.CategoryAccuracy = float64(categoryHits) / float64(agg.Scored)
		agg.MeanObjectF1 = f1Sum / float64(agg.Scored)
		agg.MeanFaceError = faceErrSum / float64(agg.Scored)
		agg.MeanOverall = overallSum / float64(agg.Scored)
	}
	if len(agg.FailuresByKind) == 0 {
		agg.FailuresByKind = nil
	}
	return agg
}

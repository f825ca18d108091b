// Package metrics compares pipeline output against reference annotations
// and aggregates the per-item scores of an evaluation run.
package metrics

import (
	"strings"

	"photodiary/internal/analysis"
	"photodiary/internal/eval/dataset"
)

// Comparison holds the per-item scores of one record against its
// reference annotation.
type Comparison struct {
	CategoryExpected string  `json:"category_expected" yaml:"categoryexpected"`
	CategoryActual   string  `json:"category_actual" yaml:"categoryactual"`
	CategoryCorrect  bool    `json:"category_correct" yaml:"categorycorrect"`
	ObjectPrecision  float64 `json:"object_precision" yaml:"objectprecision"`
	ObjectRecall     float64 `json:"object_recall" yaml:"objectrecall"`
	ObjectF1         float64 `json:"object_f1" yaml:"objectf1"`
	FacesExpected    int     `json:"faces_expected" yaml:"facesexpected"`
	FacesActual      int     `json:"faces_actual" yaml:"facesactual"`
	FaceError        int     `json:"face_error" yaml:"faceerror"`
	OverallScore     float64 `json:"overall_score" yaml:"overallscore"`
}

// Weights of the overall score. Category and object agreement dominate;
// the face count contributes the remainder.
const (
	categoryWeight = 0.4
	objectWeight   = 0.4
	faceWeight     = 0.2
)

// Compare scores one record against its reference annotation.
func Compare(record *analysis.AnalysisRecord, ref dataset.PhotoRecord) *Comparison {
	c := &Comparison{
		CategoryExpected: ref.Category,
		CategoryActual:   record.SceneCategory,
		FacesExpected:    ref.Faces,
		FacesActual:      record.DetectedFaces,
	}

	c.CategoryCorrect = ref.Category != "" && strings.EqualFold(ref.Category, record.SceneCategory)
	c.ObjectPrecision, c.ObjectRecall, c.ObjectF1 = objectScores(record.DetectedObjects, ref.Objects)

	c.FaceError = ref.Faces - record.DetectedFaces
	if c.FaceError < 0 {
		c.FaceError = -c.FaceError
	}

	faceScore := 1.0 / float64(1+c.FaceError)
	categoryScore := 0.0
	if c.CategoryCorrect {
		categoryScore = 1.0
	}
	c.OverallScore = categoryWeight*categoryScore + objectWeight*c.ObjectF1 + faceWeight*faceScore
	return c
}

// objectScores computes precision, recall and F1 of the detected objects
// against the reference objects, case-insensitively.
func objectScores(detected, reference []string) (precision, recall, f1 float64) {
	if len(detected) == 0 && len(reference) == 0 {
		return 1, 1, 1
	}
	if len(detected) == 0 || len(reference) == 0 {
		return 0, 0, 0
	}

	refSet := make(map[string]bool, len(reference))
	for _, o := range reference {
		refSet[strings.ToLower(strings.TrimSpace(o))] = true
	}

	hits := 0
	for _, o := range detected {
		if refSet[strings.ToLower(strings.TrimSpace(o))] {
			hits++
		}
	}

	precision = float64(hits) / float64(len(detected))
	recall = float64(hits) / float64(len(reference))
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	return precision, recall, f1
}

package models

import (
	"time"

	"photodiary/internal/analysis"
)

// PhotoSession represents one analyzed photo held by the web interface.
type PhotoSession struct {
	ID        string                   `json:"id"`
	Photo     PhotoItem                `json:"photo"`
	Record    *analysis.AnalysisRecord `json:"record,omitempty"`
	Error     string                   `json:"error,omitempty"`
	CreatedAt time.Time                `json:"created_at"`
}

// PhotoItem represents the uploaded photo backing a session.
type PhotoItem struct {
	ImagePath   string `json:"image_path"`
	ImageURL    string `json:"image_url"`
	ImageWidth  int    `json:"image_width"`
	ImageHeight int    `json:"image_height"`
}

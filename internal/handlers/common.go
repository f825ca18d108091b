package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"photodiary/internal/analysis"
	"photodiary/internal/config"
	"photodiary/internal/images"
	"photodiary/internal/models"
	"photodiary/internal/storage"
)

// Handler serves the photo-analysis web API. All collaborators are
// injected through New.
type Handler struct {
	cfg          *config.Config
	sessionStore *storage.SessionStore
	service      *analysis.Service
	loader       *images.Loader
	history      *analysis.History
}

func New(cfg *config.Config, service *analysis.Service, loader *images.Loader, history *analysis.History) *Handler {
	return &Handler{
		cfg:          cfg,
		sessionStore: storage.New(),
		service:      service,
		loader:       loader,
		history:      history,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// Session helpers
func (h *Handler) getSessionOrError(w http.ResponseWriter, sessionID string) (*models.PhotoSession, bool) {
	session, exists := h.sessionStore.Get(sessionID)
	if !exists {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}

// createPhotoSession runs the pipeline for a stored photo and records the
// result. Interactive uploads always allow the fallback record, so the
// session carries a usable description even when the model is down.
func (h *Handler) createPhotoSession(r *http.Request, sessionID, imagePath string, req analysis.AnalysisRequest) *models.PhotoSession {
	session := &models.PhotoSession{
		ID:        sessionID,
		CreatedAt: time.Now(),
	}

	width, height, err := images.Dimensions(imagePath)
	if err != nil {
		slog.Warn("Failed to get image dimensions", "error", err)
	}
	session.Photo = models.PhotoItem{
		ImagePath:   imagePath,
		ImageURL:    "/static/" + strings.ReplaceAll(imagePath, string(filepath.Separator), "/"),
		ImageWidth:  width,
		ImageHeight: height,
	}

	req.ImagePath = imagePath
	req.AllowFallback = true

	record, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		slog.Error("Failed to analyze photo", "session_id", sessionID, "error", err)
		session.Error = err.Error()
		return session
	}

	session.Record = record
	slog.Info("Photo analyzed",
		"session_id", sessionID,
		"category", record.SceneCategory,
		"confidence", fmt.Sprintf("%.2f", record.Confidence),
		"ms", record.ProcessingTimeMS)
	return session
}

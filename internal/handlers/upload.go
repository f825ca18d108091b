package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"photodiary/internal/analysis"
)

func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// JSON body with an image URL, or a multipart file upload
	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		h.handleURLUpload(w, r)
		return
	}

	h.handleFileUpload(w, r)
}

func (h *Handler) handleURLUpload(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ImageURL     string `json:"image_url"`
		LocationHint string `json:"location_hint"`
		FaceHint     string `json:"face_hint"`
		Model        string `json:"model"`
		Detailed     bool   `json:"detailed"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if request.ImageURL == "" {
		h.writeError(w, "image_url is required", http.StatusBadRequest)
		return
	}

	imageData, err := h.loader.Load(r.Context(), request.ImageURL)
	if err != nil {
		h.writeError(w, "Failed to fetch image URL: "+err.Error(), http.StatusBadRequest)
		return
	}

	parts := strings.Split(request.ImageURL, "/")
	filename := parts[len(parts)-1]
	if filename == "" {
		filename = "photo.jpg"
	}

	h.analyzeAndRespond(w, r, imageData, filename, analysis.AnalysisRequest{
		LocationHint: request.LocationHint,
		FaceHint:     request.FaceHint,
		Model:        request.Model,
		Detailed:     request.Detailed,
	})
}

func (h *Handler) handleFileUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("photo")
	if err != nil {
		file, header, err = r.FormFile("file")
		if err != nil {
			h.writeError(w, "Failed to read file: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	defer file.Close()

	fileData, err := io.ReadAll(io.LimitReader(file, h.cfg.MaxUploadBytes+1))
	if err != nil {
		h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if int64(len(fileData)) > h.cfg.MaxUploadBytes {
		h.writeError(w, fmt.Sprintf("File too large (max %d MB)", h.cfg.MaxUploadBytes/1024/1024), http.StatusBadRequest)
		return
	}

	h.analyzeAndRespond(w, r, fileData, header.Filename, analysis.AnalysisRequest{
		LocationHint: r.FormValue("location_hint"),
		FaceHint:     r.FormValue("face_hint"),
		Model:        r.FormValue("model"),
		Detailed:     r.FormValue("detailed") == "true",
	})
}

func (h *Handler) analyzeAndRespond(w http.ResponseWriter, r *http.Request, fileData []byte, filename string, req analysis.AnalysisRequest) {
	if err := h.loader.Validate(fileData); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	imagePath, err := h.loader.Save(fileData, filename, h.cfg.UploadsDir)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	baseFilename := strings.TrimSuffix(filename, filepath.Ext(filename))
	sessionID := fmt.Sprintf("%s_%d", baseFilename, time.Now().Unix())

	session := h.createPhotoSession(r, sessionID, imagePath, req)
	h.sessionStore.Set(sessionID, session)

	h.writeJSON(w, session)
}

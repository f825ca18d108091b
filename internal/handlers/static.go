package handlers

import (
	"net/http"
	"strings"
)

func (h *Handler) HandleStatic(w http.ResponseWriter, r *http.Request) {
	filepath := strings.TrimPrefix(r.URL.Path, "/static/")

	if strings.HasPrefix(filepath, h.cfg.UploadsDir+"/") {
		// Prevent directory traversal attacks
		if strings.Contains(filepath, "..") {
			http.Error(w, "Invalid file path", http.StatusBadRequest)
			return
		}
		http.ServeFile(w, r, filepath)
		return
	}

	http.NotFound(w, r)
}

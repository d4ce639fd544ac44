package http

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"bicirent-backend/internal/storage"
)

// UploadHandler serves the mock storage endpoints that back the presigned
// URLs handed out in development.
type UploadHandler struct {
	backend storage.Backend
}

func NewUploadHandler(backend storage.Backend) *UploadHandler {
	return &UploadHandler{backend: backend}
}

// HandleUpload accepts a PUT against a mock presigned URL.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
	default:
		http.Error(w, "Invalid content type", http.StatusBadRequest)
		return
	}

	if err := h.backend.SaveFile(key, r.Body); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", `"mock-etag-success"`)
	w.WriteHeader(http.StatusOK)
}

// HandleDownload streams a stored file back.
func (h *UploadHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	file, err := h.backend.ReadFile(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	case ".webp":
		contentType = "image/webp"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}

// RegisterMockStorageRoutes registers the mock upload/download endpoints.
func RegisterMockStorageRoutes(router *mux.Router, backend storage.Backend) {
	handler := NewUploadHandler(backend)
	router.HandleFunc("/api/v1/uploads/{token}", handler.HandleUpload).Methods("PUT")
	router.HandleFunc("/api/v1/downloads/{key}", handler.HandleDownload).Methods("GET")
}

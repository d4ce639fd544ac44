package http

import (
	"encoding/json"
	"net/http"

	"bicirent-backend/internal/service"
)

type PhotoHandler struct {
	photoSvc service.PhotoService
}

func NewPhotoHandler(photoSvc service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoSvc: photoSvc}
}

func (h *PhotoHandler) GetUploadURL(w http.ResponseWriter, r *http.Request) {
	bicycleID, err := pathID(r, "bicycleId")
	if err != nil {
		respondBadRequest(w, "invalid bicycle id")
		return
	}

	var req struct {
		FileName    string `json:"file_name"`
		ContentType string `json:"content_type"`
		IsPrimary   bool   `json:"is_primary"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if req.FileName == "" || req.ContentType == "" {
		respondBadRequest(w, "file_name and content_type are required")
		return
	}
	switch req.ContentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
	default:
		respondBadRequest(w, "unsupported content type")
		return
	}

	photo, uploadURL, err := h.photoSvc.GetUploadURL(
		r.Context(), claimsFrom(r).UserID, bicycleID, req.FileName, req.ContentType, req.IsPrimary)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, map[string]interface{}{
		"photo":      photo,
		"upload_url": uploadURL,
	})
}

func (h *PhotoHandler) ConfirmUpload(w http.ResponseWriter, r *http.Request) {
	photoID, err := pathID(r, "photoId")
	if err != nil {
		respondBadRequest(w, "invalid photo id")
		return
	}

	photo, err := h.photoSvc.ConfirmUpload(r.Context(), claimsFrom(r).UserID, photoID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, photo)
}

func (h *PhotoHandler) GetDownloadURL(w http.ResponseWriter, r *http.Request) {
	photoID, err := pathID(r, "photoId")
	if err != nil {
		respondBadRequest(w, "invalid photo id")
		return
	}
	thumbnail := r.URL.Query().Get("thumbnail") == "true"

	url, err := h.photoSvc.GetDownloadURL(r.Context(), photoID, thumbnail)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string]string{"download_url": url})
}

func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	bicycleID, err := pathID(r, "bicycleId")
	if err != nil {
		respondBadRequest(w, "invalid bicycle id")
		return
	}

	photos, err := h.photoSvc.ListPhotos(r.Context(), bicycleID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, photos)
}

func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	photoID, err := pathID(r, "photoId")
	if err != nil {
		respondBadRequest(w, "invalid photo id")
		return
	}

	if err := h.photoSvc.DeletePhoto(r.Context(), claimsFrom(r).UserID, photoID); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "photo deleted")
}

func (h *PhotoHandler) SetPrimary(w http.ResponseWriter, r *http.Request) {
	bicycleID, err := pathID(r, "bicycleId")
	if err != nil {
		respondBadRequest(w, "invalid bicycle id")
		return
	}
	photoID, err := pathID(r, "photoId")
	if err != nil {
		respondBadRequest(w, "invalid photo id")
		return
	}

	if err := h.photoSvc.SetPrimaryPhoto(r.Context(), claimsFrom(r).UserID, bicycleID, photoID); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "primary photo updated")
}

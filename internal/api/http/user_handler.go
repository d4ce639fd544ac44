package http

import (
	"encoding/json"
	"net/http"

	"bicirent-backend/internal/service"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.userSvc.GetProfile(r.Context(), claimsFrom(r).UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, user)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName            string `json:"first_name"`
		LastName             string `json:"last_name"`
		Phone                string `json:"phone"`
		SocioeconomicStratum *int   `json:"socioeconomic_stratum"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if req.SocioeconomicStratum != nil && (*req.SocioeconomicStratum < 1 || *req.SocioeconomicStratum > 6) {
		respondBadRequest(w, "socioeconomic_stratum must be between 1 and 6")
		return
	}

	user, err := h.userSvc.UpdateProfile(
		r.Context(), claimsFrom(r).UserID, req.FirstName, req.LastName, req.Phone, req.SocioeconomicStratum)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	users, total, err := h.userSvc.ListUsers(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, pagedData{Items: users, Total: total, Page: page, PageSize: pageSize})
}

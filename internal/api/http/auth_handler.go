package http

import (
	"encoding/json"
	"net/http"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type registerRequest struct {
	DocumentType         string `json:"document_type"`
	DocumentNumber       string `json:"document_number"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	Phone                string `json:"phone"`
	SocioeconomicStratum *int   `json:"socioeconomic_stratum"`
	RegionalID           int32  `json:"regional_id"`
}

type authResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.RegionalID == 0 {
		respondBadRequest(w, "email, password, first_name and regional_id are required")
		return
	}
	if len(req.Password) < 8 {
		respondBadRequest(w, "password must be at least 8 characters")
		return
	}
	if req.SocioeconomicStratum != nil && (*req.SocioeconomicStratum < 1 || *req.SocioeconomicStratum > 6) {
		respondBadRequest(w, "socioeconomic_stratum must be between 1 and 6")
		return
	}

	user := &domain.User{
		DocumentType:         domain.DocumentType(req.DocumentType),
		DocumentNumber:       req.DocumentNumber,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		Phone:                req.Phone,
		SocioeconomicStratum: req.SocioeconomicStratum,
		RegionalID:           req.RegionalID,
	}

	created, access, refresh, err := h.authSvc.Register(r.Context(), user, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, authResponse{User: created, AccessToken: access, RefreshToken: refresh})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	user, access, refresh, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, authResponse{User: user, AccessToken: access, RefreshToken: refresh})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	access, refresh, err := h.authSvc.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string]string{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

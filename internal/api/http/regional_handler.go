package http

import (
	"encoding/json"
	"net/http"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/service"
)

type RegionalHandler struct {
	regionalSvc service.RegionalService
}

func NewRegionalHandler(regionalSvc service.RegionalService) *RegionalHandler {
	return &RegionalHandler{regionalSvc: regionalSvc}
}

func (h *RegionalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var regional domain.Regional
	if err := json.NewDecoder(r.Body).Decode(&regional); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if regional.Name == "" || regional.Code == "" || regional.City == "" {
		respondBadRequest(w, "name, code and city are required")
		return
	}

	if err := h.regionalSvc.CreateRegional(r.Context(), &regional); err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, regional)
}

func (h *RegionalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid regional id")
		return
	}
	regional, err := h.regionalSvc.GetRegional(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, regional)
}

func (h *RegionalHandler) List(w http.ResponseWriter, r *http.Request) {
	regionals, err := h.regionalSvc.ListRegionals(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, regionals)
}

package http

import (
	"encoding/json"
	"net/http"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

func (h *RentalHandler) Rent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BicycleID     int32            `json:"bicycle_id"`
		StartLocation *domain.Location `json:"start_location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if req.BicycleID == 0 {
		respondBadRequest(w, "bicycle_id is required")
		return
	}

	rental, err := h.rentalSvc.Rent(r.Context(), claimsFrom(r).UserID, req.BicycleID, req.StartLocation)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, rental)
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid rental id")
		return
	}

	var req struct {
		EndLocation *domain.Location `json:"end_location"`
	}
	// Body is optional on return.
	_ = json.NewDecoder(r.Body).Decode(&req)

	rental, err := h.rentalSvc.Return(r.Context(), claimsFrom(r).UserID, id, req.EndLocation)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, rental)
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid rental id")
		return
	}

	rental, err := h.rentalSvc.Cancel(r.Context(), claimsFrom(r).UserID, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, rental)
}

func (h *RentalHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.GetActiveRental(r.Context(), claimsFrom(r).UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	// nil data with success=true means "no active rental".
	respondOK(w, rental)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid rental id")
		return
	}

	rental, err := h.rentalSvc.GetRental(r.Context(), claimsFrom(r).UserID, isAdmin(r), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, rental)
}

func (h *RentalHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	rentals, total, err := h.rentalSvc.ListMyRentals(r.Context(), claimsFrom(r).UserID, status, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, pagedData{Items: rentals, Total: total, Page: page, PageSize: pageSize})
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	rentals, total, err := h.rentalSvc.ListRentals(r.Context(), status, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, pagedData{Items: rentals, Total: total, Page: page, PageSize: pageSize})
}

func (h *RentalHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	bicycleID := queryInt32(r, "bicycle_id", 0)
	if bicycleID == 0 {
		respondBadRequest(w, "bicycle_id is required")
		return
	}
	hours := queryInt32(r, "hours", 1)

	cost, err := h.rentalSvc.EstimateCost(r.Context(), claimsFrom(r).UserID, bicycleID, hours)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, cost)
}

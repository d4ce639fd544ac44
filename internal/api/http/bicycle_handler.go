package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/service"
)

type BicycleHandler struct {
	bicycleSvc service.BicycleService
}

func NewBicycleHandler(bicycleSvc service.BicycleService) *BicycleHandler {
	return &BicycleHandler{bicycleSvc: bicycleSvc}
}

func pathID(r *http.Request, name string) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	return int32(id), err
}

func queryInt32(r *http.Request, name string, def int32) int32 {
	if raw := r.URL.Query().Get(name); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil {
			return int32(v)
		}
	}
	return def
}

func pagination(r *http.Request) (page, pageSize int32) {
	page = queryInt32(r, "page", 1)
	pageSize = queryInt32(r, "page_size", 20)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

type bicycleRequest struct {
	Code               string           `json:"code"`
	Brand              string           `json:"brand"`
	Model              string           `json:"model"`
	Color              string           `json:"color"`
	RentalPricePerHour float64          `json:"rental_price_per_hour"`
	RegionalID         int32            `json:"regional_id"`
	CurrentLocation    *domain.Location `json:"current_location"`
	PurchaseDate       *time.Time       `json:"purchase_date"`
}

func (h *BicycleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bicycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if req.Code == "" || req.RegionalID == 0 {
		respondBadRequest(w, "code and regional_id are required")
		return
	}
	if req.RentalPricePerHour <= 0 {
		respondBadRequest(w, "rental_price_per_hour must be positive")
		return
	}

	bicycle := &domain.Bicycle{
		Code:               req.Code,
		Brand:              req.Brand,
		Model:              req.Model,
		Color:              req.Color,
		RentalPricePerHour: req.RentalPricePerHour,
		RegionalID:         req.RegionalID,
		CurrentLocation:    req.CurrentLocation,
		PurchaseDate:       req.PurchaseDate,
	}
	if err := h.bicycleSvc.CreateBicycle(r.Context(), bicycle); err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, bicycle)
}

func (h *BicycleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid bicycle id")
		return
	}
	bicycle, err := h.bicycleSvc.GetBicycle(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, bicycle)
}

func (h *BicycleHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	bicycle, err := h.bicycleSvc.GetBicycleByCode(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, bicycle)
}

func (h *BicycleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid bicycle id")
		return
	}

	bicycle, err := h.bicycleSvc.GetBicycle(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	var req bicycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if req.Brand != "" {
		bicycle.Brand = req.Brand
	}
	if req.Model != "" {
		bicycle.Model = req.Model
	}
	if req.Color != "" {
		bicycle.Color = req.Color
	}
	if req.RentalPricePerHour > 0 {
		bicycle.RentalPricePerHour = req.RentalPricePerHour
	}
	if req.CurrentLocation != nil {
		bicycle.CurrentLocation = req.CurrentLocation
	}
	if req.PurchaseDate != nil {
		bicycle.PurchaseDate = req.PurchaseDate
	}

	if err := h.bicycleSvc.UpdateBicycle(r.Context(), bicycle); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, bicycle)
}

func (h *BicycleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid bicycle id")
		return
	}
	if err := h.bicycleSvc.DeleteBicycle(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "bicycle deleted")
}

func (h *BicycleHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := domain.BicycleStatus(r.URL.Query().Get("status"))
	regionalID := queryInt32(r, "regional_id", 0)

	bicycles, total, err := h.bicycleSvc.ListBicycles(r.Context(), status, regionalID, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, pagedData{Items: bicycles, Total: total, Page: page, PageSize: pageSize})
}

func (h *BicycleHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	bicycles, err := h.bicycleSvc.ListAvailable(r.Context(), queryInt32(r, "regional_id", 0))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, bicycles)
}

func (h *BicycleHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid bicycle id")
		return
	}

	var req struct {
		Status domain.BicycleStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	switch req.Status {
	case domain.BicycleStatusAvailable, domain.BicycleStatusRented,
		domain.BicycleStatusMaintenance, domain.BicycleStatusRetired:
	default:
		respondBadRequest(w, "unknown bicycle status")
		return
	}

	bicycle, err := h.bicycleSvc.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, bicycle)
}

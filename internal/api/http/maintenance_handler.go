package http

import (
	"encoding/json"
	"net/http"
	"time"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/service"
)

type MaintenanceHandler struct {
	maintenanceSvc service.MaintenanceService
}

func NewMaintenanceHandler(maintenanceSvc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceSvc: maintenanceSvc}
}

type maintenanceRequest struct {
	BicycleID           int32      `json:"bicycle_id"`
	MaintenanceType     string     `json:"maintenance_type"`
	Description         string     `json:"description"`
	Cost                *float64   `json:"cost"`
	PerformedBy         string     `json:"performed_by"`
	MaintenanceDate     *time.Time `json:"maintenance_date"`
	NextMaintenanceDate *time.Time `json:"next_maintenance_date"`
}

func validMaintenanceType(t string) bool {
	switch domain.MaintenanceType(t) {
	case domain.MaintenanceTypePreventive, domain.MaintenanceTypeCorrective,
		domain.MaintenanceTypeInspection, domain.MaintenanceTypeRepair,
		domain.MaintenanceTypeOther:
		return true
	}
	return false
}

func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req maintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if req.BicycleID == 0 {
		respondBadRequest(w, "bicycle_id is required")
		return
	}
	if !validMaintenanceType(req.MaintenanceType) {
		respondBadRequest(w, "unknown maintenance type")
		return
	}

	log := &domain.MaintenanceLog{
		BicycleID:           req.BicycleID,
		MaintenanceType:     domain.MaintenanceType(req.MaintenanceType),
		Description:         req.Description,
		Cost:                req.Cost,
		PerformedBy:         req.PerformedBy,
		NextMaintenanceDate: req.NextMaintenanceDate,
	}
	if req.MaintenanceDate != nil {
		log.MaintenanceDate = *req.MaintenanceDate
	}

	if err := h.maintenanceSvc.CreateLog(r.Context(), log); err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, log)
}

func (h *MaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid maintenance log id")
		return
	}
	log, err := h.maintenanceSvc.GetLog(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, log)
}

func (h *MaintenanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid maintenance log id")
		return
	}

	log, err := h.maintenanceSvc.GetLog(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	var req maintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if req.MaintenanceType != "" {
		if !validMaintenanceType(req.MaintenanceType) {
			respondBadRequest(w, "unknown maintenance type")
			return
		}
		log.MaintenanceType = domain.MaintenanceType(req.MaintenanceType)
	}
	if req.Description != "" {
		log.Description = req.Description
	}
	if req.Cost != nil {
		log.Cost = req.Cost
	}
	if req.PerformedBy != "" {
		log.PerformedBy = req.PerformedBy
	}
	if req.MaintenanceDate != nil {
		log.MaintenanceDate = *req.MaintenanceDate
	}
	if req.NextMaintenanceDate != nil {
		log.NextMaintenanceDate = req.NextMaintenanceDate
	}

	if err := h.maintenanceSvc.UpdateLog(r.Context(), log); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, log)
}

func (h *MaintenanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid maintenance log id")
		return
	}
	if err := h.maintenanceSvc.DeleteLog(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "maintenance log deleted")
}

func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	logs, total, err := h.maintenanceSvc.ListLogs(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, pagedData{Items: logs, Total: total, Page: page, PageSize: pageSize})
}

func (h *MaintenanceHandler) ListByBicycle(w http.ResponseWriter, r *http.Request) {
	bicycleID, err := pathID(r, "bicycleId")
	if err != nil {
		respondBadRequest(w, "invalid bicycle id")
		return
	}
	logs, err := h.maintenanceSvc.ListByBicycle(r.Context(), bicycleID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, logs)
}

func (h *MaintenanceHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	logs, err := h.maintenanceSvc.ListUpcoming(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, logs)
}

func (h *MaintenanceHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	logs, err := h.maintenanceSvc.ListOverdue(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, logs)
}

func (h *MaintenanceHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid maintenance log id")
		return
	}
	log, err := h.maintenanceSvc.CompleteLog(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, log)
}

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/service"
)

type EventHandler struct {
	eventSvc service.EventService
}

func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

type eventRequest struct {
	Name                 string           `json:"name"`
	Description          string           `json:"description"`
	EventType            string           `json:"event_type"`
	EventDate            time.Time        `json:"event_date"`
	StartTime            string           `json:"start_time"`
	EndTime              string           `json:"end_time"`
	RouteDescription     string           `json:"route_description"`
	MeetingPoint         string           `json:"meeting_point"`
	MeetingPointLocation *domain.Location `json:"meeting_point_location"`
	MaxParticipants      *int32           `json:"max_participants"`
	Status               string           `json:"status"`
	RegionalID           int32            `json:"regional_id"`
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if req.Name == "" || req.EventDate.IsZero() || req.RegionalID == 0 {
		respondBadRequest(w, "name, event_date and regional_id are required")
		return
	}
	if req.MaxParticipants != nil && *req.MaxParticipants < 1 {
		respondBadRequest(w, "max_participants must be positive")
		return
	}

	event := &domain.Event{
		Name:                 req.Name,
		Description:          req.Description,
		EventType:            req.EventType,
		EventDate:            req.EventDate,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		RouteDescription:     req.RouteDescription,
		MeetingPoint:         req.MeetingPoint,
		MeetingPointLocation: req.MeetingPointLocation,
		MaxParticipants:      req.MaxParticipants,
		Status:               domain.EventStatus(req.Status),
		RegionalID:           req.RegionalID,
	}
	if err := h.eventSvc.CreateEvent(r.Context(), event); err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, event)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid event id")
		return
	}
	event, err := h.eventSvc.GetEvent(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, event)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid event id")
		return
	}

	event, err := h.eventSvc.GetEvent(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if req.Name != "" {
		event.Name = req.Name
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.EventType != "" {
		event.EventType = req.EventType
	}
	if !req.EventDate.IsZero() {
		event.EventDate = req.EventDate
	}
	if req.StartTime != "" {
		event.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		event.EndTime = req.EndTime
	}
	if req.RouteDescription != "" {
		event.RouteDescription = req.RouteDescription
	}
	if req.MeetingPoint != "" {
		event.MeetingPoint = req.MeetingPoint
	}
	if req.MeetingPointLocation != nil {
		event.MeetingPointLocation = req.MeetingPointLocation
	}
	if req.MaxParticipants != nil {
		event.MaxParticipants = req.MaxParticipants
	}
	if req.Status != "" {
		switch domain.EventStatus(req.Status) {
		case domain.EventStatusDraft, domain.EventStatusPublished,
			domain.EventStatusCancelled, domain.EventStatusCompleted:
			event.Status = domain.EventStatus(req.Status)
		default:
			respondBadRequest(w, "unknown event status")
			return
		}
	}

	if err := h.eventSvc.UpdateEvent(r.Context(), event); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, event)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid event id")
		return
	}
	if err := h.eventSvc.DeleteEvent(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "event deleted")
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := domain.EventStatus(r.URL.Query().Get("status"))

	events, total, err := h.eventSvc.ListEvents(r.Context(), status, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, pagedData{Items: events, Total: total, Page: page, PageSize: pageSize})
}

func (h *EventHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventSvc.ListUpcoming(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, events)
}

func (h *EventHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventSvc.ListMyEvents(r.Context(), claimsFrom(r).UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, events)
}

func (h *EventHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid event id")
		return
	}
	participants, err := h.eventSvc.ListParticipants(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, participants)
}

func (h *EventHandler) Register(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid event id")
		return
	}
	if err := h.eventSvc.Register(r.Context(), id, claimsFrom(r).UserID); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, apiResponse{Success: true, Message: "registered"})
}

func (h *EventHandler) CancelRegistration(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, "invalid event id")
		return
	}
	if err := h.eventSvc.CancelRegistration(r.Context(), id, claimsFrom(r).UserID); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "registration cancelled")
}

func (h *EventHandler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "eventId")
	if err != nil {
		respondBadRequest(w, "invalid event id")
		return
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		respondBadRequest(w, "invalid user id")
		return
	}
	if err := h.eventSvc.MarkAttendance(r.Context(), eventID, userID); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "attendance recorded")
}

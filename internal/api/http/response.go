package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/logger"
	"bicirent-backend/internal/security"
)

// apiResponse is the envelope every endpoint returns.
type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// pagedData wraps list results with their total count.
type pagedData struct {
	Items    interface{} `json:"items"`
	Total    int32       `json:"total"`
	Page     int32       `json:"page"`
	PageSize int32       `json:"page_size"`
}

func writeJSON(w http.ResponseWriter, status int, body apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondOK(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: data})
}

func respondCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, apiResponse{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: message})
}

func respondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: message})
}

// respondError maps domain errors onto HTTP statuses: missing resources are
// 404, failed preconditions are 409, auth problems are 401/403. Anything
// unrecognized is a 500 with a generic body.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domain.ErrBicycleNotFound),
		errors.Is(err, domain.ErrRentalNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrMaintenanceNotFound),
		errors.Is(err, domain.ErrRegionalNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPhotoNotFound):
		status = http.StatusNotFound
		message = err.Error()

	case errors.Is(err, domain.ErrBicycleNotAvailable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrUserHasActiveRental),
		errors.Is(err, domain.ErrRentalNotActive),
		errors.Is(err, domain.ErrEventNotPublished),
		errors.Is(err, domain.ErrEventInPast),
		errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrNotRegistered),
		errors.Is(err, domain.ErrMaintenanceDone),
		errors.Is(err, domain.ErrDuplicateCode),
		errors.Is(err, domain.ErrEmailTaken):
		status = http.StatusConflict
		message = err.Error()

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrAccountDisabled),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken):
		status = http.StatusUnauthorized
		message = err.Error()

	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusForbidden
		message = err.Error()

	default:
		logger.Error("Unhandled error in request", "error", err)
	}

	writeJSON(w, status, apiResponse{Success: false, Error: message})
}

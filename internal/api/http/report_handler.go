package http

import (
	"net/http"
	"strconv"

	"bicirent-backend/internal/service"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportSvc.Dashboard(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, stats)
}

func (h *ReportHandler) MonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(w, "invalid year")
			return
		}
		year = parsed
	}

	report, err := h.reportSvc.MonthlyRevenue(r.Context(), year)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, report)
}

func (h *ReportHandler) StratumReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportSvc.StratumReport(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, report)
}

func (h *ReportHandler) BicycleStats(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportSvc.BicycleStats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, report)
}

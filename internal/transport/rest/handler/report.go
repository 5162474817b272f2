package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"aicompliance/internal/service"
	"aicompliance/internal/transport/rest/middleware"
)

// ReportHandler handles compliance report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Generate handles POST /api/reports/generate/{assessmentId}
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	report, err := h.reportSvc.Generate(r.Context(), mux.Vars(r)["assessmentId"], userID)
	if err == service.ErrAssessmentNotFound {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"report_id":   report.ID,
		"report_data": report.ReportData,
	})
}

// Get handles GET /api/reports/{reportId}
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	report, err := h.reportSvc.Get(r.Context(), mux.Vars(r)["reportId"], userID)
	if err == service.ErrReportNotFound {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

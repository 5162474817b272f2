package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"aicompliance/internal/model"
	"aicompliance/internal/service"
	"aicompliance/internal/transport/rest/middleware"
)

// AssessmentHandler handles risk assessment endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
	authSvc       *service.AuthService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService, authSvc *service.AuthService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentSvc: assessmentSvc,
		authSvc:       authSvc,
	}
}

// CreateAssessmentRequest is the request body for assessment submission
type CreateAssessmentRequest struct {
	AssessmentType string                      `json:"assessment_type"`
	Responses      model.QuestionnaireResponse `json:"responses"`
}

// Create handles POST /api/assessments
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Responses == nil {
		writeError(w, http.StatusBadRequest, "responses are required")
		return
	}

	user, err := h.authSvc.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	assessment, err := h.assessmentSvc.Create(r.Context(), user, req.AssessmentType, req.Responses)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// List handles GET /api/assessments
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	assessments, err := h.assessmentSvc.List(r.Context(), userID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if assessments == nil {
		assessments = []*model.Assessment{}
	}

	writeJSON(w, http.StatusOK, assessments)
}

// Get handles GET /api/assessments/{assessmentId}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	assessment, err := h.assessmentSvc.Get(r.Context(), mux.Vars(r)["assessmentId"], userID)
	if err == service.ErrAssessmentNotFound {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// DashboardStats handles GET /api/dashboard/stats
func (h *AssessmentHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	stats, err := h.assessmentSvc.DashboardStats(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"aicompliance/internal/model"
	"aicompliance/internal/service"
)

// VESOSHandler handles project viability scoring endpoints
type VESOSHandler struct {
	vesosSvc *service.VESOSService
}

// NewVESOSHandler creates a new VESOS handler
func NewVESOSHandler(vesosSvc *service.VESOSService) *VESOSHandler {
	return &VESOSHandler{vesosSvc: vesosSvc}
}

// Evaluate handles POST /api/vesos/evaluate
func (h *VESOSHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var input model.VESOSInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	analysis, err := h.vesosSvc.Evaluate(r.Context(), input)
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusUnprocessableEntity, validationErr.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// List handles GET /api/vesos/analyses
func (h *VESOSHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.ParseInt(query.Get("limit"), 10, 64)

	analyses, err := h.vesosSvc.List(r.Context(), query.Get("organization"), model.Sector(query.Get("sector")), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if analyses == nil {
		analyses = []*model.VESOSAnalysis{}
	}

	writeJSON(w, http.StatusOK, analyses)
}

// SectorProfile handles GET /api/vesos/sectors/{sector}
func (h *VESOSHandler) SectorProfile(w http.ResponseWriter, r *http.Request) {
	sector := model.Sector(mux.Vars(r)["sector"])
	writeJSON(w, http.StatusOK, h.vesosSvc.SectorProfile(sector))
}

package handler

import (
	"net/http"
	"strconv"

	"aicompliance/internal/model"
	"aicompliance/internal/service"
)

// DocumentHandler handles regulatory corpus endpoints
type DocumentHandler struct {
	documentSvc *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentSvc *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentSvc: documentSvc}
}

// Search handles GET /api/documents/search
func (h *DocumentHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	text := query.Get("query")
	if text == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	k, _ := strconv.ParseInt(query.Get("limit"), 10, 64)

	matches, err := h.documentSvc.Search(r.Context(), text, k, query.Get("category"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if matches == nil {
		matches = []model.DocumentMatch{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"results": matches})
}

// Categories handles GET /api/documents/categories
func (h *DocumentHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.documentSvc.Categories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if categories == nil {
		categories = []string{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

// Stats handles GET /api/documents/stats
func (h *DocumentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.documentSvc.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

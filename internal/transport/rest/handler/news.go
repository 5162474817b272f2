package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"aicompliance/internal/model"
	"aicompliance/internal/service"
)

// NewsHandler handles regulatory news endpoints
type NewsHandler struct {
	newsSvc *service.NewsService
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(newsSvc *service.NewsService) *NewsHandler {
	return &NewsHandler{newsSvc: newsSvc}
}

// Recent handles GET /api/news
func (h *NewsHandler) Recent(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.ParseInt(query.Get("limit"), 10, 64)
	days, _ := strconv.Atoi(query.Get("days"))

	items, err := h.newsSvc.Recent(r.Context(), limit, query.Get("category"), days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []*model.NewsItem{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"news": items})
}

// Search handles GET /api/news/search
func (h *NewsHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	text := query.Get("query")
	if text == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	limit, _ := strconv.ParseInt(query.Get("limit"), 10, 64)

	items, err := h.newsSvc.Search(r.Context(), text, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []*model.NewsItem{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"news": items})
}

// ByTag handles GET /api/news/tags/{tag}
func (h *NewsHandler) ByTag(w http.ResponseWriter, r *http.Request) {
	tags := strings.Split(mux.Vars(r)["tag"], ",")
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	items, err := h.newsSvc.ByTags(r.Context(), tags, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []*model.NewsItem{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"news": items})
}

// Ranking handles GET /api/news/ranking
func (h *NewsHandler) Ranking(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	ranking, err := h.newsSvc.TopRanked(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ranking": ranking})
}

// Refresh handles POST /api/news/refresh. Collection runs in the
// background; the endpoint returns immediately.
func (h *NewsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	// The request context dies with the response; collection outlives it
	go h.newsSvc.Collect(context.Background())

	writeJSON(w, http.StatusOK, map[string]string{"message": "News refresh started"})
}

package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"aicompliance/internal/service"
	"aicompliance/internal/transport/rest/handler"
	"aicompliance/internal/transport/rest/middleware"
	"aicompliance/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	AssessmentService *service.AssessmentService
	VESOSService      *service.VESOSService
	ReportService     *service.ReportService
	ChatService       *service.ChatService
	DocumentService   *service.DocumentService
	NewsService       *service.NewsService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService, c.AuthService)
	vesosHandler := handler.NewVESOSHandler(c.VESOSService)
	reportHandler := handler.NewReportHandler(c.ReportService)
	chatHandler := handler.NewChatHandler(c.ChatService)
	documentHandler := handler.NewDocumentHandler(c.DocumentService)
	newsHandler := handler.NewNewsHandler(c.NewsService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	api.HandleFunc("/news", newsHandler.Recent).Methods("GET", "OPTIONS")
	api.HandleFunc("/news/search", newsHandler.Search).Methods("GET", "OPTIONS")
	api.HandleFunc("/news/ranking", newsHandler.Ranking).Methods("GET", "OPTIONS")
	api.HandleFunc("/news/tags/{tag}", newsHandler.ByTag).Methods("GET", "OPTIONS")
	api.HandleFunc("/news/refresh", newsHandler.Refresh).Methods("POST", "OPTIONS")

	api.HandleFunc("/documents/search", documentHandler.Search).Methods("GET", "OPTIONS")
	api.HandleFunc("/documents/categories", documentHandler.Categories).Methods("GET", "OPTIONS")
	api.HandleFunc("/documents/stats", documentHandler.Stats).Methods("GET", "OPTIONS")

	api.HandleFunc("/vesos/evaluate", vesosHandler.Evaluate).Methods("POST", "OPTIONS")
	api.HandleFunc("/vesos/analyses", vesosHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/vesos/sectors/{sector}", vesosHandler.SectorProfile).Methods("GET", "OPTIONS")

	// WebSocket route (public with token in query param)
	api.HandleFunc("/ws/feed", wsHandler.FeedWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","service":"AI Compliance SaaS"}`))
	}).Methods("GET")

	// Authenticated routes
	userRoutes := api.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/auth/me", authHandler.Me).Methods("GET", "OPTIONS")

	userRoutes.HandleFunc("/assessments", assessmentHandler.Create).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/assessments", assessmentHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessments/{assessmentId}", assessmentHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/dashboard/stats", assessmentHandler.DashboardStats).Methods("GET", "OPTIONS")

	userRoutes.HandleFunc("/reports/generate/{assessmentId}", reportHandler.Generate).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/reports/{reportId}", reportHandler.Get).Methods("GET", "OPTIONS")

	userRoutes.HandleFunc("/chat/sessions", chatHandler.CreateSession).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/chat/sessions", chatHandler.ListSessions).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/chat/sessions/{sessionId}/messages", chatHandler.GetMessages).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/chat/sessions/{sessionId}/messages", chatHandler.SendMessage).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/chat/sessions/{sessionId}", chatHandler.DeleteSession).Methods("DELETE", "OPTIONS")
	userRoutes.HandleFunc("/chat/stats", chatHandler.Stats).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aicompliance/internal/cache"
	"aicompliance/internal/config"
	"aicompliance/internal/repository"
	"aicompliance/internal/service"
	"aicompliance/internal/transport/rest"
	"aicompliance/internal/transport/ws"
)

// @title AI Compliance SaaS API
// @version 1.0
// @description EU AI Act risk assessment and project viability scoring for digital health and insurtech startups
// @host localhost:8080
// @BasePath /api
func main() {
	log.Println("started")
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Load AI config and log model settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Chat:         %s", aiConfig.Models.Chat)
	log.Printf("  News Summary: %s", aiConfig.Models.NewsSummary)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:      configured ✓")
	} else {
		log.Println("  API Key:      NOT SET (using deterministic fallbacks)")
	}

	// MongoDB connection
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
		log.Println("Warning: MONGO_URI not set, using default")
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "aicompliance"
	}
	db := mongoClient.Database(dbName)

	// Redis connection
	redisAddr := os.Getenv("REDIS_URI")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
		log.Println("Warning: REDIS_URI not set, using default")
	}
	redisAddr = strings.TrimPrefix(redisAddr, "redis://")

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	assessmentRepo := repository.NewAssessmentRepo(db)
	vesosRepo := repository.NewVESOSRepo(db)
	reportRepo := repository.NewReportRepo(db)
	chatRepo := repository.NewChatRepo(db)
	newsRepo := repository.NewNewsRepo(db)
	documentRepo := repository.NewDocumentRepo(db)

	// Text search indexes for news and the corpus
	indexCtx, indexCancel := context.WithTimeout(ctx, 30*time.Second)
	defer indexCancel()
	if err := newsRepo.EnsureIndexes(indexCtx); err != nil {
		log.Printf("Warning: failed to ensure news indexes: %v", err)
	}
	if err := documentRepo.EnsureIndexes(indexCtx); err != nil {
		log.Printf("Warning: failed to ensure document indexes: %v", err)
	}

	// Initialize caches
	dashboardCache := cache.NewDashboardCache(rdb)
	newsRanking := cache.NewNewsRankingCache(rdb)

	// Initialize services
	llm := service.NewLLMClient()
	authSvc := service.NewAuthService(userRepo)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, dashboardCache, wsHub)
	vesosSvc := service.NewVESOSService(vesosRepo)
	reportSvc := service.NewReportService(reportRepo, assessmentRepo)
	documentSvc := service.NewDocumentService(documentRepo)
	chatSvc := service.NewChatService(chatRepo, documentSvc, llm)

	fetchers := []service.NewsFetcher{
		service.NewEURLexFetcher(),
		service.NewBOEFetcher(),
	}
	newsSvc := service.NewNewsService(newsRepo, newsRanking, fetchers, llm, wsHub)

	// Weekly background news collection
	schedulerCtx, stopScheduler := context.WithCancel(ctx)
	defer stopScheduler()
	newsSvc.StartScheduler(schedulerCtx)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		VESOSService:      vesosSvc,
		ReportService:     reportSvc,
		ChatService:       chatSvc,
		DocumentService:   documentSvc,
		NewsService:       newsSvc,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", port)
		log.Println("Endpoints:")
		log.Println("  POST /api/auth/register")
		log.Println("  POST /api/auth/login")
		log.Println("  POST/GET /api/assessments")
		log.Println("  GET  /api/dashboard/stats")
		log.Println("  POST /api/vesos/evaluate")
		log.Println("  POST /api/reports/generate/{assessmentId}")
		log.Println("  POST/GET /api/chat/sessions")
		log.Println("  GET  /api/documents/search")
		log.Println("  GET  /api/news")
		log.Println("  WS   /api/ws/feed")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

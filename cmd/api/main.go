package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Viren021/ai-job-tracker/internal/config"
	"github.com/Viren021/ai-job-tracker/internal/handlers"
	"github.com/Viren021/ai-job-tracker/internal/repositories"
	"github.com/Viren021/ai-job-tracker/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	jobRepo := repositories.NewJobRepository(db)
	userRepo := repositories.NewUserRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	cacheStore := services.NewCacheStore(cfg.Redis.URL)
	provider := services.NewAdzunaProvider(cfg.Adzuna.AppID, cfg.Adzuna.AppKey, cfg.Adzuna.BaseURL)
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize the scoring pipeline and match cache
	scorer := services.NewScorerService(geminiService, cfg.Gemini.ScoreModel, cfg.Matching.OracleTimeout)
	ranking := services.NewRankingService(jobRepo, userRepo, scorer, cfg.Auth.UserEmail, cfg.Matching.JobPageSize)
	matchCache := services.NewMatchCacheManager(cacheStore, ranking, cfg.Matching.CacheTTL)
	log.Println("✅ Match cache initialized")

	// Initialize the chat agent
	executor := services.NewToolExecutor(jobRepo, appRepo, provider, matchCache)
	agent := services.NewAgentService(geminiService, cfg.Gemini.ChatModel, executor)
	log.Println("✅ Chat agent initialized")

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(userRepo, cfg.Auth.JWTSecret, cfg.Auth.UserEmail, cfg.Auth.UserPassword)
	resumeHandler := handlers.NewResumeHandler(
		userRepo,
		storageService,
		pdfParser,
		matchCache,
		cfg.Auth.UserEmail,
		cfg.Auth.UserPassword,
		cfg.Storage.MaxFileSize,
	)
	jobHandler := handlers.NewJobHandler(jobRepo, appRepo, matchCache, provider)
	chatHandler := handlers.NewChatHandler(agent)
	appHandler := handlers.NewApplicationHandler(appRepo, userRepo, cfg.Auth.UserEmail)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Job Tracker API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	app.Post("/login", authHandler.HandleLogin)
	app.Get("/profile", authHandler.HandleProfile)
	app.Post("/upload-resume", resumeHandler.HandleUpload)
	app.Get("/jobs", jobHandler.HandleGetJobs)
	app.Post("/seed", jobHandler.HandleSeed)
	app.Post("/chat", chatHandler.HandleChat)
	app.Post("/applications", appHandler.HandleCreate)
	app.Get("/applications", appHandler.HandleList)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Job Tracker API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /login",
				"POST /upload-resume",
				"GET /jobs",
				"POST /chat",
				"POST /applications",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

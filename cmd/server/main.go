package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ciclofit/ciclofit-server/internal/config"
	"github.com/ciclofit/ciclofit-server/internal/handler"
	"github.com/ciclofit/ciclofit-server/internal/middleware"
	"github.com/ciclofit/ciclofit-server/internal/models"
	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Build info (injected at build time via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize request logging
	if err := middleware.InitLogger("logs"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize database
	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis
	rdb := initRedis(cfg)

	// Auto migrate database
	if err := autoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	cartItemRepo := repository.NewCartItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	cycleRepo := repository.NewCycleRepository(db)
	cycleDayRepo := repository.NewCycleDayRepository(db)
	dayZeroRepo := repository.NewDayZeroRepository(db)
	dailyRepo := repository.NewDailyRepository(db)
	systemRepo := repository.NewSystemRepository(db)
	dietRepo := repository.NewDietRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	medicationRepo := repository.NewMedicationRepository(db)
	scoreRepo := repository.NewScoreRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWT)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartRepo, cartItemRepo, productRepo, userRepo)
	paymentService := service.NewPaymentService(paymentRepo, cartService)
	cycleService := service.NewCycleService(cycleRepo, cycleDayRepo, userRepo)
	checkinService := service.NewCheckinService(dayZeroRepo, dailyRepo, cycleRepo, cycleDayRepo)
	systemService := service.NewSystemService(systemRepo, dietRepo, trainingRepo, medicationRepo, userRepo)
	scoreService := service.NewScoreService(scoreRepo, cycleRepo, dailyRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	cycleHandler := handler.NewCycleHandler(cycleService)
	checkinHandler := handler.NewCheckinHandler(checkinService)
	systemHandler := handler.NewSystemHandler(systemService)
	scoreHandler := handler.NewScoreHandler(scoreService)

	// Create Gin router
	router := gin.Default()

	// Request logging, CORS, body size cap
	router.Use(middleware.RequestLoggerMiddleware())
	router.Use(corsMiddleware(cfg.Server.AllowOrigin))
	router.Use(bodyLimitMiddleware(cfg.Server.MaxBodyMB))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"version":    Version,
			"commit":     Commit,
			"build_time": BuildTime,
			"time":       time.Now().Unix(),
		})
	})

	// API v1 routes
	authMiddleware := middleware.AuthMiddleware(authService)
	adminMiddleware := middleware.AdminMiddleware()
	rateLimit := middleware.RateLimitMiddleware(
		rdb,
		cfg.RateLimit.Max,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)

	v1 := router.Group("/api/v1")
	{
		// Auth routes (rate limited)
		authGroup := v1.Group("")
		authGroup.Use(rateLimit)
		authHandler.RegisterRoutes(authGroup, authMiddleware)

		// Resource routes (protected)
		userHandler.RegisterRoutes(v1, authMiddleware, adminMiddleware)
		productHandler.RegisterRoutes(v1, authMiddleware, adminMiddleware)
		cartHandler.RegisterRoutes(v1, authMiddleware)
		paymentHandler.RegisterRoutes(v1, authMiddleware)
		cycleHandler.RegisterRoutes(v1, authMiddleware)
		checkinHandler.RegisterRoutes(v1, authMiddleware)
		systemHandler.RegisterRoutes(v1, authMiddleware)
		scoreHandler.RegisterRoutes(v1, authMiddleware)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 10 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close Redis connection
	if err := rdb.Close(); err != nil {
		log.Printf("Error closing Redis connection: %v", err)
	}

	log.Println("Server exited properly")
}

func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.Mode == "release" {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormLogger,
		// Surface unique violations as gorm.ErrDuplicatedKey; the services
		// rely on this as the safety net behind their existence pre-checks
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Payment{},
		&models.Cycle{},
		&models.CycleDay{},
		&models.DayZero{},
		&models.Daily{},
		&models.System{},
		&models.Diet{},
		&models.Training{},
		&models.Medication{},
		&models.Score{},
	)
}

func corsMiddleware(allowOrigin string) gin.HandlerFunc {
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// bodyLimitMiddleware caps request bodies. The limit is generous because
// product images and day-zero photos arrive as base64 strings.
func bodyLimitMiddleware(maxMB int) gin.HandlerFunc {
	if maxMB <= 0 {
		maxMB = 10
	}
	maxBytes := int64(maxMB) << 20
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

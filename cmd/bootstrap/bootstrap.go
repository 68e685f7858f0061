package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-healthcare-records/config"
	deliveryHttp "go-healthcare-records/internal/delivery/http"
	"go-healthcare-records/internal/delivery/http/handler"
	"go-healthcare-records/internal/delivery/http/middleware"
	"go-healthcare-records/internal/infrastructure/cache"
	"go-healthcare-records/internal/infrastructure/database"
	"go-healthcare-records/internal/repository"
	"go-healthcare-records/internal/service"
	"go-healthcare-records/internal/usecase"
	"go-healthcare-records/pkg/jwt"
	"go-healthcare-records/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations before opening the pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.Session)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	medicalRecordRepo := repository.NewMedicalRecordRepository(db)
	prescriptionRepo := repository.NewPrescriptionRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	testResultRepo := repository.NewTestResultRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	sessionService := service.NewSessionService(redisClient, log)
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, doctorRepo, jwtService, sessionService, auditService)
	medicalRecordUsecase := usecase.NewMedicalRecordUsecase(log, medicalRecordRepo, patientRepo, appointmentRepo, testResultRepo, auditService)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(log, prescriptionRepo, patientRepo, medicalRecordRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, patientRepo, doctorRepo, auditService)
	directoryUsecase := usecase.NewDirectoryUsecase(log, patientRepo, doctorRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Initialize handlers
	cookieSecure := cfg.App.Env == "production"
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService.GetSessionExpiry(), cookieSecure)
	medicalRecordHandler := handler.NewMedicalRecordHandler(medicalRecordUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	directoryHandler := handler.NewDirectoryHandler(directoryUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessionService)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		medicalRecordHandler,
		prescriptionHandler,
		appointmentHandler,
		directoryHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

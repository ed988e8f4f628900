package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-management-api/config"
	deliveryHttp "hospital-management-api/internal/delivery/http"
	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/infrastructure/cache"
	"hospital-management-api/internal/infrastructure/database"
	"hospital-management-api/internal/repository"
	"hospital-management-api/internal/service"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	RateLimiter *middleware.RateLimiter
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	log := NewLogger(cfg.Log)
	app := &App{Config: cfg, Log: log}

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(cfg.DB, database.MigrateUp, log); err != nil {
			return nil, err
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	app.DB = db

	// Initialize Redis
	listCache := service.NewNoopListCache()
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.RedisClient = redisClient
		listCache = service.NewRedisListCache(redisClient, log, cfg.Cache.TTL)
		log.Infof("List cache enabled with TTL %s", cfg.Cache.TTL)
	}

	if cfg.App.SeedOnStartup {
		if _, err := newSeeder(db, log, listCache).Seed(context.Background()); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}

	app.Server = app.initializeServer(listCache)

	return app, nil
}

// NewLogger configures a JSON logrus logger at the configured level
func NewLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// Migrate runs the embedded schema migrations in the given direction
func Migrate(cfg *config.Config, direction database.MigrationDirection) error {
	return database.RunMigrations(cfg.DB, direction, NewLogger(cfg.Log))
}

// Seed loads the demo data into an empty database
func Seed(cfg *config.Config) error {
	log := NewLogger(cfg.Log)

	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return err
	}
	defer closeDB(db)

	// A running server may hold cached lists of the empty store
	listCache := service.NewNoopListCache()
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		listCache = service.NewRedisListCache(redisClient, log, cfg.Cache.TTL)
	}

	seeded, err := newSeeder(db, log, listCache).Seed(context.Background())
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	if !seeded {
		log.Info("Nothing to seed")
	}
	return nil
}

func newSeeder(db *gorm.DB, log *logrus.Logger, listCache service.ListCache) *service.Seeder {
	return service.NewSeeder(
		db,
		log,
		repository.NewDepartmentRepository(),
		repository.NewDoctorRepository(),
		repository.NewPatientRepository(),
		repository.NewAppointmentRepository(),
		listCache,
	)
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(listCache service.ListCache) *http.Server {
	db, log := app.DB, app.Log

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	departmentRepo := repository.NewDepartmentRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	// Initialize usecases
	departmentUsecase := usecase.NewDepartmentUsecase(db, log, departmentRepo, listCache)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, departmentRepo, listCache)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, listCache)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, departmentRepo, listCache)

	// Initialize handlers
	departmentHandler := handler.NewDepartmentHandler(departmentUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)

	// Initialize middleware, outermost first
	middlewares := []mux.MiddlewareFunc{
		middleware.NewRequestLogger(log).Handle,
		middleware.NewRecovery(log).Handle,
		middleware.NewCORSMiddleware().Handle,
	}
	if app.Config.RateLimit.RPS > 0 {
		app.RateLimiter = middleware.NewRateLimiter(log, app.Config.RateLimit.RPS, app.Config.RateLimit.Burst)
		middlewares = append(middlewares, app.RateLimiter.Handle)
	}

	// Initialize router
	router := deliveryHttp.NewRouter(departmentHandler, doctorHandler, patientHandler, appointmentHandler, middlewares...)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", app.Config.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	serverErr := make(chan error, 1)

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.shutdown()
	return nil
}

func (app *App) shutdown() {
	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close releases the rate limiter, database and redis connections
func (app *App) Close() {
	if app.RateLimiter != nil {
		app.RateLimiter.Stop()
	}

	if app.DB != nil {
		closeDB(app.DB)
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

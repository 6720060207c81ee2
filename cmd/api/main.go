package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/startender/tender-api/docs"
	"github.com/startender/tender-api/internal/config"
	"github.com/startender/tender-api/internal/database"
	"github.com/startender/tender-api/internal/http/handler"
	"github.com/startender/tender-api/internal/http/middleware"
	"github.com/startender/tender-api/internal/http/router"
	"github.com/startender/tender-api/internal/jobs"
	"github.com/startender/tender-api/internal/logger"
	"github.com/startender/tender-api/internal/repository"
	"github.com/startender/tender-api/internal/service"
	"github.com/startender/tender-api/internal/storage"
	"go.uber.org/zap"
)

// @title StarTender API
// @version 1.0
// @description Tender lifecycle management API covering leads, tenders, projects, documents and OEM vendors.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "startender-staging.azurewebsites.net"
	case "production":
		docs.SwaggerInfo.Host = "api.startender.io"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	if cfg.App.Environment == "development" {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to auto-migrate database: %w", err)
		}
	}

	// Initialize storage
	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Uploaded files are only served back directly in local mode
	uploadsDir := ""
	if local, ok := fileStorage.(*storage.LocalStorage); ok {
		uploadsDir = local.BasePath()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	tenderRepo := repository.NewTenderRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)
	oemRepo := repository.NewOEMRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, log)
	leadService := service.NewLeadService(leadRepo, activityRepo, log)
	tenderService := service.NewTenderService(tenderRepo, activityRepo, log)
	projectService := service.NewProjectService(projectRepo, milestoneRepo, activityRepo, log)
	milestoneService := service.NewMilestoneService(milestoneRepo, projectRepo, log)
	documentService := service.NewDocumentService(documentRepo, activityRepo, fileStorage, log)
	activityService := service.NewActivityService(activityRepo, log)
	auditLogService := service.NewAuditLogService(auditLogRepo, log)
	oemService := service.NewOEMService(oemRepo, fileStorage, log)

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db, log)
	userHandler := handler.NewUserHandler(userService, log)
	leadHandler := handler.NewLeadHandler(leadService, log)
	tenderHandler := handler.NewTenderHandler(tenderService, log)
	projectHandler := handler.NewProjectHandler(projectService, log)
	milestoneHandler := handler.NewMilestoneHandler(milestoneService, log)
	documentHandler := handler.NewDocumentHandler(documentService, cfg.Storage.MaxUploadSizeBytes(), log)
	activityHandler := handler.NewActivityHandler(activityService, log)
	auditLogHandler := handler.NewAuditLogHandler(auditLogService, log)
	oemHandler := handler.NewOEMHandler(oemService, cfg.Storage.MaxUploadSizeBytes(), log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		rateLimiter,
		uploadsDir,
		healthHandler,
		userHandler,
		leadHandler,
		tenderHandler,
		projectHandler,
		milestoneHandler,
		documentHandler,
		activityHandler,
		auditLogHandler,
		oemHandler,
	)

	// Initialize and start scheduler for background jobs
	var scheduler *jobs.Scheduler
	if cfg.Retention.Enabled {
		scheduler = jobs.NewScheduler(log)

		if err := jobs.RegisterAuditRetentionJob(
			scheduler,
			auditLogService,
			log,
			cfg.Retention.Schedule,
			cfg.Retention.AuditLogDays,
			5*time.Minute,
		); err != nil {
			log.Error("Failed to register audit retention job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with audit retention job",
				zap.String("cron_expr", cfg.Retention.Schedule),
				zap.Int("retention_days", cfg.Retention.AuditLogDays),
			)
		}
	} else {
		log.Info("Audit log retention disabled",
			zap.Bool("enabled", cfg.Retention.Enabled),
		)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Stop scheduler if running
		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/startender/tender-api/internal/config"
	"github.com/startender/tender-api/internal/http/handler"
	"github.com/startender/tender-api/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/startender/tender-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	rateLimiter      *middleware.RateLimiter
	uploadsDir       string
	healthHandler    *handler.HealthHandler
	userHandler      *handler.UserHandler
	leadHandler      *handler.LeadHandler
	tenderHandler    *handler.TenderHandler
	projectHandler   *handler.ProjectHandler
	milestoneHandler *handler.MilestoneHandler
	documentHandler  *handler.DocumentHandler
	activityHandler  *handler.ActivityHandler
	auditLogHandler  *handler.AuditLogHandler
	oemHandler       *handler.OEMHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	rateLimiter *middleware.RateLimiter,
	uploadsDir string,
	healthHandler *handler.HealthHandler,
	userHandler *handler.UserHandler,
	leadHandler *handler.LeadHandler,
	tenderHandler *handler.TenderHandler,
	projectHandler *handler.ProjectHandler,
	milestoneHandler *handler.MilestoneHandler,
	documentHandler *handler.DocumentHandler,
	activityHandler *handler.ActivityHandler,
	auditLogHandler *handler.AuditLogHandler,
	oemHandler *handler.OEMHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		rateLimiter:      rateLimiter,
		uploadsDir:       uploadsDir,
		healthHandler:    healthHandler,
		userHandler:      userHandler,
		leadHandler:      leadHandler,
		tenderHandler:    tenderHandler,
		projectHandler:   projectHandler,
		milestoneHandler: milestoneHandler,
		documentHandler:  documentHandler,
		activityHandler:  activityHandler,
		auditLogHandler:  auditLogHandler,
		oemHandler:       oemHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.Limit)

	// Health checks
	r.Get("/health", rt.healthHandler.Health)
	r.Get("/health/db", rt.healthHandler.DB)
	r.Get("/health/ready", rt.healthHandler.Ready)

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// Uploaded files served back directly in local storage mode
	if rt.uploadsDir != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(rt.uploadsDir)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Get("/", rt.userHandler.List)
			r.Post("/", rt.userHandler.Create)
			r.Get("/{id}", rt.userHandler.GetByID)
			r.Put("/{id}", rt.userHandler.Update)
			r.Delete("/{id}", rt.userHandler.Delete)
		})

		// Leads
		r.Route("/leads", func(r chi.Router) {
			r.Get("/", rt.leadHandler.List)
			r.Post("/", rt.leadHandler.Create)
			r.Get("/{id}", rt.leadHandler.GetByID)
			r.Put("/{id}", rt.leadHandler.Update)
			r.Delete("/{id}", rt.leadHandler.Delete)
		})

		// Tenders
		r.Route("/tenders", func(r chi.Router) {
			r.Get("/", rt.tenderHandler.List)
			r.Post("/", rt.tenderHandler.Create)
			r.Get("/{id}", rt.tenderHandler.GetByID)
			r.Put("/{id}", rt.tenderHandler.Update)
			r.Delete("/{id}", rt.tenderHandler.Delete)
		})

		// Projects
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", rt.projectHandler.List)
			r.Post("/", rt.projectHandler.Create)
			r.Get("/{id}", rt.projectHandler.GetByID)
			r.Put("/{id}", rt.projectHandler.Update)
			r.Delete("/{id}", rt.projectHandler.Delete)
			r.Get("/{id}/milestones", rt.projectHandler.ListMilestones)
		})

		// Milestones
		r.Route("/milestones", func(r chi.Router) {
			r.Get("/", rt.milestoneHandler.List)
			r.Post("/", rt.milestoneHandler.Create)
			r.Get("/{id}", rt.milestoneHandler.GetByID)
			r.Put("/{id}", rt.milestoneHandler.Update)
			r.Delete("/{id}", rt.milestoneHandler.Delete)
		})

		// Documents
		r.Route("/documents", func(r chi.Router) {
			r.Get("/", rt.documentHandler.List)
			r.Post("/", rt.documentHandler.Create)
			r.Get("/{id}", rt.documentHandler.GetByID)
			r.Put("/{id}", rt.documentHandler.Update)
			r.Delete("/{id}", rt.documentHandler.Delete)
			r.Get("/{id}/download", rt.documentHandler.Download)
		})

		// Activities
		r.Route("/activities", func(r chi.Router) {
			r.Get("/", rt.activityHandler.List)
			r.Post("/", rt.activityHandler.Create)
			r.Get("/{id}", rt.activityHandler.GetByID)
		})

		// Audit logs
		r.Route("/audit-logs", func(r chi.Router) {
			r.Get("/", rt.auditLogHandler.List)
			r.Post("/", rt.auditLogHandler.Create)
			r.Get("/user/{userId}", rt.auditLogHandler.ListByUser)
		})

		// OEMs
		r.Route("/oems", func(r chi.Router) {
			r.Get("/", rt.oemHandler.List)
			r.Post("/", rt.oemHandler.Create)
			r.Get("/{id}", rt.oemHandler.GetByID)
			r.Put("/{id}", rt.oemHandler.Update)
			r.Delete("/{id}", rt.oemHandler.Delete)
			r.Get("/{id}/documents", rt.oemHandler.ListDocuments)
			r.Post("/{id}/documents", rt.oemHandler.UploadDocument)
			r.Get("/{id}/documents/{documentId}/download", rt.oemHandler.DownloadDocument)
		})
	})

	return r
}

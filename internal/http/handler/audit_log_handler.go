package handler

import (
	"encoding/json"
	"net/http"

	"github.com/startender/tender-api/internal/domain"
	"github.com/startender/tender-api/internal/service"
	"go.uber.org/zap"
)

// AuditLogHandler handles HTTP requests for the append-only audit trail
type AuditLogHandler struct {
	auditLogService *service.AuditLogService
	logger          *zap.Logger
}

// NewAuditLogHandler creates a new audit log handler instance
func NewAuditLogHandler(
	auditLogService *service.AuditLogService,
	logger *zap.Logger,
) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogService: auditLogService,
		logger:          logger,
	}
}

// List godoc
// @Summary List audit logs
// @Description Get all audit logs in ascending timestamp order
// @Tags AuditLogs
// @Produce json
// @Success 200 {array} domain.AuditLogDTO
// @Failure 500 {object} domain.ErrorResponse
// @Router /audit-logs [get]
func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.auditLogService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list audit logs", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list audit logs",
		})
		return
	}

	respondJSON(w, http.StatusOK, logs)
}

// ListByUser godoc
// @Summary List audit logs for a user
// @Description Get a user's audit logs in ascending timestamp order. An unknown user yields an empty list.
// @Tags AuditLogs
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} domain.AuditLogDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /audit-logs/user/{userId} [get]
func (h *AuditLogHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		respondInvalidID(w, "user")
		return
	}

	logs, err := h.auditLogService.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list audit logs by user", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list audit logs",
		})
		return
	}

	respondJSON(w, http.StatusOK, logs)
}

// Create godoc
// @Summary Create audit log
// @Description Record a new audit log entry. The logId is generated server-side and is unique per entry.
// @Tags AuditLogs
// @Accept json
// @Produce json
// @Param request body domain.CreateAuditLogRequest true "Audit log data"
// @Success 201 {object} domain.AuditLogDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /audit-logs [post]
func (h *AuditLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAuditLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid request body",
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	log, err := h.auditLogService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create audit log", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to create audit log",
		})
		return
	}

	respondJSON(w, http.StatusCreated, log)
}

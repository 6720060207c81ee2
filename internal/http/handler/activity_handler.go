package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/startender/tender-api/internal/domain"
	"github.com/startender/tender-api/internal/service"
	"go.uber.org/zap"
)

// ActivityHandler handles HTTP requests for the append-only activity feed
type ActivityHandler struct {
	activityService *service.ActivityService
	logger          *zap.Logger
}

// NewActivityHandler creates a new activity handler instance
func NewActivityHandler(
	activityService *service.ActivityService,
	logger *zap.Logger,
) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		logger:          logger,
	}
}

// List godoc
// @Summary List activities
// @Description Get all activities in chronological order
// @Tags Activities
// @Produce json
// @Success 200 {array} domain.ActivityDTO
// @Failure 500 {object} domain.ErrorResponse
// @Router /activities [get]
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list activities", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list activities",
		})
		return
	}

	respondJSON(w, http.StatusOK, activities)
}

// GetByID godoc
// @Summary Get activity by ID
// @Description Get a single activity entry
// @Tags Activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} domain.ActivityDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /activities/{id} [get]
func (h *ActivityHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "activity")
		return
	}

	activity, err := h.activityService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Activity not found",
			})
			return
		}
		h.logger.Error("failed to get activity", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get activity",
		})
		return
	}

	respondJSON(w, http.StatusOK, activity)
}

// Create godoc
// @Summary Create activity
// @Description Record a new activity entry. Entries are immutable once created.
// @Tags Activities
// @Accept json
// @Produce json
// @Param request body domain.CreateActivityRequest true "Activity data"
// @Success 201 {object} domain.ActivityDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /activities [post]
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateActivityRequest
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

	activity, err := h.activityService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRelatedKind) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: err.Error(),
			})
			return
		}
		h.logger.Error("failed to create activity", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to create activity",
		})
		return
	}

	respondJSON(w, http.StatusCreated, activity)
}

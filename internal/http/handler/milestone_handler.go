package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/startender/tender-api/internal/domain"
	"github.com/startender/tender-api/internal/service"
	"go.uber.org/zap"
)

// MilestoneHandler handles HTTP requests for milestone operations
type MilestoneHandler struct {
	milestoneService *service.MilestoneService
	logger           *zap.Logger
}

// NewMilestoneHandler creates a new milestone handler instance
func NewMilestoneHandler(
	milestoneService *service.MilestoneService,
	logger *zap.Logger,
) *MilestoneHandler {
	return &MilestoneHandler{
		milestoneService: milestoneService,
		logger:           logger,
	}
}

// List godoc
// @Summary List milestones
// @Description Get all milestones
// @Tags Milestones
// @Produce json
// @Success 200 {array} domain.MilestoneDTO
// @Failure 500 {object} domain.ErrorResponse
// @Router /milestones [get]
func (h *MilestoneHandler) List(w http.ResponseWriter, r *http.Request) {
	milestones, err := h.milestoneService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list milestones", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list milestones",
		})
		return
	}

	respondJSON(w, http.StatusOK, milestones)
}

// GetByID godoc
// @Summary Get milestone by ID
// @Description Get a single milestone
// @Tags Milestones
// @Produce json
// @Param id path int true "Milestone ID"
// @Success 200 {object} domain.MilestoneDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /milestones/{id} [get]
func (h *MilestoneHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "milestone")
		return
	}

	milestone, err := h.milestoneService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMilestoneNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Milestone not found",
			})
			return
		}
		h.logger.Error("failed to get milestone", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get milestone",
		})
		return
	}

	respondJSON(w, http.StatusOK, milestone)
}

// Create godoc
// @Summary Create milestone
// @Description Create a new milestone under a project
// @Tags Milestones
// @Accept json
// @Produce json
// @Param request body domain.CreateMilestoneRequest true "Milestone data"
// @Success 201 {object} domain.MilestoneDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse "Project not found"
// @Failure 500 {object} domain.ErrorResponse
// @Router /milestones [post]
func (h *MilestoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateMilestoneRequest
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

	milestone, err := h.milestoneService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Project not found",
			})
			return
		}
		if errors.Is(err, service.ErrInvalidStatus) || errors.Is(err, service.ErrInvalidDate) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: err.Error(),
			})
			return
		}
		h.logger.Error("failed to create milestone", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to create milestone",
		})
		return
	}

	respondJSON(w, http.StatusCreated, milestone)
}

// Update godoc
// @Summary Update milestone
// @Description Update an existing milestone
// @Tags Milestones
// @Accept json
// @Produce json
// @Param id path int true "Milestone ID"
// @Param request body domain.UpdateMilestoneRequest true "Milestone data"
// @Success 200 {object} domain.MilestoneDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /milestones/{id} [put]
func (h *MilestoneHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "milestone")
		return
	}

	var req domain.UpdateMilestoneRequest
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

	milestone, err := h.milestoneService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrMilestoneNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Milestone not found",
			})
			return
		}
		if errors.Is(err, service.ErrInvalidStatus) || errors.Is(err, service.ErrInvalidDate) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: err.Error(),
			})
			return
		}
		h.logger.Error("failed to update milestone", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update milestone",
		})
		return
	}

	respondJSON(w, http.StatusOK, milestone)
}

// Delete godoc
// @Summary Delete milestone
// @Description Delete a milestone
// @Tags Milestones
// @Produce json
// @Param id path int true "Milestone ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /milestones/{id} [delete]
func (h *MilestoneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "milestone")
		return
	}

	if err := h.milestoneService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrMilestoneNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Milestone not found",
			})
			return
		}
		h.logger.Error("failed to delete milestone", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete milestone",
		})
		return
	}

	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "Milestone deleted successfully"})
}

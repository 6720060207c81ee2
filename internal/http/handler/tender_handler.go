package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/startender/tender-api/internal/domain"
	"github.com/startender/tender-api/internal/service"
	"go.uber.org/zap"
)

// TenderHandler handles HTTP requests for tender operations
type TenderHandler struct {
	tenderService *service.TenderService
	logger        *zap.Logger
}

// NewTenderHandler creates a new tender handler instance
func NewTenderHandler(
	tenderService *service.TenderService,
	logger *zap.Logger,
) *TenderHandler {
	return &TenderHandler{
		tenderService: tenderService,
		logger:        logger,
	}
}

// List godoc
// @Summary List tenders
// @Description Get all tenders
// @Tags Tenders
// @Produce json
// @Success 200 {array} domain.TenderDTO
// @Failure 500 {object} domain.ErrorResponse
// @Router /tenders [get]
func (h *TenderHandler) List(w http.ResponseWriter, r *http.Request) {
	tenders, err := h.tenderService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list tenders", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list tenders",
		})
		return
	}

	respondJSON(w, http.StatusOK, tenders)
}

// GetByID godoc
// @Summary Get tender by ID
// @Description Get a single tender
// @Tags Tenders
// @Produce json
// @Param id path int true "Tender ID"
// @Success 200 {object} domain.TenderDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /tenders/{id} [get]
func (h *TenderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "tender")
		return
	}

	tender, err := h.tenderService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTenderNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Tender not found",
			})
			return
		}
		h.logger.Error("failed to get tender", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get tender",
		})
		return
	}

	respondJSON(w, http.StatusOK, tender)
}

// Create godoc
// @Summary Create tender
// @Description Create a new tender
// @Tags Tenders
// @Accept json
// @Produce json
// @Param request body domain.CreateTenderRequest true "Tender data"
// @Success 201 {object} domain.TenderDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /tenders [post]
func (h *TenderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTenderRequest
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

	tender, err := h.tenderService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) || errors.Is(err, service.ErrInvalidDate) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: err.Error(),
			})
			return
		}
		h.logger.Error("failed to create tender", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to create tender",
		})
		return
	}

	respondJSON(w, http.StatusCreated, tender)
}

// Update godoc
// @Summary Update tender
// @Description Update an existing tender
// @Tags Tenders
// @Accept json
// @Produce json
// @Param id path int true "Tender ID"
// @Param request body domain.UpdateTenderRequest true "Tender data"
// @Success 200 {object} domain.TenderDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /tenders/{id} [put]
func (h *TenderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "tender")
		return
	}

	var req domain.UpdateTenderRequest
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

	tender, err := h.tenderService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrTenderNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Tender not found",
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
		h.logger.Error("failed to update tender", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update tender",
		})
		return
	}

	respondJSON(w, http.StatusOK, tender)
}

// Delete godoc
// @Summary Delete tender
// @Description Delete a tender
// @Tags Tenders
// @Produce json
// @Param id path int true "Tender ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /tenders/{id} [delete]
func (h *TenderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "tender")
		return
	}

	if err := h.tenderService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrTenderNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Tender not found",
			})
			return
		}
		h.logger.Error("failed to delete tender", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete tender",
		})
		return
	}

	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "Tender deleted successfully"})
}

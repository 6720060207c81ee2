package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/startender/tender-api/internal/domain"
	"github.com/startender/tender-api/internal/service"
	"go.uber.org/zap"
)

// OEMHandler handles HTTP requests for OEM vendor operations, including
// the document sub-resource
type OEMHandler struct {
	oemService      *service.OEMService
	maxUploadMemory int64
	logger          *zap.Logger
}

// NewOEMHandler creates a new OEM handler instance
func NewOEMHandler(
	oemService *service.OEMService,
	maxUploadMemory int64,
	logger *zap.Logger,
) *OEMHandler {
	return &OEMHandler{
		oemService:      oemService,
		maxUploadMemory: maxUploadMemory,
		logger:          logger,
	}
}

// List godoc
// @Summary List OEMs
// @Description Get all OEM vendors
// @Tags OEMs
// @Produce json
// @Success 200 {array} domain.OEMDTO
// @Failure 500 {object} domain.ErrorResponse
// @Router /oems [get]
func (h *OEMHandler) List(w http.ResponseWriter, r *http.Request) {
	oems, err := h.oemService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list oems", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list OEMs",
		})
		return
	}

	respondJSON(w, http.StatusOK, oems)
}

// GetByID godoc
// @Summary Get OEM by ID
// @Description Get an OEM vendor with its documents
// @Tags OEMs
// @Produce json
// @Param id path int true "OEM ID"
// @Success 200 {object} domain.OEMDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /oems/{id} [get]
func (h *OEMHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "OEM")
		return
	}

	oem, err := h.oemService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOEMNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "OEM not found",
			})
			return
		}
		h.logger.Error("failed to get oem", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get OEM",
		})
		return
	}

	respondJSON(w, http.StatusOK, oem)
}

// Create godoc
// @Summary Create OEM
// @Description Create a new OEM vendor record
// @Tags OEMs
// @Accept json
// @Produce json
// @Param request body domain.CreateOEMRequest true "OEM data"
// @Success 201 {object} domain.OEMDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /oems [post]
func (h *OEMHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOEMRequest
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

	oem, err := h.oemService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: err.Error(),
			})
			return
		}
		h.logger.Error("failed to create oem", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to create OEM",
		})
		return
	}

	respondJSON(w, http.StatusCreated, oem)
}

// Update godoc
// @Summary Update OEM
// @Description Update an existing OEM vendor
// @Tags OEMs
// @Accept json
// @Produce json
// @Param id path int true "OEM ID"
// @Param request body domain.UpdateOEMRequest true "OEM data"
// @Success 200 {object} domain.OEMDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /oems/{id} [put]
func (h *OEMHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "OEM")
		return
	}

	var req domain.UpdateOEMRequest
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

	oem, err := h.oemService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrOEMNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "OEM not found",
			})
			return
		}
		if errors.Is(err, service.ErrInvalidStatus) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: err.Error(),
			})
			return
		}
		h.logger.Error("failed to update oem", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update OEM",
		})
		return
	}

	respondJSON(w, http.StatusOK, oem)
}

// Delete godoc
// @Summary Delete OEM
// @Description Delete an OEM vendor and its documents
// @Tags OEMs
// @Produce json
// @Param id path int true "OEM ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /oems/{id} [delete]
func (h *OEMHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "OEM")
		return
	}

	if err := h.oemService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrOEMNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "OEM not found",
			})
			return
		}
		h.logger.Error("failed to delete oem", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete OEM",
		})
		return
	}

	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "OEM deleted successfully"})
}

// ListDocuments godoc
// @Summary List OEM documents
// @Description Get all document records for an OEM
// @Tags OEMs
// @Produce json
// @Param id path int true "OEM ID"
// @Success 200 {array} domain.OEMDocumentDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /oems/{id}/documents [get]
func (h *OEMHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "OEM")
		return
	}

	docs, err := h.oemService.ListDocuments(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOEMNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "OEM not found",
			})
			return
		}
		h.logger.Error("failed to list oem documents", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list OEM documents",
		})
		return
	}

	respondJSON(w, http.StatusOK, docs)
}

// UploadDocument godoc
// @Summary Upload OEM document
// @Description Upload a file for an OEM as a multipart form with a documentType field
// @Tags OEMs
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "OEM ID"
// @Param file formData file true "File to upload"
// @Param documentType formData string true "Document type tag"
// @Success 201 {object} domain.OEMDocumentDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /oems/{id}/documents [post]
func (h *OEMHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "OEM")
		return
	}

	if err := r.ParseMultipartForm(h.maxUploadMemory); err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid multipart form",
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Missing file field",
		})
		return
	}
	defer file.Close()

	documentType := r.FormValue("documentType")
	if documentType == "" {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "documentType is required",
		})
		return
	}

	contentType := header.Header.Get("Content-Type")
	doc, err := h.oemService.UploadDocument(r.Context(), id, documentType, header.Filename, contentType, file)
	if err != nil {
		if errors.Is(err, service.ErrOEMNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "OEM not found",
			})
			return
		}
		h.logger.Error("failed to upload oem document", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to upload OEM document",
		})
		return
	}

	respondJSON(w, http.StatusCreated, doc)
}

// DownloadDocument godoc
// @Summary Download OEM document
// @Description Stream the stored file for an OEM document
// @Tags OEMs
// @Produce octet-stream
// @Param id path int true "OEM ID"
// @Param documentId path int true "Document ID"
// @Success 200 {file} binary
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /oems/{id}/documents/{documentId}/download [get]
func (h *OEMHandler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "OEM")
		return
	}

	documentID, err := parseIDParam(r, "documentId")
	if err != nil {
		respondInvalidID(w, "document")
		return
	}

	reader, filename, contentType, err := h.oemService.DownloadDocument(r.Context(), id, documentID)
	if err != nil {
		if errors.Is(err, service.ErrOEMDocumentNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "OEM document not found",
			})
			return
		}
		h.logger.Error("failed to download oem document", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to download OEM document",
		})
		return
	}
	defer reader.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Warn("failed to stream oem document", zap.Uint("id", documentID), zap.Error(err))
	}
}

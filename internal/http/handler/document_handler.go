package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/startender/tender-api/internal/domain"
	"github.com/startender/tender-api/internal/service"
	"go.uber.org/zap"
)

// DocumentHandler handles HTTP requests for document operations.
// Creation is a multipart upload; metadata updates are plain JSON.
type DocumentHandler struct {
	documentService *service.DocumentService
	maxUploadMemory int64
	logger          *zap.Logger
}

// NewDocumentHandler creates a new document handler instance
func NewDocumentHandler(
	documentService *service.DocumentService,
	maxUploadMemory int64,
	logger *zap.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		maxUploadMemory: maxUploadMemory,
		logger:          logger,
	}
}

// List godoc
// @Summary List documents
// @Description Get all documents
// @Tags Documents
// @Produce json
// @Success 200 {array} domain.DocumentDTO
// @Failure 500 {object} domain.ErrorResponse
// @Router /documents [get]
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	documents, err := h.documentService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list documents", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list documents",
		})
		return
	}

	respondJSON(w, http.StatusOK, documents)
}

// GetByID godoc
// @Summary Get document by ID
// @Description Get a single document record
// @Tags Documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} domain.DocumentDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "document")
		return
	}

	document, err := h.documentService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Document not found",
			})
			return
		}
		h.logger.Error("failed to get document", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get document",
		})
		return
	}

	respondJSON(w, http.StatusOK, document)
}

// Create godoc
// @Summary Upload document
// @Description Upload a file with document metadata as a multipart form
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param title formData string true "Document title"
// @Param type formData string true "Document type" Enums(KYC, BID, CONTRACT, MILESTONE, INVOICE)
// @Param status formData string false "Review status" Enums(pending, approved, rejected)
// @Param relatedToId formData int false "Related entity ID"
// @Param relatedToType formData string false "Related entity kind" Enums(lead, tender, project)
// @Param uploadedById formData int false "Uploading user ID"
// @Success 201 {object} domain.DocumentDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /documents [post]
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	req := domain.CreateDocumentRequest{
		Title:  r.FormValue("title"),
		Type:   domain.DocumentType(r.FormValue("type")),
		Status: domain.DocumentStatus(r.FormValue("status")),
	}
	if req.RelatedToID, err = parseUintFormValue(r, "relatedToId"); err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid relatedToId",
		})
		return
	}
	if kind := r.FormValue("relatedToType"); kind != "" {
		k := domain.RelatedKind(kind)
		req.RelatedToType = &k
	}
	if req.UploadedByID, err = parseUintFormValue(r, "uploadedById"); err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid uploadedById",
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	contentType := header.Header.Get("Content-Type")
	document, err := h.documentService.Upload(r.Context(), &req, header.Filename, contentType, file)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) || errors.Is(err, service.ErrInvalidRelatedKind) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: err.Error(),
			})
			return
		}
		h.logger.Error("failed to upload document", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to upload document",
		})
		return
	}

	respondJSON(w, http.StatusCreated, document)
}

// Download godoc
// @Summary Download document
// @Description Stream the stored file for a document
// @Tags Documents
// @Produce octet-stream
// @Param id path int true "Document ID"
// @Success 200 {file} binary
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /documents/{id}/download [get]
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "document")
		return
	}

	reader, filename, contentType, err := h.documentService.Download(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Document not found",
			})
			return
		}
		h.logger.Error("failed to download document", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to download document",
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
		h.logger.Warn("failed to stream document", zap.Uint("id", id), zap.Error(err))
	}
}

// Update godoc
// @Summary Update document metadata
// @Description Update a document's metadata. The stored file is not replaced.
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param request body domain.UpdateDocumentRequest true "Document data"
// @Success 200 {object} domain.DocumentDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /documents/{id} [put]
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "document")
		return
	}

	var req domain.UpdateDocumentRequest
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

	document, err := h.documentService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Document not found",
			})
			return
		}
		if errors.Is(err, service.ErrInvalidStatus) || errors.Is(err, service.ErrInvalidRelatedKind) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: err.Error(),
			})
			return
		}
		h.logger.Error("failed to update document", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update document",
		})
		return
	}

	respondJSON(w, http.StatusOK, document)
}

// Delete godoc
// @Summary Delete document
// @Description Delete a document record and its stored file
// @Tags Documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondInvalidID(w, "document")
		return
	}

	if err := h.documentService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Document not found",
			})
			return
		}
		h.logger.Error("failed to delete document", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete document",
		})
		return
	}

	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "Document deleted successfully"})
}

// parseUintFormValue reads an optional integer form field
func parseUintFormValue(r *http.Request, name string) (*uint, error) {
	value := r.FormValue(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil, err
	}
	id := uint(parsed)
	return &id, nil
}

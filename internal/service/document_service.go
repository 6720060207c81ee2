package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/startender/tender-api/internal/domain"
	"github.com/startender/tender-api/internal/mapper"
	"github.com/startender/tender-api/internal/repository"
	"github.com/startender/tender-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrDocumentNotFound is returned when a document is not found
var ErrDocumentNotFound = errors.New("document not found")

// DocumentService handles document metadata and blob storage. The stored
// file lives under a category directory derived from the document type.
type DocumentService struct {
	documentRepo *repository.DocumentRepository
	activityRepo *repository.ActivityRepository
	storage      storage.Storage
	logger       *zap.Logger
}

// NewDocumentService creates a new document service instance
func NewDocumentService(
	documentRepo *repository.DocumentRepository,
	activityRepo *repository.ActivityRepository,
	store storage.Storage,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		activityRepo: activityRepo,
		storage:      store,
		logger:       logger,
	}
}

// List returns all documents
func (s *DocumentService) List(ctx context.Context) ([]domain.DocumentDTO, error) {
	documents, err := s.documentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	dtos := make([]domain.DocumentDTO, len(documents))
	for i, document := range documents {
		dtos[i] = mapper.ToDocumentDTO(&document)
	}
	return dtos, nil
}

// GetByID retrieves a document by ID
func (s *DocumentService) GetByID(ctx context.Context, id uint) (*domain.DocumentDTO, error) {
	document, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	dto := mapper.ToDocumentDTO(document)
	return &dto, nil
}

// Upload stores the file and creates the document record. If the
// database insert fails the stored file is removed best-effort.
func (s *DocumentService) Upload(ctx context.Context, req *domain.CreateDocumentRequest, filename, contentType string, data io.Reader) (*domain.DocumentDTO, error) {
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: type %s", ErrInvalidStatus, req.Type)
	}

	status := req.Status
	if status == "" {
		status = domain.DocumentStatusPending
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if err := validateRelatedRef(req.RelatedToID, req.RelatedToType); err != nil {
		return nil, err
	}

	category := strings.ToLower(string(req.Type))
	storagePath, size, err := s.storage.Upload(ctx, category, filename, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	document := &domain.Document{
		Title:         req.Title,
		Type:          req.Type,
		FilePath:      storagePath,
		FileSize:      size,
		FileType:      contentType,
		Status:        status,
		RelatedToID:   req.RelatedToID,
		RelatedToType: req.RelatedToType,
		UploadedByID:  req.UploadedByID,
	}

	if err := s.documentRepo.Create(ctx, document); err != nil {
		if delErr := s.storage.Delete(ctx, storagePath); delErr != nil {
			s.logger.Warn("failed to clean up stored file after db error",
				zap.String("path", storagePath),
				zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	s.logActivity(ctx, document, "create", fmt.Sprintf("Document uploaded: %s", document.Title))

	dto := mapper.ToDocumentDTO(document)
	return &dto, nil
}

// Download opens the stored file for a document. The caller must close
// the returned reader.
func (s *DocumentService) Download(ctx context.Context, id uint) (io.ReadCloser, string, string, error) {
	document, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrDocumentNotFound
		}
		return nil, "", "", fmt.Errorf("failed to get document: %w", err)
	}

	reader, err := s.storage.Download(ctx, document.FilePath)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to open stored file: %w", err)
	}

	return reader, path.Base(document.FilePath), document.FileType, nil
}

// Update replaces a document's metadata. The stored file is untouched.
func (s *DocumentService) Update(ctx context.Context, id uint, req *domain.UpdateDocumentRequest) (*domain.DocumentDTO, error) {
	document, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: type %s", ErrInvalidStatus, req.Type)
	}

	status := req.Status
	if status == "" {
		status = document.Status
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if err := validateRelatedRef(req.RelatedToID, req.RelatedToType); err != nil {
		return nil, err
	}

	document.Title = req.Title
	document.Type = req.Type
	document.Status = status
	document.RelatedToID = req.RelatedToID
	document.RelatedToType = req.RelatedToType

	if err := s.documentRepo.Update(ctx, document); err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	s.logActivity(ctx, document, "update", fmt.Sprintf("Document updated: %s", document.Title))

	dto := mapper.ToDocumentDTO(document)
	return &dto, nil
}

// Delete removes a document record and its stored file. Storage failures
// are logged, not returned; the record is deleted regardless.
func (s *DocumentService) Delete(ctx context.Context, id uint) error {
	document, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to get document: %w", err)
	}

	if err := s.storage.Delete(ctx, document.FilePath); err != nil {
		s.logger.Warn("failed to delete stored file",
			zap.String("path", document.FilePath),
			zap.Error(err))
	}

	if err := s.documentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	s.logActivity(ctx, document, "delete", fmt.Sprintf("Document deleted: %s", document.Title))
	return nil
}

func (s *DocumentService) logActivity(ctx context.Context, document *domain.Document, actionType, title string) {
	activity := &domain.Activity{
		Title:         title,
		Type:          "document",
		ActionType:    actionType,
		PerformedByID: document.UploadedByID,
		RelatedToID:   document.RelatedToID,
		RelatedToType: document.RelatedToType,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		s.logger.Warn("failed to log document activity",
			zap.Uint("document_id", document.ID),
			zap.Error(err))
	}
}

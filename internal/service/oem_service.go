package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/startender/tender-api/internal/domain"
	"github.com/startender/tender-api/internal/mapper"
	"github.com/startender/tender-api/internal/repository"
	"github.com/startender/tender-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrOEMNotFound is returned when an OEM is not found
	ErrOEMNotFound = errors.New("oem not found")

	// ErrOEMDocumentNotFound is returned when an OEM document is not found
	ErrOEMDocumentNotFound = errors.New("oem document not found")
)

// oemDocumentCategory is the blob storage namespace for OEM uploads
const oemDocumentCategory = "oem-documents"

// OEMService handles OEM vendor business logic, including the document
// sub-resource backed by blob storage
type OEMService struct {
	oemRepo *repository.OEMRepository
	storage storage.Storage
	logger  *zap.Logger
}

// NewOEMService creates a new OEM service instance
func NewOEMService(
	oemRepo *repository.OEMRepository,
	store storage.Storage,
	logger *zap.Logger,
) *OEMService {
	return &OEMService{
		oemRepo: oemRepo,
		storage: store,
		logger:  logger,
	}
}

// List returns all OEMs
func (s *OEMService) List(ctx context.Context) ([]domain.OEMDTO, error) {
	oems, err := s.oemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list oems: %w", err)
	}

	dtos := make([]domain.OEMDTO, len(oems))
	for i, oem := range oems {
		dtos[i] = mapper.ToOEMDTO(&oem)
	}
	return dtos, nil
}

// GetByID retrieves an OEM with its documents
func (s *OEMService) GetByID(ctx context.Context, id uint) (*domain.OEMDTO, error) {
	oem, err := s.oemRepo.GetWithDocuments(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOEMNotFound
		}
		return nil, fmt.Errorf("failed to get oem: %w", err)
	}

	dto := mapper.ToOEMDTO(oem)
	return &dto, nil
}

// Create creates a new OEM vendor record
func (s *OEMService) Create(ctx context.Context, req *domain.CreateOEMRequest) (*domain.OEMDTO, error) {
	status := req.OEMStatus
	if status == "" {
		status = domain.OEMStatusPending
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	oem := &domain.OEM{
		CompanyName:        req.CompanyName,
		RegistrationNumber: req.RegistrationNumber,
		PANNumber:          req.PANNumber,
		GSTNumber:          req.GSTNumber,
		ContactPerson:      req.ContactPerson,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		OEMStatus:          status,
	}

	if err := s.oemRepo.Create(ctx, oem); err != nil {
		return nil, fmt.Errorf("failed to create oem: %w", err)
	}

	s.logger.Info("oem created",
		zap.Uint("id", oem.ID),
		zap.String("company", oem.CompanyName))

	dto := mapper.ToOEMDTO(oem)
	return &dto, nil
}

// Update replaces an OEM's fields
func (s *OEMService) Update(ctx context.Context, id uint, req *domain.UpdateOEMRequest) (*domain.OEMDTO, error) {
	oem, err := s.oemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOEMNotFound
		}
		return nil, fmt.Errorf("failed to get oem: %w", err)
	}

	status := req.OEMStatus
	if status == "" {
		status = oem.OEMStatus
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	oem.CompanyName = req.CompanyName
	oem.RegistrationNumber = req.RegistrationNumber
	oem.PANNumber = req.PANNumber
	oem.GSTNumber = req.GSTNumber
	oem.ContactPerson = req.ContactPerson
	oem.Email = req.Email
	oem.Phone = req.Phone
	oem.Address = req.Address
	oem.OEMStatus = status

	if err := s.oemRepo.Update(ctx, oem); err != nil {
		return nil, fmt.Errorf("failed to update oem: %w", err)
	}

	dto := mapper.ToOEMDTO(oem)
	return &dto, nil
}

// Delete removes an OEM. Its document records cascade; stored files are
// removed best-effort.
func (s *OEMService) Delete(ctx context.Context, id uint) error {
	if _, err := s.oemRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOEMNotFound
		}
		return fmt.Errorf("failed to get oem: %w", err)
	}

	docs, err := s.oemRepo.ListDocuments(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list oem documents: %w", err)
	}

	if err := s.oemRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete oem: %w", err)
	}

	for _, doc := range docs {
		if err := s.storage.Delete(ctx, doc.FilePath); err != nil {
			s.logger.Warn("failed to delete stored oem document",
				zap.String("path", doc.FilePath),
				zap.Error(err))
		}
	}

	return nil
}

// UploadDocument stores a file against an OEM and records it. If the
// database insert fails the stored file is removed best-effort.
func (s *OEMService) UploadDocument(ctx context.Context, oemID uint, documentType, filename, contentType string, data io.Reader) (*domain.OEMDocumentDTO, error) {
	if _, err := s.oemRepo.GetByID(ctx, oemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOEMNotFound
		}
		return nil, fmt.Errorf("failed to get oem: %w", err)
	}

	storagePath, size, err := s.storage.Upload(ctx, oemDocumentCategory, filename, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	doc := &domain.OEMDocument{
		OEMID:        oemID,
		DocumentType: documentType,
		FileName:     filename,
		FilePath:     storagePath,
		FileSize:     size,
		FileType:     contentType,
	}

	if err := s.oemRepo.CreateDocument(ctx, doc); err != nil {
		if delErr := s.storage.Delete(ctx, storagePath); delErr != nil {
			s.logger.Warn("failed to clean up stored file after db error",
				zap.String("path", storagePath),
				zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to create oem document: %w", err)
	}

	dto := mapper.ToOEMDocumentDTO(doc)
	return &dto, nil
}

// ListDocuments returns an OEM's document records
func (s *OEMService) ListDocuments(ctx context.Context, oemID uint) ([]domain.OEMDocumentDTO, error) {
	if _, err := s.oemRepo.GetByID(ctx, oemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOEMNotFound
		}
		return nil, fmt.Errorf("failed to get oem: %w", err)
	}

	docs, err := s.oemRepo.ListDocuments(ctx, oemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list oem documents: %w", err)
	}

	dtos := make([]domain.OEMDocumentDTO, len(docs))
	for i, doc := range docs {
		dtos[i] = mapper.ToOEMDocumentDTO(&doc)
	}
	return dtos, nil
}

// DownloadDocument opens the stored file for an OEM document. The
// original upload filename is returned for the download header.
func (s *OEMService) DownloadDocument(ctx context.Context, oemID, documentID uint) (io.ReadCloser, string, string, error) {
	doc, err := s.oemRepo.GetDocumentByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrOEMDocumentNotFound
		}
		return nil, "", "", fmt.Errorf("failed to get oem document: %w", err)
	}
	if doc.OEMID != oemID {
		return nil, "", "", ErrOEMDocumentNotFound
	}

	reader, err := s.storage.Download(ctx, doc.FilePath)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to open stored file: %w", err)
	}

	return reader, doc.FileName, doc.FileType, nil
}

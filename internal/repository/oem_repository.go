package repository

import (
	"context"

	"github.com/startender/tender-api/internal/domain"
	"gorm.io/gorm"
)

// OEMRepository handles OEM vendor data access, including the OEM
// document sub-resource
type OEMRepository struct {
	db *gorm.DB
}

// NewOEMRepository creates a new OEM repository instance
func NewOEMRepository(db *gorm.DB) *OEMRepository {
	return &OEMRepository{db: db}
}

// List returns all OEMs ordered by creation time
func (r *OEMRepository) List(ctx context.Context) ([]domain.OEM, error) {
	var oems []domain.OEM
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&oems).Error
	return oems, err
}

// GetByID retrieves an OEM by its ID
func (r *OEMRepository) GetByID(ctx context.Context, id uint) (*domain.OEM, error) {
	var oem domain.OEM
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&oem).Error
	if err != nil {
		return nil, err
	}
	return &oem, nil
}

// GetWithDocuments retrieves an OEM with its documents preloaded
func (r *OEMRepository) GetWithDocuments(ctx context.Context, id uint) (*domain.OEM, error) {
	var oem domain.OEM
	err := r.db.WithContext(ctx).
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&oem).Error
	if err != nil {
		return nil, err
	}
	return &oem, nil
}

// Create creates a new OEM in the database
func (r *OEMRepository) Create(ctx context.Context, oem *domain.OEM) error {
	return r.db.WithContext(ctx).Create(oem).Error
}

// Update updates an existing OEM in the database
func (r *OEMRepository) Update(ctx context.Context, oem *domain.OEM) error {
	return r.db.WithContext(ctx).Save(oem).Error
}

// Delete hard-deletes an OEM; documents cascade
func (r *OEMRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.OEM{}, "id = ?", id).Error
}

// CreateDocument creates a new OEM document record
func (r *OEMRepository) CreateDocument(ctx context.Context, doc *domain.OEMDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

// GetDocumentByID retrieves an OEM document by its ID
func (r *OEMRepository) GetDocumentByID(ctx context.Context, id uint) (*domain.OEMDocument, error) {
	var doc domain.OEMDocument
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListDocuments returns all documents for an OEM
func (r *OEMRepository) ListDocuments(ctx context.Context, oemID uint) ([]domain.OEMDocument, error) {
	var docs []domain.OEMDocument
	err := r.db.WithContext(ctx).
		Where("oem_id = ?", oemID).
		Order("created_at ASC").
		Find(&docs).Error
	return docs, err
}

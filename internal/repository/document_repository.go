package repository

import (
	"context"

	"github.com/startender/tender-api/internal/domain"
	"gorm.io/gorm"
)

// DocumentRepository handles document data access operations
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository instance
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// List returns all documents ordered by creation time
func (r *DocumentRepository) List(ctx context.Context) ([]domain.Document, error) {
	var documents []domain.Document
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&documents).Error
	return documents, err
}

// ListByRelated returns documents pointing at a given (kind, id) pair
func (r *DocumentRepository) ListByRelated(ctx context.Context, kind domain.RelatedKind, id uint) ([]domain.Document, error) {
	var documents []domain.Document
	err := r.db.WithContext(ctx).
		Where("related_to_type = ? AND related_to_id = ?", kind, id).
		Order("created_at ASC").
		Find(&documents).Error
	return documents, err
}

// GetByID retrieves a document by its ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uint) (*domain.Document, error) {
	var document domain.Document
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&document).Error
	if err != nil {
		return nil, err
	}
	return &document, nil
}

// Create creates a new document record in the database
func (r *DocumentRepository) Create(ctx context.Context, document *domain.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

// Update updates an existing document record in the database
func (r *DocumentRepository) Update(ctx context.Context, document *domain.Document) error {
	return r.db.WithContext(ctx).Save(document).Error
}

// Delete hard-deletes a document record. The stored file is removed
// separately by the service layer.
func (r *DocumentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Document{}, "id = ?", id).Error
}

package repository

import (
	"context"

	"github.com/startender/tender-api/internal/domain"
	"gorm.io/gorm"
)

// TenderRepository handles tender data access operations
type TenderRepository struct {
	db *gorm.DB
}

// NewTenderRepository creates a new tender repository instance
func NewTenderRepository(db *gorm.DB) *TenderRepository {
	return &TenderRepository{db: db}
}

// List returns all tenders ordered by creation time
func (r *TenderRepository) List(ctx context.Context) ([]domain.Tender, error) {
	var tenders []domain.Tender
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&tenders).Error
	return tenders, err
}

// GetByID retrieves a tender by its ID
func (r *TenderRepository) GetByID(ctx context.Context, id uint) (*domain.Tender, error) {
	var tender domain.Tender
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tender).Error
	if err != nil {
		return nil, err
	}
	return &tender, nil
}

// Create creates a new tender in the database
func (r *TenderRepository) Create(ctx context.Context, tender *domain.Tender) error {
	return r.db.WithContext(ctx).Create(tender).Error
}

// Update updates an existing tender in the database
func (r *TenderRepository) Update(ctx context.Context, tender *domain.Tender) error {
	return r.db.WithContext(ctx).Save(tender).Error
}

// Delete hard-deletes a tender
func (r *TenderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Tender{}, "id = ?", id).Error
}

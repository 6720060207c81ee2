package repository

import (
	"context"

	"github.com/startender/tender-api/internal/domain"
	"gorm.io/gorm"
)

// ActivityRepository handles activity data access. Activities are
// append-only; there are no update or delete operations.
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository instance
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// List returns all activities in chronological order
func (r *ActivityRepository) List(ctx context.Context) ([]domain.Activity, error) {
	var activities []domain.Activity
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&activities).Error
	return activities, err
}

// ListByRelated returns activities pointing at a given (kind, id) pair
func (r *ActivityRepository) ListByRelated(ctx context.Context, kind domain.RelatedKind, id uint) ([]domain.Activity, error) {
	var activities []domain.Activity
	err := r.db.WithContext(ctx).
		Where("related_to_type = ? AND related_to_id = ?", kind, id).
		Order("created_at ASC").
		Find(&activities).Error
	return activities, err
}

// GetByID retrieves an activity by its ID
func (r *ActivityRepository) GetByID(ctx context.Context, id uint) (*domain.Activity, error) {
	var activity domain.Activity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&activity).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// Create inserts a new activity entry
func (r *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

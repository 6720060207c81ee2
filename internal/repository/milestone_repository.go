package repository

import (
	"context"

	"github.com/startender/tender-api/internal/domain"
	"gorm.io/gorm"
)

// MilestoneRepository handles milestone data access operations
type MilestoneRepository struct {
	db *gorm.DB
}

// NewMilestoneRepository creates a new milestone repository instance
func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

// List returns all milestones ordered by creation time
func (r *MilestoneRepository) List(ctx context.Context) ([]domain.Milestone, error) {
	var milestones []domain.Milestone
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&milestones).Error
	return milestones, err
}

// ListByProject returns all milestones for a project, due date first
func (r *MilestoneRepository) ListByProject(ctx context.Context, projectID uint) ([]domain.Milestone, error) {
	var milestones []domain.Milestone
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("due_date ASC").
		Find(&milestones).Error
	return milestones, err
}

// GetByID retrieves a milestone by its ID
func (r *MilestoneRepository) GetByID(ctx context.Context, id uint) (*domain.Milestone, error) {
	var milestone domain.Milestone
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&milestone).Error
	if err != nil {
		return nil, err
	}
	return &milestone, nil
}

// Create creates a new milestone in the database
func (r *MilestoneRepository) Create(ctx context.Context, milestone *domain.Milestone) error {
	return r.db.WithContext(ctx).Create(milestone).Error
}

// Update updates an existing milestone in the database
func (r *MilestoneRepository) Update(ctx context.Context, milestone *domain.Milestone) error {
	return r.db.WithContext(ctx).Save(milestone).Error
}

// Delete hard-deletes a milestone
func (r *MilestoneRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Milestone{}, "id = ?", id).Error
}

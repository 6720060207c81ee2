package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/startender/tender-api/internal/domain"
	"github.com/startender/tender-api/internal/mapper"
	"github.com/startender/tender-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrMilestoneNotFound is returned when a milestone is not found
var ErrMilestoneNotFound = errors.New("milestone not found")

// MilestoneService handles milestone business logic. A milestone belongs
// to exactly one project, which must exist at creation time.
type MilestoneService struct {
	milestoneRepo *repository.MilestoneRepository
	projectRepo   *repository.ProjectRepository
	logger        *zap.Logger
}

// NewMilestoneService creates a new milestone service instance
func NewMilestoneService(
	milestoneRepo *repository.MilestoneRepository,
	projectRepo *repository.ProjectRepository,
	logger *zap.Logger,
) *MilestoneService {
	return &MilestoneService{
		milestoneRepo: milestoneRepo,
		projectRepo:   projectRepo,
		logger:        logger,
	}
}

// List returns all milestones
func (s *MilestoneService) List(ctx context.Context) ([]domain.MilestoneDTO, error) {
	milestones, err := s.milestoneRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}

	dtos := make([]domain.MilestoneDTO, len(milestones))
	for i, milestone := range milestones {
		dtos[i] = mapper.ToMilestoneDTO(&milestone)
	}
	return dtos, nil
}

// GetByID retrieves a milestone by ID
func (s *MilestoneService) GetByID(ctx context.Context, id uint) (*domain.MilestoneDTO, error) {
	milestone, err := s.milestoneRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("failed to get milestone: %w", err)
	}

	dto := mapper.ToMilestoneDTO(milestone)
	return &dto, nil
}

// Create creates a new milestone under an existing project
func (s *MilestoneService) Create(ctx context.Context, req *domain.CreateMilestoneRequest) (*domain.MilestoneDTO, error) {
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	status := req.Status
	if status == "" {
		status = domain.MilestoneStatusPending
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	dueDate, err := parseDatePtr(req.DueDate, "dueDate")
	if err != nil {
		return nil, err
	}
	completedDate, err := parseDatePtr(req.CompletedDate, "completedDate")
	if err != nil {
		return nil, err
	}

	milestone := &domain.Milestone{
		ProjectID:     req.ProjectID,
		Title:         req.Title,
		DueDate:       dueDate,
		CompletedDate: completedDate,
		Status:        status,
	}

	if err := s.milestoneRepo.Create(ctx, milestone); err != nil {
		return nil, fmt.Errorf("failed to create milestone: %w", err)
	}

	dto := mapper.ToMilestoneDTO(milestone)
	return &dto, nil
}

// Update replaces a milestone's fields. The owning project cannot be
// changed.
func (s *MilestoneService) Update(ctx context.Context, id uint, req *domain.UpdateMilestoneRequest) (*domain.MilestoneDTO, error) {
	milestone, err := s.milestoneRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("failed to get milestone: %w", err)
	}

	status := req.Status
	if status == "" {
		status = milestone.Status
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	dueDate, err := parseDatePtr(req.DueDate, "dueDate")
	if err != nil {
		return nil, err
	}
	completedDate, err := parseDatePtr(req.CompletedDate, "completedDate")
	if err != nil {
		return nil, err
	}

	milestone.Title = req.Title
	milestone.DueDate = dueDate
	milestone.CompletedDate = completedDate
	milestone.Status = status

	if err := s.milestoneRepo.Update(ctx, milestone); err != nil {
		return nil, fmt.Errorf("failed to update milestone: %w", err)
	}

	dto := mapper.ToMilestoneDTO(milestone)
	return &dto, nil
}

// Delete removes a milestone
func (s *MilestoneService) Delete(ctx context.Context, id uint) error {
	if _, err := s.milestoneRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMilestoneNotFound
		}
		return fmt.Errorf("failed to get milestone: %w", err)
	}

	if err := s.milestoneRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete milestone: %w", err)
	}

	return nil
}

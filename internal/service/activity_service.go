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

// ErrActivityNotFound is returned when an activity is not found
var ErrActivityNotFound = errors.New("activity not found")

// ActivityService handles the append-only activity feed. Activities are
// never updated or deleted.
type ActivityService struct {
	activityRepo *repository.ActivityRepository
	logger       *zap.Logger
}

// NewActivityService creates a new activity service instance
func NewActivityService(
	activityRepo *repository.ActivityRepository,
	logger *zap.Logger,
) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// List returns all activities in chronological order
func (s *ActivityService) List(ctx context.Context) ([]domain.ActivityDTO, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	dtos := make([]domain.ActivityDTO, len(activities))
	for i, activity := range activities {
		dtos[i] = mapper.ToActivityDTO(&activity)
	}
	return dtos, nil
}

// GetByID retrieves an activity by ID
func (s *ActivityService) GetByID(ctx context.Context, id uint) (*domain.ActivityDTO, error) {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	dto := mapper.ToActivityDTO(activity)
	return &dto, nil
}

// Create records a new activity entry
func (s *ActivityService) Create(ctx context.Context, req *domain.CreateActivityRequest) (*domain.ActivityDTO, error) {
	if err := validateRelatedRef(req.RelatedToID, req.RelatedToType); err != nil {
		return nil, err
	}

	activity := &domain.Activity{
		Title:         req.Title,
		Type:          req.Type,
		ActionType:    req.ActionType,
		PerformedByID: req.PerformedByID,
		RelatedToID:   req.RelatedToID,
		RelatedToType: req.RelatedToType,
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	dto := mapper.ToActivityDTO(activity)
	return &dto, nil
}

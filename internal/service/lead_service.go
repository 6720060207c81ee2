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

// ErrLeadNotFound is returned when a lead is not found
var ErrLeadNotFound = errors.New("lead not found")

// LeadService handles lead business logic
type LeadService struct {
	leadRepo     *repository.LeadRepository
	activityRepo *repository.ActivityRepository
	logger       *zap.Logger
}

// NewLeadService creates a new lead service instance
func NewLeadService(
	leadRepo *repository.LeadRepository,
	activityRepo *repository.ActivityRepository,
	logger *zap.Logger,
) *LeadService {
	return &LeadService{
		leadRepo:     leadRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// List returns all leads
func (s *LeadService) List(ctx context.Context) ([]domain.LeadDTO, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	dtos := make([]domain.LeadDTO, len(leads))
	for i, lead := range leads {
		dtos[i] = mapper.ToLeadDTO(&lead)
	}
	return dtos, nil
}

// GetByID retrieves a lead by ID
func (s *LeadService) GetByID(ctx context.Context, id uint) (*domain.LeadDTO, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	dto := mapper.ToLeadDTO(lead)
	return &dto, nil
}

// Create creates a new lead
func (s *LeadService) Create(ctx context.Context, req *domain.CreateLeadRequest) (*domain.LeadDTO, error) {
	source := req.Source
	if source == "" {
		source = domain.LeadSourceOther
	}
	if !source.IsValid() {
		return nil, fmt.Errorf("%w: source %s", ErrInvalidStatus, source)
	}

	status := req.Status
	if status == "" {
		status = domain.LeadStatusNew
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	lead := &domain.Lead{
		Name:         req.Name,
		Company:      req.Company,
		Email:        req.Email,
		Phone:        req.Phone,
		Source:       source,
		Status:       status,
		Value:        req.Value,
		AssignedToID: req.AssignedToID,
		Notes:        req.Notes,
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	s.logActivity(ctx, lead.ID, "create", fmt.Sprintf("Lead created: %s", lead.Name))

	dto := mapper.ToLeadDTO(lead)
	return &dto, nil
}

// Update replaces a lead's fields. Any status may follow any other; only
// enum membership is checked.
func (s *LeadService) Update(ctx context.Context, id uint, req *domain.UpdateLeadRequest) (*domain.LeadDTO, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	source := req.Source
	if source == "" {
		source = lead.Source
	}
	if !source.IsValid() {
		return nil, fmt.Errorf("%w: source %s", ErrInvalidStatus, source)
	}

	status := req.Status
	if status == "" {
		status = lead.Status
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	lead.Name = req.Name
	lead.Company = req.Company
	lead.Email = req.Email
	lead.Phone = req.Phone
	lead.Source = source
	lead.Status = status
	lead.Value = req.Value
	lead.AssignedToID = req.AssignedToID
	lead.Notes = req.Notes

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	s.logActivity(ctx, lead.ID, "update", fmt.Sprintf("Lead updated: %s", lead.Name))

	dto := mapper.ToLeadDTO(lead)
	return &dto, nil
}

// Delete removes a lead
func (s *LeadService) Delete(ctx context.Context, id uint) error {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLeadNotFound
		}
		return fmt.Errorf("failed to get lead: %w", err)
	}

	if err := s.leadRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	s.logActivity(ctx, id, "delete", fmt.Sprintf("Lead deleted: %s", lead.Name))
	return nil
}

// logActivity records an activity entry; failures are logged, not returned
func (s *LeadService) logActivity(ctx context.Context, leadID uint, actionType, title string) {
	kind := domain.RelatedKindLead
	activity := &domain.Activity{
		Title:         title,
		Type:          "lead",
		ActionType:    actionType,
		RelatedToID:   &leadID,
		RelatedToType: &kind,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		s.logger.Warn("failed to log lead activity",
			zap.Uint("lead_id", leadID),
			zap.Error(err))
	}
}

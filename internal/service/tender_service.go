package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/startender/tender-api/internal/domain"
	"github.com/startender/tender-api/internal/mapper"
	"github.com/startender/tender-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrTenderNotFound is returned when a tender is not found
var ErrTenderNotFound = errors.New("tender not found")

// TenderService handles tender business logic
type TenderService struct {
	tenderRepo   *repository.TenderRepository
	activityRepo *repository.ActivityRepository
	logger       *zap.Logger
}

// NewTenderService creates a new tender service instance
func NewTenderService(
	tenderRepo *repository.TenderRepository,
	activityRepo *repository.ActivityRepository,
	logger *zap.Logger,
) *TenderService {
	return &TenderService{
		tenderRepo:   tenderRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// List returns all tenders
func (s *TenderService) List(ctx context.Context) ([]domain.TenderDTO, error) {
	tenders, err := s.tenderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenders: %w", err)
	}

	dtos := make([]domain.TenderDTO, len(tenders))
	for i, tender := range tenders {
		dtos[i] = mapper.ToTenderDTO(&tender)
	}
	return dtos, nil
}

// GetByID retrieves a tender by ID
func (s *TenderService) GetByID(ctx context.Context, id uint) (*domain.TenderDTO, error) {
	tender, err := s.tenderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenderNotFound
		}
		return nil, fmt.Errorf("failed to get tender: %w", err)
	}

	dto := mapper.ToTenderDTO(tender)
	return &dto, nil
}

// Create creates a new tender
func (s *TenderService) Create(ctx context.Context, req *domain.CreateTenderRequest) (*domain.TenderDTO, error) {
	status := req.Status
	if status == "" {
		status = domain.TenderStatusDraft
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	deadline, err := parseDatePtr(req.Deadline, "deadline")
	if err != nil {
		return nil, err
	}
	submissionDate, err := parseDatePtr(req.SubmissionDate, "submissionDate")
	if err != nil {
		return nil, err
	}

	tender := &domain.Tender{
		Title:          req.Title,
		Reference:      req.Reference,
		Client:         req.Client,
		Value:          req.Value,
		Deadline:       deadline,
		SubmissionDate: submissionDate,
		Status:         status,
		Probability:    req.Probability,
		Requirements:   pq.StringArray(req.Requirements),
	}

	if err := s.tenderRepo.Create(ctx, tender); err != nil {
		return nil, fmt.Errorf("failed to create tender: %w", err)
	}

	s.logActivity(ctx, tender.ID, "create", fmt.Sprintf("Tender created: %s", tender.Title))

	dto := mapper.ToTenderDTO(tender)
	return &dto, nil
}

// Update replaces a tender's fields. Status changes are unrestricted
// within the enum; a tender can move from any status to any other.
func (s *TenderService) Update(ctx context.Context, id uint, req *domain.UpdateTenderRequest) (*domain.TenderDTO, error) {
	tender, err := s.tenderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenderNotFound
		}
		return nil, fmt.Errorf("failed to get tender: %w", err)
	}

	status := req.Status
	if status == "" {
		status = tender.Status
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	deadline, err := parseDatePtr(req.Deadline, "deadline")
	if err != nil {
		return nil, err
	}
	submissionDate, err := parseDatePtr(req.SubmissionDate, "submissionDate")
	if err != nil {
		return nil, err
	}

	tender.Title = req.Title
	tender.Reference = req.Reference
	tender.Client = req.Client
	tender.Value = req.Value
	tender.Deadline = deadline
	tender.SubmissionDate = submissionDate
	tender.Status = status
	tender.Probability = req.Probability
	tender.Requirements = pq.StringArray(req.Requirements)

	if err := s.tenderRepo.Update(ctx, tender); err != nil {
		return nil, fmt.Errorf("failed to update tender: %w", err)
	}

	s.logActivity(ctx, tender.ID, "update", fmt.Sprintf("Tender updated: %s", tender.Title))

	dto := mapper.ToTenderDTO(tender)
	return &dto, nil
}

// Delete removes a tender
func (s *TenderService) Delete(ctx context.Context, id uint) error {
	tender, err := s.tenderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTenderNotFound
		}
		return fmt.Errorf("failed to get tender: %w", err)
	}

	if err := s.tenderRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tender: %w", err)
	}

	s.logActivity(ctx, id, "delete", fmt.Sprintf("Tender deleted: %s", tender.Title))
	return nil
}

func (s *TenderService) logActivity(ctx context.Context, tenderID uint, actionType, title string) {
	kind := domain.RelatedKindTender
	activity := &domain.Activity{
		Title:         title,
		Type:          "tender",
		ActionType:    actionType,
		RelatedToID:   &tenderID,
		RelatedToType: &kind,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		s.logger.Warn("failed to log tender activity",
			zap.Uint("tender_id", tenderID),
			zap.Error(err))
	}
}

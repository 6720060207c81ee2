package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/startender/tender-api/internal/domain"
	"github.com/startender/tender-api/internal/mapper"
	"github.com/startender/tender-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrAuditLogNotFound is returned when an audit log entry is not found
var ErrAuditLogNotFound = errors.New("audit log not found")

// AuditLogService handles the append-only audit trail. Each entry gets a
// server-generated logId, distinct from the integer primary key, so that
// entries stay uniquely addressable across exports and merges.
type AuditLogService struct {
	auditLogRepo *repository.AuditLogRepository
	logger       *zap.Logger
}

// NewAuditLogService creates a new audit log service instance
func NewAuditLogService(
	auditLogRepo *repository.AuditLogRepository,
	logger *zap.Logger,
) *AuditLogService {
	return &AuditLogService{
		auditLogRepo: auditLogRepo,
		logger:       logger,
	}
}

// List returns all audit logs in ascending timestamp order
func (s *AuditLogService) List(ctx context.Context) ([]domain.AuditLogDTO, error) {
	logs, err := s.auditLogRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	dtos := make([]domain.AuditLogDTO, len(logs))
	for i, log := range logs {
		dtos[i] = mapper.ToAuditLogDTO(&log)
	}
	return dtos, nil
}

// ListByUser returns a user's audit logs in ascending timestamp order.
// An unknown user yields an empty list, not an error.
func (s *AuditLogService) ListByUser(ctx context.Context, userID uint) ([]domain.AuditLogDTO, error) {
	logs, err := s.auditLogRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	dtos := make([]domain.AuditLogDTO, len(logs))
	for i, log := range logs {
		dtos[i] = mapper.ToAuditLogDTO(&log)
	}
	return dtos, nil
}

// GetByID retrieves an audit log entry by its integer ID
func (s *AuditLogService) GetByID(ctx context.Context, id uint) (*domain.AuditLogDTO, error) {
	log, err := s.auditLogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuditLogNotFound
		}
		return nil, fmt.Errorf("failed to get audit log: %w", err)
	}

	dto := mapper.ToAuditLogDTO(log)
	return &dto, nil
}

// Create records a new audit log entry with a generated logId and a
// server-side timestamp
func (s *AuditLogService) Create(ctx context.Context, req *domain.CreateAuditLogRequest) (*domain.AuditLogDTO, error) {
	log := &domain.AuditLog{
		LogID:       uuid.New().String(),
		UserID:      req.UserID,
		Action:      req.Action,
		ResourceID:  req.ResourceID,
		Description: req.Description,
		Timestamp:   time.Now().UTC(),
	}

	if err := s.auditLogRepo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to create audit log: %w", err)
	}

	dto := mapper.ToAuditLogDTO(log)
	return &dto, nil
}

// CleanupOlderThan removes entries past the retention window. Called by
// the scheduled retention job.
func (s *AuditLogService) CleanupOlderThan(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	removed, err := s.auditLogRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up audit logs: %w", err)
	}

	if removed > 0 {
		s.logger.Info("audit log retention cleanup",
			zap.Int64("removed", removed),
			zap.Time("cutoff", cutoff))
	}
	return removed, nil
}

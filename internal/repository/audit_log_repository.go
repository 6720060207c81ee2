package repository

import (
	"context"
	"time"

	"github.com/startender/tender-api/internal/domain"
	"gorm.io/gorm"
)

// AuditLogRepository handles audit log data access. Entries are
// append-only; there are no update or delete operations on the API
// surface, only the retention cleanup.
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create inserts a new audit log entry
func (r *AuditLogRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// List retrieves all audit logs in chronological order
func (r *AuditLogRepository) List(ctx context.Context) ([]domain.AuditLog, error) {
	var logs []domain.AuditLog
	err := r.db.WithContext(ctx).Order("timestamp ASC").Find(&logs).Error
	return logs, err
}

// ListByUser retrieves audit logs for a specific user in chronological order
func (r *AuditLogRepository) ListByUser(ctx context.Context, userID uint) ([]domain.AuditLog, error) {
	var logs []domain.AuditLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC").
		Find(&logs).Error
	return logs, err
}

// GetByID retrieves an audit log by ID
func (r *AuditLogRepository) GetByID(ctx context.Context, id uint) (*domain.AuditLog, error) {
	var log domain.AuditLog
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// DeleteOlderThan removes audit logs older than a cutoff. Used only by
// the scheduled retention job.
func (r *AuditLogRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("timestamp < ?", before).
		Delete(&domain.AuditLog{})
	return result.RowsAffected, result.Error
}

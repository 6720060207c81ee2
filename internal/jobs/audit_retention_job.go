package jobs

import (
	"context"
	"time"

	"github.com/startender/tender-api/internal/service"
	"go.uber.org/zap"
)

// auditRetentionJobName identifies the retention job in the scheduler
const auditRetentionJobName = "audit_log_retention"

// RegisterAuditRetentionJob schedules periodic deletion of audit log
// entries older than the retention window.
func RegisterAuditRetentionJob(
	scheduler *Scheduler,
	auditLogService *service.AuditLogService,
	logger *zap.Logger,
	cronExpr string,
	retentionDays int,
	timeout time.Duration,
) error {
	return scheduler.AddJob(auditRetentionJobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		removed, err := auditLogService.CleanupOlderThan(ctx, retentionDays)
		if err != nil {
			logger.Error("audit log retention job failed", zap.Error(err))
			return
		}

		logger.Info("audit log retention job finished",
			zap.Int64("removed", removed),
			zap.Int("retention_days", retentionDays))
	})
}

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/startender/tender-api/internal/domain"
	"github.com/startender/tender-api/internal/repository"
	"github.com/startender/tender-api/internal/service"
	"github.com/startender/tender-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func createTestAuditLogService(t *testing.T) (*service.AuditLogService, *gorm.DB) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewAuditLogRepository(db)
	svc := service.NewAuditLogService(repo, zap.NewNop())
	return svc, db
}

func TestAuditLogService_Create(t *testing.T) {
	svc, _ := createTestAuditLogService(t)
	ctx := context.Background()

	userID := uint(7)
	dto, err := svc.Create(ctx, &domain.CreateAuditLogRequest{
		UserID:      &userID,
		Action:      "tender.update",
		ResourceID:  "42",
		Description: "Changed status to submitted",
	})
	require.NoError(t, err)

	assert.NotZero(t, dto.ID)
	assert.NotEmpty(t, dto.LogID)
	assert.NotEmpty(t, dto.Timestamp)
	require.NotNil(t, dto.UserID)
	assert.Equal(t, userID, *dto.UserID)
}

func TestAuditLogService_Create_UniqueLogIDs(t *testing.T) {
	svc, _ := createTestAuditLogService(t)
	ctx := context.Background()

	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		dto, err := svc.Create(ctx, &domain.CreateAuditLogRequest{
			Action: "user.login",
		})
		require.NoError(t, err)
		require.NotEmpty(t, dto.LogID)
		assert.False(t, seen[dto.LogID], "logId should be unique: %s", dto.LogID)
		seen[dto.LogID] = true
	}

	assert.Len(t, seen, 1000)
}

func TestAuditLogService_List_AscendingTimestampOrder(t *testing.T) {
	svc, db := createTestAuditLogService(t)
	ctx := context.Background()

	// Insert with explicit descending timestamps
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := db.Create(&domain.AuditLog{
			LogID:     "log-" + string(rune('a'+i)),
			Action:    "user.login",
			Timestamp: base.Add(time.Duration(-i) * time.Hour),
		}).Error
		require.NoError(t, err)
	}

	logs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 5)

	for i := 1; i < len(logs); i++ {
		assert.LessOrEqual(t, logs[i-1].Timestamp, logs[i].Timestamp,
			"timestamps should be ascending")
	}
}

func TestAuditLogService_ListByUser(t *testing.T) {
	svc, _ := createTestAuditLogService(t)
	ctx := context.Background()

	userA := uint(1)
	userB := uint(2)
	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, &domain.CreateAuditLogRequest{UserID: &userA, Action: "a"})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, &domain.CreateAuditLogRequest{UserID: &userB, Action: "b"})
	require.NoError(t, err)

	logs, err := svc.ListByUser(ctx, userA)
	require.NoError(t, err)
	assert.Len(t, logs, 3)
}

func TestAuditLogService_ListByUser_UnknownUserIsEmpty(t *testing.T) {
	svc, _ := createTestAuditLogService(t)

	logs, err := svc.ListByUser(context.Background(), 9999)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestAuditLogService_CleanupOlderThan(t *testing.T) {
	svc, db := createTestAuditLogService(t)
	ctx := context.Background()

	now := time.Now().UTC()

	// Old entries past the window
	for i := 0; i < 3; i++ {
		err := db.Create(&domain.AuditLog{
			LogID:     "old-" + string(rune('a'+i)),
			Action:    "user.login",
			Timestamp: now.AddDate(0, 0, -60),
		}).Error
		require.NoError(t, err)
	}
	// Recent entries
	for i := 0; i < 2; i++ {
		err := db.Create(&domain.AuditLog{
			LogID:     "new-" + string(rune('a'+i)),
			Action:    "user.login",
			Timestamp: now,
		}).Error
		require.NoError(t, err)
	}

	removed, err := svc.CleanupOlderThan(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	var remaining int64
	db.Model(&domain.AuditLog{}).Count(&remaining)
	assert.Equal(t, int64(2), remaining)
}

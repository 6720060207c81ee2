package service_test

import (
	"context"
	"testing"

	"github.com/startender/tender-api/internal/domain"
	"github.com/startender/tender-api/internal/repository"
	"github.com/startender/tender-api/internal/service"
	"github.com/startender/tender-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func createTestTenderService(t *testing.T) *service.TenderService {
	db := testutil.SetupTestDB(t)
	tenderRepo := repository.NewTenderRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	return service.NewTenderService(tenderRepo, activityRepo, zap.NewNop())
}

func TestTenderService_CreateAndGet(t *testing.T) {
	svc := createTestTenderService(t)
	ctx := context.Background()

	deadline := "2026-03-01"
	created, err := svc.Create(ctx, &domain.CreateTenderRequest{
		Title:       "Road Works Tender",
		Reference:   "RT-2026-001",
		Client:      "City Council",
		Value:       1500000,
		Deadline:    &deadline,
		Status:      domain.TenderStatusSubmitted,
		Probability: 60,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.TenderStatusSubmitted, created.Status)
	require.NotNil(t, created.Deadline)
	assert.Contains(t, *created.Deadline, "2026-03-01")

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "RT-2026-001", fetched.Reference)
	assert.Equal(t, 60, fetched.Probability)
}

func TestTenderService_Create_DefaultsToDraft(t *testing.T) {
	svc := createTestTenderService(t)

	created, err := svc.Create(context.Background(), &domain.CreateTenderRequest{
		Title:     "Minimal Tender",
		Reference: "MT-1",
		Client:    "Client",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TenderStatusDraft, created.Status)
}

func TestTenderService_Create_RequirementsNeverNull(t *testing.T) {
	svc := createTestTenderService(t)

	created, err := svc.Create(context.Background(), &domain.CreateTenderRequest{
		Title:     "No Requirements",
		Reference: "NR-1",
		Client:    "Client",
	})
	require.NoError(t, err)
	assert.NotNil(t, created.Requirements)
	assert.Empty(t, created.Requirements)
}

func TestTenderService_Create_InvalidDate(t *testing.T) {
	svc := createTestTenderService(t)

	bad := "not-a-date"
	_, err := svc.Create(context.Background(), &domain.CreateTenderRequest{
		Title:     "Bad Date",
		Reference: "BD-1",
		Client:    "Client",
		Deadline:  &bad,
	})
	assert.ErrorIs(t, err, service.ErrInvalidDate)
}

func TestTenderService_Create_InvalidStatus(t *testing.T) {
	svc := createTestTenderService(t)

	_, err := svc.Create(context.Background(), &domain.CreateTenderRequest{
		Title:     "Bad Status",
		Reference: "BS-1",
		Client:    "Client",
		Status:    domain.TenderStatus("pending"),
	})
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestTenderService_Update_Idempotent(t *testing.T) {
	svc := createTestTenderService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.CreateTenderRequest{
		Title:     "Stable Tender",
		Reference: "ST-1",
		Client:    "Client",
		Value:     100,
	})
	require.NoError(t, err)

	req := &domain.UpdateTenderRequest{
		Title:     "Stable Tender",
		Reference: "ST-1",
		Client:    "Client",
		Value:     100,
		Status:    domain.TenderStatusDraft,
	}

	first, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	second, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)

	// Same payload twice leaves the same resource state
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Reference, second.Reference)
	assert.Equal(t, first.Value, second.Value)
	assert.Equal(t, first.Status, second.Status)
}

func TestTenderService_Update_StatusMovesFreely(t *testing.T) {
	svc := createTestTenderService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.CreateTenderRequest{
		Title:     "Moving Tender",
		Reference: "MV-1",
		Client:    "Client",
		Status:    domain.TenderStatusWon,
	})
	require.NoError(t, err)

	// Won back to draft is allowed; there is no transition machine
	updated, err := svc.Update(ctx, created.ID, &domain.UpdateTenderRequest{
		Title:     "Moving Tender",
		Reference: "MV-1",
		Client:    "Client",
		Status:    domain.TenderStatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TenderStatusDraft, updated.Status)
}

func TestTenderService_DeleteThenGet(t *testing.T) {
	svc := createTestTenderService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.CreateTenderRequest{
		Title:     "Short Lived",
		Reference: "SL-1",
		Client:    "Client",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrTenderNotFound)
}

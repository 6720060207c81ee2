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
	"gorm.io/gorm"
)

func createTestProjectServices(t *testing.T) (*service.ProjectService, *service.MilestoneService, *gorm.DB) {
	db := testutil.SetupTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	projectService := service.NewProjectService(projectRepo, milestoneRepo, activityRepo, zap.NewNop())
	milestoneService := service.NewMilestoneService(milestoneRepo, projectRepo, zap.NewNop())
	return projectService, milestoneService, db
}

func TestProjectService_CreateAndGet(t *testing.T) {
	svc, _, _ := createTestProjectServices(t)
	ctx := context.Background()

	start := "2026-01-15"
	created, err := svc.Create(ctx, &domain.CreateProjectRequest{
		Name:      "Harbor Build",
		Client:    "Port Authority",
		Value:     5000000,
		StartDate: &start,
		Progress:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusPlanning, created.Status)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Harbor Build", fetched.Name)
	require.NotNil(t, fetched.StartDate)
	assert.Contains(t, *fetched.StartDate, "2026-01-15")
}

func TestProjectService_Create_DanglingTenderIDAllowed(t *testing.T) {
	svc, _, _ := createTestProjectServices(t)

	missingTender := uint(4242)
	created, err := svc.Create(context.Background(), &domain.CreateProjectRequest{
		Name:     "Orphan Reference",
		Client:   "Client",
		TenderID: &missingTender,
	})
	require.NoError(t, err)
	require.NotNil(t, created.TenderID)
	assert.Equal(t, missingTender, *created.TenderID)
}

func TestProjectService_ListMilestones_OrderedByDueDate(t *testing.T) {
	projectService, milestoneService, _ := createTestProjectServices(t)
	ctx := context.Background()

	project, err := projectService.Create(ctx, &domain.CreateProjectRequest{
		Name:   "Phased Build",
		Client: "Client",
	})
	require.NoError(t, err)

	// Insert out of order
	dates := map[string]string{
		"Phase 3": "2026-09-01",
		"Phase 1": "2026-03-01",
		"Phase 2": "2026-06-01",
	}
	for title, due := range dates {
		d := due
		_, err := milestoneService.Create(ctx, &domain.CreateMilestoneRequest{
			ProjectID: project.ID,
			Title:     title,
			DueDate:   &d,
		})
		require.NoError(t, err)
	}

	milestones, err := projectService.ListMilestones(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, milestones, 3)
	assert.Equal(t, "Phase 1", milestones[0].Title)
	assert.Equal(t, "Phase 2", milestones[1].Title)
	assert.Equal(t, "Phase 3", milestones[2].Title)
}

func TestProjectService_ListMilestones_ProjectNotFound(t *testing.T) {
	projectService, _, _ := createTestProjectServices(t)

	_, err := projectService.ListMilestones(context.Background(), 9999)
	assert.ErrorIs(t, err, service.ErrProjectNotFound)
}

func TestProjectService_DeleteThenGet(t *testing.T) {
	svc, _, _ := createTestProjectServices(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.CreateProjectRequest{
		Name:   "Short Lived",
		Client: "Client",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrProjectNotFound)
}

func TestMilestoneService_Create_RequiresExistingProject(t *testing.T) {
	_, milestoneService, _ := createTestProjectServices(t)

	_, err := milestoneService.Create(context.Background(), &domain.CreateMilestoneRequest{
		ProjectID: 9999,
		Title:     "Orphan Milestone",
	})
	assert.ErrorIs(t, err, service.ErrProjectNotFound)
}

func TestMilestoneService_Create_DefaultsToPending(t *testing.T) {
	projectService, milestoneService, _ := createTestProjectServices(t)
	ctx := context.Background()

	project, err := projectService.Create(ctx, &domain.CreateProjectRequest{
		Name:   "Parent",
		Client: "Client",
	})
	require.NoError(t, err)

	created, err := milestoneService.Create(ctx, &domain.CreateMilestoneRequest{
		ProjectID: project.ID,
		Title:     "Kickoff",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MilestoneStatusPending, created.Status)
	assert.Equal(t, project.ID, created.ProjectID)
}

func TestMilestoneService_Update_KeepsProject(t *testing.T) {
	projectService, milestoneService, _ := createTestProjectServices(t)
	ctx := context.Background()

	project, err := projectService.Create(ctx, &domain.CreateProjectRequest{
		Name:   "Parent",
		Client: "Client",
	})
	require.NoError(t, err)

	created, err := milestoneService.Create(ctx, &domain.CreateMilestoneRequest{
		ProjectID: project.ID,
		Title:     "Kickoff",
	})
	require.NoError(t, err)

	completed := "2026-04-01"
	updated, err := milestoneService.Update(ctx, created.ID, &domain.UpdateMilestoneRequest{
		Title:         "Kickoff Done",
		CompletedDate: &completed,
		Status:        domain.MilestoneStatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, "Kickoff Done", updated.Title)
	assert.Equal(t, domain.MilestoneStatusCompleted, updated.Status)
	assert.Equal(t, project.ID, updated.ProjectID)
}

func TestMilestoneService_GetByID_NotFound(t *testing.T) {
	_, milestoneService, _ := createTestProjectServices(t)

	_, err := milestoneService.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, service.ErrMilestoneNotFound)
}

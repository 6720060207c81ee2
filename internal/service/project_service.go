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

// ErrProjectNotFound is returned when a project is not found
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo   *repository.ProjectRepository
	milestoneRepo *repository.MilestoneRepository
	activityRepo  *repository.ActivityRepository
	logger        *zap.Logger
}

// NewProjectService creates a new project service instance
func NewProjectService(
	projectRepo *repository.ProjectRepository,
	milestoneRepo *repository.MilestoneRepository,
	activityRepo *repository.ActivityRepository,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo:   projectRepo,
		milestoneRepo: milestoneRepo,
		activityRepo:  activityRepo,
		logger:        logger,
	}
}

// List returns all projects
func (s *ProjectService) List(ctx context.Context) ([]domain.ProjectDTO, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	dtos := make([]domain.ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = mapper.ToProjectDTO(&project)
	}
	return dtos, nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(ctx context.Context, id uint) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	dto := mapper.ToProjectDTO(project)
	return &dto, nil
}

// ListMilestones returns a project's milestones ordered by due date
func (s *ProjectService) ListMilestones(ctx context.Context, projectID uint) ([]domain.MilestoneDTO, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	milestones, err := s.milestoneRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}

	dtos := make([]domain.MilestoneDTO, len(milestones))
	for i, milestone := range milestones {
		dtos[i] = mapper.ToMilestoneDTO(&milestone)
	}
	return dtos, nil
}

// Create creates a new project. TenderID is stored as given; no
// existence check is made against the tenders table.
func (s *ProjectService) Create(ctx context.Context, req *domain.CreateProjectRequest) (*domain.ProjectDTO, error) {
	status := req.Status
	if status == "" {
		status = domain.ProjectStatusPlanning
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	startDate, err := parseDatePtr(req.StartDate, "startDate")
	if err != nil {
		return nil, err
	}
	endDate, err := parseDatePtr(req.EndDate, "endDate")
	if err != nil {
		return nil, err
	}

	project := &domain.Project{
		Name:      req.Name,
		Client:    req.Client,
		Value:     req.Value,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    status,
		Progress:  req.Progress,
		TenderID:  req.TenderID,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logActivity(ctx, project.ID, "create", fmt.Sprintf("Project created: %s", project.Name))

	dto := mapper.ToProjectDTO(project)
	return &dto, nil
}

// Update replaces a project's fields
func (s *ProjectService) Update(ctx context.Context, id uint, req *domain.UpdateProjectRequest) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	status := req.Status
	if status == "" {
		status = project.Status
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	startDate, err := parseDatePtr(req.StartDate, "startDate")
	if err != nil {
		return nil, err
	}
	endDate, err := parseDatePtr(req.EndDate, "endDate")
	if err != nil {
		return nil, err
	}

	project.Name = req.Name
	project.Client = req.Client
	project.Value = req.Value
	project.StartDate = startDate
	project.EndDate = endDate
	project.Status = status
	project.Progress = req.Progress
	project.TenderID = req.TenderID

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.logActivity(ctx, project.ID, "update", fmt.Sprintf("Project updated: %s", project.Name))

	dto := mapper.ToProjectDTO(project)
	return &dto, nil
}

// Delete removes a project; its milestones cascade
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.logActivity(ctx, id, "delete", fmt.Sprintf("Project deleted: %s", project.Name))
	return nil
}

func (s *ProjectService) logActivity(ctx context.Context, projectID uint, actionType, title string) {
	kind := domain.RelatedKindProject
	activity := &domain.Activity{
		Title:         title,
		Type:          "project",
		ActionType:    actionType,
		RelatedToID:   &projectID,
		RelatedToType: &kind,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		s.logger.Warn("failed to log project activity",
			zap.Uint("project_id", projectID),
			zap.Error(err))
	}
}

package usecase

import (
	"fmt"

	"dev-portfolio/internal/entity"
	"dev-portfolio/internal/repo/persistent"
	"dev-portfolio/pkg/logger"
)

type ProjectUseCase interface {
	CreateProject(project *entity.Project) (*entity.Project, error)
	ListProjects() ([]*entity.Project, error)
	DeleteProject(projectID int64) error
}

type projectUseCase struct {
	projectRepo persistent.ProjectRepository
	logger      *logger.Logger
}

func NewProjectUseCase(projectRepo persistent.ProjectRepository, logger *logger.Logger) ProjectUseCase {
	return &projectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *projectUseCase) CreateProject(project *entity.Project) (*entity.Project, error) {
	if err := uc.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	uc.logger.Info("Added project %d: %s", project.ID, project.Title)
	return project, nil
}

func (uc *projectUseCase) ListProjects() ([]*entity.Project, error) {
	return uc.projectRepo.List()
}

func (uc *projectUseCase) DeleteProject(projectID int64) error {
	if err := uc.projectRepo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

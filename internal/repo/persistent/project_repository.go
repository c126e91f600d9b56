package persistent

import (
	"dev-portfolio/internal/entity"
	"dev-portfolio/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(project *entity.Project) error
	List() ([]*entity.Project, error)
	Delete(id int64) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *entity.Project) error {
	projectModel := ToProjectModel(project)
	if err := r.db.Create(projectModel).Error; err != nil {
		return err
	}

	*project = *ToProjectEntity(projectModel)
	return nil
}

func (r *projectRepository) List() ([]*entity.Project, error) {
	var projectModels []model.ProjectModel
	if err := r.db.
		Order("created_at DESC, id DESC").
		Find(&projectModels).Error; err != nil {
		return nil, err
	}

	projects := make([]*entity.Project, len(projectModels))
	for i := range projectModels {
		projects[i] = ToProjectEntity(&projectModels[i])
	}
	return projects, nil
}

// Delete is idempotent: removing a missing id succeeds.
func (r *projectRepository) Delete(id int64) error {
	return r.db.Delete(&model.ProjectModel{}, id).Error
}

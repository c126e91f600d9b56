package http

import (
	"net/http"

	"dev-portfolio/internal/entity"
	"dev-portfolio/internal/usecase"
	"dev-portfolio/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUseCase usecase.ProjectUseCase
	logger         *logger.Logger
}

func NewProjectHandler(projectUseCase usecase.ProjectUseCase, logger *logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
		logger:         logger,
	}
}

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	ImageURL    string `json:"image_url"`
	VideoURL    string `json:"video_url"`
	LiveURL     string `json:"live_url"`
	RepoURL     string `json:"repo_url"`
}

// ListProjects godoc
// @Summary      List projects
// @Description  Get all portfolio projects, newest first
// @Tags         projects
// @Produce      json
// @Success      200  {array}  entity.Project
// @Failure      500  {object}  map[string]string
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectUseCase.ListProjects()
	if err != nil {
		h.logger.Error("Failed to list projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject godoc
// @Summary      Add a project
// @Description  Create a new portfolio project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body CreateProjectRequest true "Project fields"
// @Success      201  {object}  map[string]int64
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectUseCase.CreateProject(&entity.Project{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		LiveURL:     req.LiveURL,
		RepoURL:     req.RepoURL,
	})
	if err != nil {
		h.logger.Error("Failed to create project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": project.ID})
}

// DeleteProject godoc
// @Summary      Delete a project
// @Description  Delete a portfolio project. Deleting a missing project still succeeds.
// @Tags         projects
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	if err := h.projectUseCase.DeleteProject(projectID); err != nil {
		h.logger.Error("Failed to delete project %d: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// ProjectHandler serves the /api/projects routes.
type ProjectHandler struct {
	service project.Service
}

func NewProjectHandler(service project.Service) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /api/projects. Public.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list projects", err)
		response.InternalServerError(c, "Failed to fetch projects")
		return
	}

	response.JSON(c, http.StatusOK, projects)
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req project.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err, "Failed to create project")
		return
	}

	response.JSON(c, http.StatusCreated, p)
}

// Update handles PUT /api/projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Project not found")
		return
	}

	var req project.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err, "Failed to update project")
		return
	}

	response.JSON(c, http.StatusOK, p)
}

// Delete handles DELETE /api/projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Project not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err, "Failed to delete project")
		return
	}

	response.Message(c, http.StatusOK, "Project deleted successfully")
}

func (h *ProjectHandler) handleError(c *gin.Context, err error, fallback string) {
	if _, ok := err.(validation.Errors); ok {
		response.BadRequest(c, err.Error())
		return
	}

	if status := project.ToHTTPStatus(err); status != http.StatusInternalServerError {
		response.Message(c, status, err.Error())
		return
	}

	logger.Error("project request failed", err)
	response.InternalServerError(c, fallback)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// SkillHandler serves the /api/skills routes.
type SkillHandler struct {
	service skill.Service
}

func NewSkillHandler(service skill.Service) *SkillHandler {
	return &SkillHandler{service: service}
}

// List handles GET /api/skills. Public.
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list skills", err)
		response.InternalServerError(c, "Failed to fetch skills")
		return
	}

	response.JSON(c, http.StatusOK, skills)
}

// Create handles POST /api/skills.
func (h *SkillHandler) Create(c *gin.Context) {
	var req skill.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	s, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if _, ok := err.(validation.Errors); ok {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("failed to create skill", err)
		response.InternalServerError(c, "Failed to create skill")
		return
	}

	response.JSON(c, http.StatusCreated, s)
}

// Delete handles DELETE /api/skills/:id.
func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Skill not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if status := skill.ToHTTPStatus(err); status != http.StatusInternalServerError {
			response.Message(c, status, err.Error())
			return
		}
		logger.Error("failed to delete skill", err)
		response.InternalServerError(c, "Failed to delete skill")
		return
	}

	response.Message(c, http.StatusOK, "Skill deleted successfully")
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/experience"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// ExperienceHandler serves the /api/experience routes.
type ExperienceHandler struct {
	service experience.Service
}

func NewExperienceHandler(service experience.Service) *ExperienceHandler {
	return &ExperienceHandler{service: service}
}

// List handles GET /api/experience. Public.
func (h *ExperienceHandler) List(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list experience", err)
		response.InternalServerError(c, "Failed to fetch experience")
		return
	}

	response.JSON(c, http.StatusOK, entries)
}

// Create handles POST /api/experience.
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req experience.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	e, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err, "Failed to create experience")
		return
	}

	response.JSON(c, http.StatusCreated, e)
}

// Update handles PUT /api/experience/:id.
func (h *ExperienceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Experience not found")
		return
	}

	var req experience.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	e, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err, "Failed to update experience")
		return
	}

	response.JSON(c, http.StatusOK, e)
}

// Delete handles DELETE /api/experience/:id.
func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Experience not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err, "Failed to delete experience")
		return
	}

	response.Message(c, http.StatusOK, "Experience deleted successfully")
}

func (h *ExperienceHandler) handleError(c *gin.Context, err error, fallback string) {
	if _, ok := err.(validation.Errors); ok {
		response.BadRequest(c, err.Error())
		return
	}

	if status := experience.ToHTTPStatus(err); status != http.StatusInternalServerError {
		response.Message(c, status, err.Error())
		return
	}

	logger.Error("experience request failed", err)
	response.InternalServerError(c, fallback)
}

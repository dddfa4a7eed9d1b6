package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/profile"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// ProfileHandler serves the /api/profile routes.
type ProfileHandler struct {
	service profile.Service
}

func NewProfileHandler(service profile.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /api/profile. Public.
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			response.NotFound(c, "Profile not found")
			return
		}
		logger.Error("failed to fetch profile", err)
		response.InternalServerError(c, "Failed to fetch profile")
		return
	}

	response.JSON(c, http.StatusOK, p)
}

// Update handles PUT /api/profile. Requires an authenticated session.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req profile.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		if _, ok := err.(validation.Errors); ok {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("failed to update profile", err)
		response.InternalServerError(c, "Failed to update profile")
		return
	}

	response.JSON(c, http.StatusOK, p)
}

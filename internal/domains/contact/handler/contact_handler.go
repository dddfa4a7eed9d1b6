package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// ContactHandler serves POST /api/contact.
type ContactHandler struct {
	service contact.Service
}

func NewContactHandler(service contact.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// Send handles POST /api/contact. Public; no session required.
func (h *ContactHandler) Send(c *gin.Context) {
	var req contact.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name, email, and message are required")
		return
	}

	if err := h.service.Send(c.Request.Context(), &req); err != nil {
		if _, ok := err.(validation.Errors); ok {
			response.BadRequest(c, "Name, email, and message are required")
			return
		}
		if errors.Is(err, contact.ErrNotConfigured) {
			response.InternalServerError(c, "Email service not configured")
			return
		}
		logger.Error("failed to send contact email", err)
		response.InternalServerError(c, "Failed to send message")
		return
	}

	response.Message(c, http.StatusOK, "Message sent successfully")
}

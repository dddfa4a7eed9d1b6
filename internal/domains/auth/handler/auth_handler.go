package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// AuthHandler serves the /api/auth routes.
type AuthHandler struct {
	service auth.Service
	session config.SessionConfig
}

func NewAuthHandler(service auth.Service, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		service: service,
		session: session,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	account, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, auth.RegisterResponse{
		Message: "User created successfully",
		UserID:  account.ID,
	})
}

// Login handles POST /api/auth/login. On success the session token is set
// as an HttpOnly cookie; the body carries only the account id.
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	account, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(h.session.TTL.Seconds()))

	response.JSON(c, http.StatusOK, auth.LoginResponse{
		Message: "Login successful",
		UserID:  account.ID,
	})
}

// Logout handles POST /api/auth/logout. Idempotent: an already-dead session
// still gets a 200 and a cleared cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.session.CookieName)
	if token != "" {
		if err := h.service.Logout(c.Request.Context(), token); err != nil {
			logger.Error("failed to invalidate session", err)
			response.InternalServerError(c, "Failed to logout")
			return
		}
	}

	h.setSessionCookie(c, "", -1)
	response.Message(c, http.StatusOK, "Logout successful")
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	token, err := c.Cookie(h.session.CookieName)
	if err != nil || token == "" {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	account, err := h.service.CurrentUser(c.Request.Context(), token)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, account.ToStatusResponse())
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(
		h.session.CookieName,
		token,
		maxAge,
		"/",
		"",
		h.session.CookieSecure,
		true, // HttpOnly
	)
}

func (h *AuthHandler) handleError(c *gin.Context, err error) {
	if _, ok := err.(validation.Errors); ok {
		response.BadRequest(c, err.Error())
		return
	}

	status := auth.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("auth request failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	switch status {
	case http.StatusUnauthorized:
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid credentials")
		} else {
			response.Unauthorized(c, "Unauthorized")
		}
	default:
		response.Message(c, status, err.Error())
	}
}

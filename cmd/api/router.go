package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/container"
)

// SetupRouter wires the HTTP surface. Reads are public; every mutating
// route below requires a valid session cookie.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	requireAuth := middleware.RequireAuth(c.Config.Session.CookieName, c.Sessions)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		auth := api.Group("/auth")
		{
			auth.POST("/register", c.AuthHandler.Register)
			auth.POST("/login", c.AuthHandler.Login)
			auth.POST("/logout", c.AuthHandler.Logout)
			auth.GET("/me", c.AuthHandler.Me)
		}

		api.GET("/profile", c.ProfileHandler.Get)
		api.PUT("/profile", requireAuth, c.ProfileHandler.Update)

		api.GET("/projects", c.ProjectHandler.List)
		api.POST("/projects", requireAuth, c.ProjectHandler.Create)
		api.PUT("/projects/:id", requireAuth, c.ProjectHandler.Update)
		api.DELETE("/projects/:id", requireAuth, c.ProjectHandler.Delete)

		api.GET("/skills", c.SkillHandler.List)
		api.POST("/skills", requireAuth, c.SkillHandler.Create)
		api.DELETE("/skills/:id", requireAuth, c.SkillHandler.Delete)

		api.GET("/experience", c.ExperienceHandler.List)
		api.POST("/experience", requireAuth, c.ExperienceHandler.Create)
		api.PUT("/experience/:id", requireAuth, c.ExperienceHandler.Update)
		api.DELETE("/experience/:id", requireAuth, c.ExperienceHandler.Delete)

		api.POST("/contact", c.ContactHandler.Send)
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": c.Config.App.Version,
		})
	}
}

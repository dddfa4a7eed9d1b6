package container

import (
	"context"
	"fmt"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/email"
	"portfolio-backend/pkg/logger"

	"portfolio-backend/internal/domains/auth"
	authHandler "portfolio-backend/internal/domains/auth/handler"
	authRepo "portfolio-backend/internal/domains/auth/repository"
	authService "portfolio-backend/internal/domains/auth/service"

	"portfolio-backend/internal/domains/profile"
	profileHandler "portfolio-backend/internal/domains/profile/handler"
	profileRepo "portfolio-backend/internal/domains/profile/repository"
	profileService "portfolio-backend/internal/domains/profile/service"

	"portfolio-backend/internal/domains/project"
	projectHandler "portfolio-backend/internal/domains/project/handler"
	projectRepo "portfolio-backend/internal/domains/project/repository"
	projectService "portfolio-backend/internal/domains/project/service"

	"portfolio-backend/internal/domains/skill"
	skillHandler "portfolio-backend/internal/domains/skill/handler"
	skillRepo "portfolio-backend/internal/domains/skill/repository"
	skillService "portfolio-backend/internal/domains/skill/service"

	"portfolio-backend/internal/domains/experience"
	experienceHandler "portfolio-backend/internal/domains/experience/handler"
	experienceRepo "portfolio-backend/internal/domains/experience/repository"
	experienceService "portfolio-backend/internal/domains/experience/service"

	"portfolio-backend/internal/domains/contact"
	contactHandler "portfolio-backend/internal/domains/contact/handler"
	contactService "portfolio-backend/internal/domains/contact/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config,
// infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *cache.RedisClient
	Mailer email.Mailer

	AuthRepo       auth.Repository
	Sessions       auth.SessionStore
	ProfileRepo    profile.Repository
	ProjectRepo    project.Repository
	SkillRepo      skill.Repository
	ExperienceRepo experience.Repository

	AuthService       auth.Service
	ProfileService    profile.Service
	ProjectService    project.Service
	SkillService      skill.Service
	ExperienceService experience.Service
	ContactService    contact.Service

	AuthHandler       *authHandler.AuthHandler
	ProfileHandler    *profileHandler.ProfileHandler
	ProjectHandler    *projectHandler.ProjectHandler
	SkillHandler      *skillHandler.SkillHandler
	ExperienceHandler *experienceHandler.ExperienceHandler
	ContactHandler    *contactHandler.ContactHandler
}

// NewContainer loads configuration, connects the infrastructure and wires
// every domain. A failure at any step aborts startup.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := c.DB.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	c.Redis = cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Redis.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	c.Mailer = email.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)
	if c.Mailer == nil {
		logger.Warn("SMTP not configured, contact form disabled", nil)
	}

	c.AuthRepo = authRepo.NewPostgresRepository(c.DB.Pool)
	c.Sessions = authRepo.NewRedisSessionStore(c.Redis.Client, cfg.Session.TTL)
	c.ProfileRepo = profileRepo.NewPostgresRepository(c.DB.Pool)
	c.ProjectRepo = projectRepo.NewPostgresRepository(c.DB.Pool)
	c.SkillRepo = skillRepo.NewPostgresRepository(c.DB.Pool)
	c.ExperienceRepo = experienceRepo.NewPostgresRepository(c.DB.Pool)

	c.AuthService = authService.NewAuthService(c.AuthRepo, c.Sessions)
	c.ProfileService = profileService.NewProfileService(c.ProfileRepo)
	c.ProjectService = projectService.NewProjectService(c.ProjectRepo)
	c.SkillService = skillService.NewSkillService(c.SkillRepo)
	c.ExperienceService = experienceService.NewExperienceService(c.ExperienceRepo)
	c.ContactService = contactService.NewContactService(c.Mailer, c.ProfileRepo, cfg.Contact.FallbackEmail)

	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService, cfg.Session)
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService)
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService)
	c.SkillHandler = skillHandler.NewSkillHandler(c.SkillService)
	c.ExperienceHandler = experienceHandler.NewExperienceHandler(c.ExperienceService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// HealthCheck pings the backing stores.
func (c *Container) HealthCheck(ctx context.Context) error {
	if err := c.DB.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Redis.HealthCheck(ctx); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}

// Cleanup releases infrastructure connections. Safe to call once during
// shutdown.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("failed to close database", err)
		}
	}
	logger.Info("container cleaned up", nil)
}

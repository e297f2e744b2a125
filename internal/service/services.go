package service

import (
	"github.com/mlevkin/launchcopy/internal/config"
	"github.com/mlevkin/launchcopy/internal/generator"
	"github.com/mlevkin/launchcopy/internal/logger"
	"github.com/mlevkin/launchcopy/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProjectService ProjectService
}

func NewServices(storages *store.Storages, gen generator.Generator, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.App, logger),
		ProjectService: NewProjectService(storages.ProjectRepository, storages.SessionRepository, gen, logger),
	}
}

package handler

import (
	"github.com/mlevkin/launchcopy/internal/config"
	"github.com/mlevkin/launchcopy/internal/handler/http"
	"github.com/mlevkin/launchcopy/internal/logger"
	"github.com/mlevkin/launchcopy/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App.Version, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

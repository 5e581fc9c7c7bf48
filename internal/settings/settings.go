// Package settings exposes the admin-managed profile option lists.
package settings

import (
	"log/slog"

	"surveygate/internal/settings/handler"
	"surveygate/internal/settings/ports"
	"surveygate/internal/settings/service"
)

type (
	Service = service.Service
	Handler = handler.Handler
)

func NewService(store ports.Store, opts ...service.Option) *Service {
	return service.New(store, opts...)
}

func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}

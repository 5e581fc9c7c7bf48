// Package access gates the survey fill form on profile completeness,
// eligibility, survey state and earlier responses.
package access

import (
	"log/slog"

	"surveygate/internal/access/handler"
	"surveygate/internal/access/service"
)

type (
	Gate    = service.Gate
	Handler = handler.Handler
)

func NewHandler(g *Gate, logger *slog.Logger) *Handler {
	return handler.New(g, logger)
}

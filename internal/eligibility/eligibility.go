// Package eligibility decides whether a user may take a survey, based on the
// survey's rule document and the user's profile and dynamic answers.
package eligibility

import (
	"log/slog"

	"surveygate/internal/eligibility/handler"
	"surveygate/internal/eligibility/metrics"
	"surveygate/internal/eligibility/ports"
	"surveygate/internal/eligibility/service"
)

// Service exposes evaluation and rule authoring.
type Service = service.Service

// Handler wires HTTP endpoints to the eligibility service.
type Handler = handler.Handler

// NewService constructs the eligibility service with required dependencies.
func NewService(profiles ports.ProfileReader, answers ports.AnswerReader, rules ports.RuleStore, opts ...service.Option) *Service {
	return service.New(profiles, answers, rules, opts...)
}

// NewHandler constructs the HTTP handler for user and admin routes.
func NewHandler(s *Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return handler.New(s, logger, m)
}

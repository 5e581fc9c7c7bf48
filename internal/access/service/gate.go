package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"surveygate/internal/access/metrics"
	"surveygate/internal/access/models"
	"surveygate/internal/access/ports"
	"surveygate/pkg/attrs"
	id "surveygate/pkg/domain"
	dErrors "surveygate/pkg/domain-errors"
	"surveygate/pkg/platform/audit"
	"surveygate/pkg/requestcontext"
)

// Gate decides whether a user may open a survey's fill form.
type Gate struct {
	progress    ports.ProfileProgress
	surveys     ports.SurveyReader
	responses   ports.ResponseReader
	eligibility ports.EligibilityPort
	auditor     ports.AuditPort
	metrics     *metrics.Metrics
	logger      *slog.Logger
	tracer      trace.Tracer
}

type Option func(*Gate)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Gate) {
		g.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Gate) {
		g.metrics = m
	}
}

func WithAuditor(auditor ports.AuditPort) Option {
	return func(g *Gate) {
		g.auditor = auditor
	}
}

func New(
	progress ports.ProfileProgress,
	surveys ports.SurveyReader,
	responses ports.ResponseReader,
	eligibility ports.EligibilityPort,
	opts ...Option,
) *Gate {
	g := &Gate{
		progress:    progress,
		surveys:     surveys,
		responses:   responses,
		eligibility: eligibility,
		logger:      slog.Default(),
		tracer:      otel.Tracer("surveygate/access"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CheckFill applies the fill preconditions in order and stops at the first
// denial:
//  1. every profile package completed
//  2. eligible under the survey's rule document
//  3. survey exists and is active (otherwise CodeNotFound)
//  4. no earlier response unless the survey allows several
func (g *Gate) CheckFill(ctx context.Context, userID id.UserID, surveyID id.SurveyID) (*models.Decision, error) {
	ctx, span := g.tracer.Start(ctx, "access.CheckFill", trace.WithAttributes(
		attribute.Int64("user_id", int64(userID)),
		attribute.Int64("survey_id", int64(surveyID)),
	))
	defer span.End()

	decision, err := g.decide(ctx, userID, surveyID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("reason", string(decision.Reason)))
	g.metrics.IncrementDecision(string(decision.Reason))
	if !decision.Allowed {
		g.logAudit(ctx, string(audit.EventSurveyAccessDenied),
			"user_id", userID,
			"survey_id", surveyID,
			"reason", string(decision.Reason),
		)
	}
	return decision, nil
}

func (g *Gate) decide(ctx context.Context, userID id.UserID, surveyID id.SurveyID) (*models.Decision, error) {
	missing, err := g.progress.MissingPackages(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile progress")
	}
	if len(missing) > 0 {
		d := models.Deny(models.ReasonProfileIncomplete)
		d.MissingPackages = missing
		return d, nil
	}

	verdict, err := g.eligibility.Check(ctx, userID, surveyID)
	if err != nil {
		return nil, err
	}
	if !verdict.Eligible {
		d := models.Deny(models.ReasonNotEligible)
		d.FailedChecks = verdict.Failed
		return d, nil
	}

	survey, err := g.surveys.FindSurvey(ctx, surveyID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load survey")
	}
	if survey == nil || !survey.IsActive {
		return nil, dErrors.New(dErrors.CodeNotFound, "survey not found")
	}

	if !survey.AllowMultiple {
		responded, err := g.responses.HasResponded(ctx, userID, surveyID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load survey responses")
		}
		if responded {
			return models.Deny(models.ReasonAlreadyResponded), nil
		}
	}
	return models.Allow(), nil
}

func (g *Gate) logAudit(ctx context.Context, event string, attributes ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "log_type", "audit")
	g.logger.InfoContext(ctx, event, args...)

	if g.auditor == nil {
		return
	}
	userID, _ := attrs.Extract[id.UserID](attributes, "user_id")
	surveyID, _ := attrs.Extract[id.SurveyID](attributes, "survey_id")
	reason := attrs.ExtractString(attributes, "reason")
	if err := g.auditor.Emit(ctx, audit.Event{
		UserID:    userID,
		SurveyID:  surveyID,
		Subject:   fmt.Sprintf("survey:%s", surveyID),
		Action:    event,
		Decision:  "denied",
		Reason:    reason,
		RequestID: requestID,
		ActorID:   userID.String(),
	}); err != nil {
		g.logger.ErrorContext(ctx, "failed to emit audit event",
			"event", event,
			"request_id", requestID,
			"error", err,
		)
	}
}

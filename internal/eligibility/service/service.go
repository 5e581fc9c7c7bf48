package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"surveygate/internal/eligibility/metrics"
	"surveygate/internal/eligibility/models"
	"surveygate/internal/eligibility/ports"
	id "surveygate/pkg/domain"
	dErrors "surveygate/pkg/domain-errors"
	"surveygate/pkg/requestcontext"
)

const defaultFetchTimeout = 3 * time.Second

// Service answers "may this user take this survey?" by fetching the user's
// profile, answers and the survey's rule document and applying Evaluate.
// It also owns admin authoring of rule documents.
type Service struct {
	profiles ports.ProfileReader
	answers  ports.AnswerReader
	rules    ports.RuleReader
	store    ports.RuleStore
	cache    ports.RuleCache
	options  ports.OptionsLookup
	auditor  ports.AuditPort
	metrics  *metrics.Metrics
	logger   *slog.Logger
	tracer   trace.Tracer
	timeout  time.Duration
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditor(auditor ports.AuditPort) Option {
	return func(s *Service) {
		s.auditor = auditor
	}
}

// WithOptionsLookup enables validation of enumerated values against the
// configured profile option lists when authoring rules.
func WithOptionsLookup(options ports.OptionsLookup) Option {
	return func(s *Service) {
		s.options = options
	}
}

// WithCachedRules routes rule reads through reader (usually a cache in front
// of the store) and invalidates cache on admin writes.
func WithCachedRules(reader ports.RuleReader, cache ports.RuleCache) Option {
	return func(s *Service) {
		s.rules = reader
		s.cache = cache
	}
}

// WithFetchTimeout bounds the collaborator fetches of one evaluation.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// New constructs a Service.
func New(profiles ports.ProfileReader, answers ports.AnswerReader, store ports.RuleStore, opts ...Option) *Service {
	s := &Service{
		profiles: profiles,
		answers:  answers,
		rules:    store,
		store:    store,
		logger:   slog.Default(),
		tracer:   otel.Tracer("surveygate/eligibility"),
		timeout:  defaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsEligible reports whether userID may take surveyID along with the rule
// document that decided it (nil when the survey is open to everyone). The
// error is set only when a collaborator fetch fails.
func (s *Service) IsEligible(ctx context.Context, userID id.UserID, surveyID id.SurveyID) (bool, *models.RuleDocument, error) {
	result, err := s.Explain(ctx, userID, surveyID)
	if err != nil {
		return false, nil, err
	}
	return result.Eligible, result.Rules, nil
}

// Explain is IsEligible with the list of failed checks.
func (s *Service) Explain(ctx context.Context, userID id.UserID, surveyID id.SurveyID) (*models.Result, error) {
	ctx, span := s.tracer.Start(ctx, "eligibility.Explain", trace.WithAttributes(
		attribute.Int64("user_id", int64(userID)),
		attribute.Int64("survey_id", int64(surveyID)),
	))
	defer span.End()
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	doc, err := s.fetchRules(ctx, surveyID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var result models.Result
	if doc == nil {
		result = Evaluate(nil, nil, nil)
	} else {
		in, err := s.gatherInputs(ctx, userID, doc.AnswerKeys())
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		result = Evaluate(doc, in.profile, in.answers)
	}

	s.record(ctx, surveyID, result)
	s.metrics.ObserveEvaluateLatency(time.Since(start))
	span.SetAttributes(attribute.Bool("eligible", result.Eligible))

	s.logger.DebugContext(ctx, "eligibility evaluated",
		"request_id", requestcontext.RequestID(ctx),
		"user_id", userID,
		"survey_id", surveyID,
		"eligible", result.Eligible,
		"failed_checks", len(result.Failed),
	)
	return &result, nil
}

// FilterEligible returns the surveys from surveyIDs the user may take, in
// input order. The profile and answers are fetched once for the batch.
func (s *Service) FilterEligible(ctx context.Context, userID id.UserID, surveyIDs []id.SurveyID) ([]id.SurveyID, error) {
	ctx, span := s.tracer.Start(ctx, "eligibility.FilterEligible", trace.WithAttributes(
		attribute.Int64("user_id", int64(userID)),
		attribute.Int("surveys", len(surveyIDs)),
	))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	docs, err := s.fetchRuleBatch(ctx, surveyIDs)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var keys []string
	needsUser := false
	for _, doc := range docs {
		if doc != nil {
			needsUser = true
			keys = append(keys, doc.AnswerKeys()...)
		}
	}

	in := &inputs{}
	if needsUser {
		in, err = s.gatherInputs(ctx, userID, dedupe(keys))
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	eligible := make([]id.SurveyID, 0, len(surveyIDs))
	for i, surveyID := range surveyIDs {
		result := Evaluate(docs[i], in.profile, in.answers)
		s.record(ctx, surveyID, result)
		if result.Eligible {
			eligible = append(eligible, surveyID)
		}
	}
	return eligible, nil
}

func (s *Service) fetchRules(ctx context.Context, surveyID id.SurveyID) (*models.RuleDocument, error) {
	start := time.Now()
	doc, err := s.rules.FindRules(ctx, surveyID)
	s.metrics.ObserveFetchLatency("rules", time.Since(start))
	if err != nil {
		return nil, fetchError(err, "failed to load eligibility rules")
	}
	return doc, nil
}

// record publishes metrics for one evaluation and flags unknown operators.
func (s *Service) record(ctx context.Context, surveyID id.SurveyID, result models.Result) {
	switch {
	case result.Rules == nil:
		s.metrics.IncrementOutcome("open")
	case result.Eligible:
		s.metrics.IncrementOutcome("eligible")
	default:
		s.metrics.IncrementOutcome("ineligible")
	}
	for _, c := range result.Failed {
		s.metrics.IncrementFailedCheck(string(c.Name))
	}
	for _, op := range result.UnknownOps {
		s.metrics.IncrementUnknownOperator(string(op))
		s.logger.WarnContext(ctx, "advanced rule uses unknown operator, treating as satisfied",
			"request_id", requestcontext.RequestID(ctx),
			"survey_id", surveyID,
			"op", op,
		)
	}
}

// fetchError translates a collaborator failure into a domain error.
func fetchError(err error, msg string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, msg)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

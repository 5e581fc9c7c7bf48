package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"surveygate/internal/settings/metrics"
	"surveygate/internal/settings/models"
	"surveygate/internal/settings/ports"
	dErrors "surveygate/pkg/domain-errors"
	"surveygate/pkg/platform/audit"
	"surveygate/pkg/requestcontext"
)

// Service reads and updates the profile option lists kept in app_settings.
type Service struct {
	store    ports.Store
	auditor  ports.AuditPort
	metrics  *metrics.Metrics
	logger   *slog.Logger
	defaults models.OptionLists
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditor(auditor ports.AuditPort) Option {
	return func(s *Service) {
		s.auditor = auditor
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithDefaults overrides the built-in fallback lists.
func WithDefaults(defaults models.OptionLists) Option {
	return func(s *Service) {
		s.defaults = defaults
	}
}

func New(store ports.Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		logger:   slog.Default(),
		defaults: models.DefaultOptionLists(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OptionLists returns the stored lists. Each list falls back to its default
// on its own when the key is absent or does not hold a JSON list.
func (s *Service) OptionLists(ctx context.Context) (models.OptionLists, error) {
	keys := make([]string, 0, len(models.OptionKeys))
	for _, k := range models.OptionKeys {
		keys = append(keys, string(k))
	}
	raw, err := s.store.GetValues(ctx, keys)
	if err != nil {
		return models.OptionLists{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile options")
	}

	var lists models.OptionLists
	for _, key := range models.OptionKeys {
		value, ok := raw[string(key)]
		if !ok || value == "" {
			s.metrics.IncrementDefaultFallback(string(key), "missing")
			lists.Set(key, s.defaults.Get(key))
			continue
		}
		items, err := decodeList(value)
		if err != nil {
			s.metrics.IncrementDefaultFallback(string(key), "invalid")
			s.logger.WarnContext(ctx, "stored option list is not a JSON list, using defaults",
				"request_id", requestcontext.RequestID(ctx),
				"key", key,
				"error", err,
			)
			lists.Set(key, s.defaults.Get(key))
			continue
		}
		lists.Set(key, items)
	}
	return lists, nil
}

// UpdateOptionLists normalizes and stores all four lists.
func (s *Service) UpdateOptionLists(ctx context.Context, input models.UpdateInput) (models.OptionLists, error) {
	lists := input.Normalize()

	values := make(map[string]string, len(models.OptionKeys))
	for _, key := range models.OptionKeys {
		payload, err := json.Marshal(lists.Get(key))
		if err != nil {
			return models.OptionLists{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode profile options")
		}
		values[string(key)] = string(payload)
	}
	if err := s.store.SetValues(ctx, values); err != nil {
		return models.OptionLists{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save profile options")
	}

	s.metrics.IncrementUpdate()
	s.logAudit(ctx, string(audit.EventProfileOptionsUpdated),
		"degrees", len(lists.Degrees),
		"cities", len(lists.Cities),
		"family_status", len(lists.FamilyStatus),
		"work_types", len(lists.WorkTypes),
	)
	return lists, nil
}

// decodeList accepts any JSON array. Non-string items are kept as their JSON
// text so an admin edit never silently drops a choice.
func decodeList(value string) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return nil, fmt.Errorf("decode option list: %w", err)
	}
	if items == nil {
		return nil, errors.New("option list is null")
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		out = append(out, string(item))
	}
	return out, nil
}

func (s *Service) logAudit(ctx context.Context, event string, attributes ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "log_type", "audit")
	s.logger.InfoContext(ctx, event, args...)

	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, audit.Event{
		Subject:   "settings:profile_options",
		Action:    event,
		RequestID: requestID,
		ActorID:   "admin",
	}); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event",
			"event", event,
			"request_id", requestID,
			"error", err,
		)
	}
}

package service

import (
	"context"
	"log/slog"
	"time"

	"surveygate/internal/ratelimit/metrics"
	"surveygate/internal/ratelimit/models"
	"surveygate/internal/ratelimit/ports"
	id "surveygate/pkg/domain"
	"surveygate/pkg/platform/circuit"
)

// DefaultLimits are per-user budgets per class.
var DefaultLimits = map[models.Class]models.Limit{
	models.ClassRead:  {Requests: 120, Window: time.Minute},
	models.ClassBatch: {Requests: 30, Window: time.Minute},
}

// Limiter checks per-user quotas against a primary bucket store. When the
// primary keeps failing the breaker opens and checks go to the fallback.
type Limiter struct {
	primary  ports.BucketStore
	fallback ports.BucketStore
	breaker  *circuit.Breaker
	limits   map[models.Class]models.Limit
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

type Option func(*Limiter)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Limiter) {
		l.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Limiter) {
		l.metrics = m
	}
}

// WithFallback sets the store used while the breaker is open.
func WithFallback(fallback ports.BucketStore, breaker *circuit.Breaker) Option {
	return func(l *Limiter) {
		l.fallback = fallback
		l.breaker = breaker
	}
}

// WithLimit overrides the budget for one class.
func WithLimit(class models.Class, limit models.Limit) Option {
	return func(l *Limiter) {
		if limit.Requests > 0 && limit.Window > 0 {
			l.limits[class] = limit
		}
	}
}

func New(primary ports.BucketStore, opts ...Option) *Limiter {
	l := &Limiter{
		primary: primary,
		limits:  make(map[models.Class]models.Limit, len(DefaultLimits)),
		logger:  slog.Default(),
	}
	for class, limit := range DefaultLimits {
		l.limits[class] = limit
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.fallback != nil && l.breaker == nil {
		l.breaker = circuit.New("ratelimit")
	}
	return l
}

// CheckUser records one request for the user in class. A nil result with a
// nil error means the check could not be made and the request should pass.
func (l *Limiter) CheckUser(ctx context.Context, userID id.UserID, class models.Class) (*models.Result, error) {
	limit, ok := l.limits[class]
	if !ok {
		return nil, nil
	}
	key := models.UserKey(userID, class)

	result, err := l.allow(ctx, key, limit)
	switch {
	case err != nil:
		return nil, err
	case result == nil:
		l.metrics.IncrementDecision(string(class), "bypassed")
	case result.Allowed:
		l.metrics.IncrementDecision(string(class), "allowed")
	default:
		l.metrics.IncrementDecision(string(class), "limited")
	}
	return result, nil
}

func (l *Limiter) allow(ctx context.Context, key string, limit models.Limit) (*models.Result, error) {
	result, err := l.primary.Allow(ctx, key, limit.Requests, limit.Window)
	if l.breaker == nil {
		return result, err
	}

	if err == nil {
		if _, change := l.breaker.RecordSuccess(); change.Closed {
			l.logger.InfoContext(ctx, "rate limit store recovered", "breaker", l.breaker.Name())
		}
		return result, nil
	}

	l.metrics.IncrementStoreFailure()
	useFallback, change := l.breaker.RecordFailure()
	if change.Opened {
		l.logger.WarnContext(ctx, "rate limit store failing, using in-memory fallback",
			"breaker", l.breaker.Name(),
			"error", err,
		)
	}
	if !useFallback {
		l.logger.WarnContext(ctx, "rate limit check skipped", "error", err)
		return nil, nil
	}
	l.metrics.IncrementFallback()
	return l.fallback.Allow(ctx, key, limit.Requests, limit.Window)
}

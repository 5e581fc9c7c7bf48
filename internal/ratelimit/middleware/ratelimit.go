package middleware

//go:generate mockgen -source=ratelimit.go -destination=mocks/limiter_mock.go -package=mocks

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"surveygate/internal/ratelimit/models"
	id "surveygate/pkg/domain"
	"surveygate/pkg/platform/httputil"
	request "surveygate/pkg/platform/middleware/request"
	"surveygate/pkg/requestcontext"
)

type RateLimiter interface {
	CheckUser(ctx context.Context, userID id.UserID, class models.Class) (*models.Result, error)
}

type Middleware struct {
	limiter  RateLimiter
	logger   *slog.Logger
	disabled bool
}

type Option func(*Middleware)

// WithDisabled turns every check into a pass-through (local runs and demos).
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

func New(limiter RateLimiter, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{
		limiter: limiter,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled {
		logger.Info("rate limiting disabled")
	}
	return m
}

// RateLimitUser limits authenticated requests per user. It must run after the
// auth middleware; requests without a user pass through.
func (m *Middleware) RateLimitUser(class models.Class) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			userID := requestcontext.UserID(ctx)
			if m.disabled || userID.IsNil() {
				next.ServeHTTP(w, r)
				return
			}

			result, err := m.limiter.CheckUser(ctx, userID, class)
			if err != nil {
				m.logger.ErrorContext(ctx, "failed to check user rate limit",
					"error", err,
					"user_id", userID,
					"request_id", request.GetRequestID(ctx),
				)
				next.ServeHTTP(w, r)
				return
			}
			if result == nil {
				next.ServeHTTP(w, r)
				return
			}

			addRateLimitHeaders(w, result)
			if !result.Allowed {
				m.logger.WarnContext(ctx, "user rate limit exceeded",
					"user_id", userID,
					"class", class,
					"request_id", request.GetRequestID(ctx),
				)
				writeUserRateLimitExceeded(w, result)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func addRateLimitHeaders(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeUserRateLimitExceeded(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, &models.ExceededResponse{
		Error:      "user_rate_limit_exceeded",
		Message:    "You have exceeded your request quota for this operation.",
		QuotaLimit: result.Limit,
		QuotaReset: result.ResetAt,
		RetryAfter: result.RetryAfter,
	})
}

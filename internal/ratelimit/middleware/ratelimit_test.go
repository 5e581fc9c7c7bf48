package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"surveygate/internal/ratelimit/middleware/mocks"
	"surveygate/internal/ratelimit/models"
	id "surveygate/pkg/domain"
	"surveygate/pkg/requestcontext"
	"surveygate/pkg/testutil"
)

func newRequest(userID id.UserID) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/surveys/7/eligibility", nil)
	if userID != 0 {
		req = req.WithContext(requestcontext.WithUserID(req.Context(), userID))
	}
	return req
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitUser(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reset := time.Unix(1_800_000_000, 0)

	t.Run("allowed request gets quota headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)
		limiter.EXPECT().CheckUser(gomock.Any(), id.UserID(42), models.ClassRead).
			Return(&models.Result{Allowed: true, Limit: 10, Remaining: 9, ResetAt: reset}, nil)

		var called bool
		h := New(limiter, logger).RateLimitUser(models.ClassRead)(okHandler(&called))
		rr := testutil.DoRequest(h, newRequest(42))

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "10", rr.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "9", rr.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, "1800000000", rr.Header().Get("X-RateLimit-Reset"))
	})

	t.Run("limited request gets 429", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)
		limiter.EXPECT().CheckUser(gomock.Any(), id.UserID(42), models.ClassBatch).
			Return(&models.Result{Allowed: false, Limit: 10, ResetAt: reset, RetryAfter: 12}, nil)

		var called bool
		h := New(limiter, logger).RateLimitUser(models.ClassBatch)(okHandler(&called))
		rr := testutil.DoRequest(h, newRequest(42))

		assert.False(t, called)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "12", rr.Header().Get("Retry-After"))
		body := testutil.UnmarshalResponse[models.ExceededResponse](t, rr)
		assert.Equal(t, "user_rate_limit_exceeded", body.Error)
		assert.Equal(t, 10, body.QuotaLimit)
		assert.Equal(t, 12, body.RetryAfter)
	})

	t.Run("limiter errors fail open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)
		limiter.EXPECT().CheckUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("redis down"))

		var called bool
		h := New(limiter, logger).RateLimitUser(models.ClassRead)(okHandler(&called))
		rr := testutil.DoRequest(h, newRequest(42))

		assert.True(t, called)
		assert.Empty(t, rr.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("skipped check passes without headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)
		limiter.EXPECT().CheckUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		var called bool
		h := New(limiter, logger).RateLimitUser(models.ClassRead)(okHandler(&called))
		testutil.DoRequest(h, newRequest(42))
		assert.True(t, called)
	})

	t.Run("anonymous and disabled requests are not checked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)

		var called bool
		h := New(limiter, logger).RateLimitUser(models.ClassRead)(okHandler(&called))
		testutil.DoRequest(h, newRequest(0))
		require.True(t, called)

		called = false
		h = New(limiter, logger, WithDisabled(true)).RateLimitUser(models.ClassRead)(okHandler(&called))
		testutil.DoRequest(h, newRequest(42))
		assert.True(t, called)
	})
}

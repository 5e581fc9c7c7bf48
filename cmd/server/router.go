package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"surveygate/internal/access"
	accessAdapters "surveygate/internal/access/adapters"
	accessMetrics "surveygate/internal/access/metrics"
	accessPorts "surveygate/internal/access/ports"
	accessService "surveygate/internal/access/service"
	accessStore "surveygate/internal/access/store"
	"surveygate/internal/eligibility"
	eligibilityAdapters "surveygate/internal/eligibility/adapters"
	eligibilityMetrics "surveygate/internal/eligibility/metrics"
	eligibilityPorts "surveygate/internal/eligibility/ports"
	eligibilityService "surveygate/internal/eligibility/service"
	eligibilityStore "surveygate/internal/eligibility/store"
	jwttoken "surveygate/internal/jwt_token"
	rateLimitMetrics "surveygate/internal/ratelimit/metrics"
	rateLimitMiddleware "surveygate/internal/ratelimit/middleware"
	rateLimitModels "surveygate/internal/ratelimit/models"
	rateLimitService "surveygate/internal/ratelimit/service"
	"surveygate/internal/ratelimit/store/bucket"
	"surveygate/internal/platform/config"
	httpMetrics "surveygate/internal/platform/metrics"
	"surveygate/internal/settings"
	settingsMetrics "surveygate/internal/settings/metrics"
	settingsPorts "surveygate/internal/settings/ports"
	settingsService "surveygate/internal/settings/service"
	settingsStore "surveygate/internal/settings/store"
	"surveygate/pkg/platform/circuit"
	"surveygate/pkg/platform/httputil"
	adminmw "surveygate/pkg/platform/middleware/admin"
	authmw "surveygate/pkg/platform/middleware/auth"
	"surveygate/pkg/platform/middleware/request"
	"surveygate/pkg/platform/middleware/requesttime"
)

// eligibilityStores groups the eligibility ports one backend satisfies.
type eligibilityStores interface {
	eligibilityPorts.ProfileReader
	eligibilityPorts.AnswerReader
	eligibilityPorts.RuleStore
}

// accessStores groups the access ports one backend satisfies.
type accessStores interface {
	accessPorts.ProfileProgress
	accessPorts.SurveyReader
	accessPorts.ResponseReader
}

func newRouter(cfg config.Server, log *slog.Logger, in *infra) http.Handler {
	var (
		eligStore     eligibilityStores
		settingsBack  settingsPorts.Store
		accessBackend accessStores
	)
	if in.db != nil {
		eligStore = eligibilityStore.NewPostgres(in.db)
		settingsBack = settingsStore.NewPostgres(in.db)
		accessBackend = accessStore.NewPostgres(in.db)
	} else {
		eligStore = eligibilityStore.NewInMemoryStore()
		settingsBack = settingsStore.NewInMemoryStore()
		accessBackend = accessStore.NewInMemoryStore()
	}

	settingsSvc := settings.NewService(settingsBack,
		settingsService.WithLogger(log),
		settingsService.WithAuditor(in.auditor),
		settingsService.WithMetrics(settingsMetrics.New()),
	)

	eligMetrics := eligibilityMetrics.New()
	eligOpts := []eligibilityService.Option{
		eligibilityService.WithLogger(log),
		eligibilityService.WithMetrics(eligMetrics),
		eligibilityService.WithAuditor(in.auditor),
		eligibilityService.WithOptionsLookup(eligibilityAdapters.NewOptionsAdapter(settingsSvc)),
		eligibilityService.WithFetchTimeout(cfg.EvaluationTimeout),
	}
	if in.redis != nil {
		cache := eligibilityStore.NewRedisRuleCache(eligStore, in.redis.Client, cfg.Redis.CacheTTL, log)
		eligOpts = append(eligOpts, eligibilityService.WithCachedRules(cache, cache))
	}
	eligSvc := eligibility.NewService(eligStore, eligStore, eligStore, eligOpts...)

	gate := accessService.New(accessBackend, accessBackend, accessBackend,
		accessAdapters.NewEligibilityAdapter(eligSvc),
		accessService.WithLogger(log),
		accessService.WithMetrics(accessMetrics.New()),
		accessService.WithAuditor(in.auditor),
	)

	eligHandler := eligibility.NewHandler(eligSvc, log, eligMetrics)
	settingsHandler := settings.NewHandler(settingsSvc, log)
	accessHandler := access.NewHandler(gate, log)

	rateLimit := rateLimitMiddleware.New(newLimiter(cfg, log, in), log,
		rateLimitMiddleware.WithDisabled(cfg.RateLimit.Disabled),
	)

	jwtValidator := jwttoken.NewJWTServiceAdapter(jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, ""))

	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(httpMetrics.New().Middleware)

	r.Get("/healthz", healthHandler(in))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth(jwtValidator, log))
		r.Use(rateLimit.RateLimitUser(rateLimitModels.ClassRead))
		eligHandler.Register(r, rateLimit.RateLimitUser(rateLimitModels.ClassBatch))
		accessHandler.Register(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(adminmw.RequireAdminToken(cfg.AdminToken, log))
		eligHandler.RegisterAdmin(r)
		settingsHandler.RegisterAdmin(r)
	})

	return r
}

// newLimiter counts in Redis when it is configured, falling back to process
// memory while Redis fails.
func newLimiter(cfg config.Server, log *slog.Logger, in *infra) *rateLimitService.Limiter {
	opts := []rateLimitService.Option{
		rateLimitService.WithLogger(log),
		rateLimitService.WithMetrics(rateLimitMetrics.New()),
		rateLimitService.WithLimit(rateLimitModels.ClassRead, rateLimitModels.Limit{Requests: cfg.RateLimit.ReadPerMinute, Window: time.Minute}),
		rateLimitService.WithLimit(rateLimitModels.ClassBatch, rateLimitModels.Limit{Requests: cfg.RateLimit.BatchPerMinute, Window: time.Minute}),
	}
	if in.redis == nil {
		return rateLimitService.New(bucket.NewInMemoryBucketStore(), opts...)
	}
	opts = append(opts, rateLimitService.WithFallback(bucket.NewInMemoryBucketStore(), circuit.New("ratelimit-redis")))
	return rateLimitService.New(bucket.NewRedisBucketStore(in.redis.Client), opts...)
}

func healthHandler(in *infra) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		deps := in.Ping(ctx)
		status := http.StatusOK
		for _, state := range deps {
			if state != "up" {
				status = http.StatusServiceUnavailable
			}
		}
		httputil.WriteJSON(w, status, map[string]any{
			"status":       http.StatusText(status),
			"dependencies": deps,
		})
	}
}

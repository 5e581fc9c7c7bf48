package handler

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"surveygate/internal/eligibility/metrics"
	"surveygate/internal/eligibility/models"
	id "surveygate/pkg/domain"
	dErrors "surveygate/pkg/domain-errors"
	"surveygate/pkg/platform/httputil"
	"surveygate/pkg/requestcontext"
)

// Service defines the interface for eligibility operations.
type Service interface {
	Explain(ctx context.Context, userID id.UserID, surveyID id.SurveyID) (*models.Result, error)
	FilterEligible(ctx context.Context, userID id.UserID, surveyIDs []id.SurveyID) ([]id.SurveyID, error)
	SaveRules(ctx context.Context, surveyID id.SurveyID, input models.RuleInput) (*models.RuleDocument, error)
	GetRules(ctx context.Context, surveyID id.SurveyID) (*models.RuleDocument, error)
	DeleteRules(ctx context.Context, surveyID id.SurveyID) error
}

// Handler wires eligibility endpoints to the eligibility service.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs an eligibility handler with its dependencies.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts the user-facing endpoints. The router must run the auth
// middleware.
func (h *Handler) Register(r chi.Router, batch ...func(http.Handler) http.Handler) {
	r.Get("/surveys/{surveyID}/eligibility", h.HandleEligibility)
	r.With(batch...).Post("/surveys/eligible", h.HandleFilter)
}

// RegisterAdmin mounts rule authoring endpoints. The router must run the
// admin token middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/admin/surveys/{surveyID}/rules", h.HandleGetRules)
	r.Put("/admin/surveys/{surveyID}/rules", h.HandleSaveRules)
	r.Delete("/admin/surveys/{surveyID}/rules", h.HandleDeleteRules)
}

// HandleEligibility handles GET /surveys/{surveyID}/eligibility.
func (h *Handler) HandleEligibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	surveyID, ok := h.surveyIDParam(w, r)
	if !ok {
		return
	}

	result, err := h.service.Explain(ctx, userID, surveyID)
	if err != nil {
		h.logger.ErrorContext(ctx, "eligibility evaluation failed",
			"request_id", requestID,
			"user_id", userID,
			"survey_id", surveyID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "eligibility evaluated",
		"request_id", requestID,
		"user_id", userID,
		"survey_id", surveyID,
		"eligible", result.Eligible,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromResult(surveyID, result))
}

// HandleFilter handles POST /surveys/eligible.
func (h *Handler) HandleFilter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[FilterRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	eligible, err := h.service.FilterEligible(ctx, userID, req.Parsed())
	if err != nil {
		h.logger.ErrorContext(ctx, "eligibility filter failed",
			"request_id", requestID,
			"user_id", userID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FilterResponse{SurveyIDs: eligible})
}

// HandleGetRules handles GET /admin/surveys/{surveyID}/rules.
func (h *Handler) HandleGetRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	surveyID, ok := h.surveyIDParam(w, r)
	if !ok {
		return
	}

	doc, err := h.service.GetRules(ctx, surveyID)
	if err != nil {
		h.logFailure(ctx, "get rules failed", surveyID, err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, RulesResponse{SurveyID: surveyID, Rules: doc})
}

// HandleSaveRules handles PUT /admin/surveys/{surveyID}/rules.
func (h *Handler) HandleSaveRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	surveyID, ok := h.surveyIDParam(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[SaveRulesRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	doc, err := h.service.SaveRules(ctx, surveyID, req.RuleInput)
	if err != nil {
		h.logFailure(ctx, "save rules failed", surveyID, err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, RulesResponse{SurveyID: surveyID, Rules: doc})
}

// HandleDeleteRules handles DELETE /admin/surveys/{surveyID}/rules.
func (h *Handler) HandleDeleteRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	surveyID, ok := h.surveyIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteRules(ctx, surveyID); err != nil {
		h.logFailure(ctx, "delete rules failed", surveyID, err)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (id.UserID, bool) {
	userID := requestcontext.UserID(r.Context())
	if userID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return 0, false
	}
	return userID, true
}

func (h *Handler) surveyIDParam(w http.ResponseWriter, r *http.Request) (id.SurveyID, bool) {
	surveyID, err := id.ParseSurveyID(chi.URLParam(r, "surveyID"))
	if err != nil {
		httputil.WriteError(w, err)
		return 0, false
	}
	return surveyID, true
}

func (h *Handler) logFailure(ctx context.Context, msg string, surveyID id.SurveyID, err error) {
	level := slog.LevelError
	if !dErrors.HasCode(err, dErrors.CodeInternal) && !dErrors.HasCode(err, dErrors.CodeTimeout) {
		level = slog.LevelWarn
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestcontext.RequestID(ctx),
		"survey_id", surveyID,
		"error", err,
	)
}

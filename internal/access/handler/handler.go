package handler

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"surveygate/internal/access/models"
	id "surveygate/pkg/domain"
	dErrors "surveygate/pkg/domain-errors"
	"surveygate/pkg/platform/httputil"
	"surveygate/pkg/requestcontext"
)

// Service defines the interface for survey access checks.
type Service interface {
	CheckFill(ctx context.Context, userID id.UserID, surveyID id.SurveyID) (*models.Decision, error)
}

// Handler serves the survey access endpoint.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the endpoint. The router must run the auth middleware.
func (h *Handler) Register(r chi.Router) {
	r.Get("/surveys/{surveyID}/access", h.HandleAccess)
}

// AccessResponse is returned by GET /surveys/{surveyID}/access.
type AccessResponse struct {
	SurveyID        id.SurveyID          `json:"survey_id"`
	Allowed         bool                 `json:"allowed"`
	Reason          models.Reason        `json:"reason"`
	MissingPackages []string             `json:"missing_packages"`
	FailedChecks    []models.FailedCheck `json:"failed_checks"`
}

func toResponse(surveyID id.SurveyID, d *models.Decision) AccessResponse {
	resp := AccessResponse{
		SurveyID:        surveyID,
		Allowed:         d.Allowed,
		Reason:          d.Reason,
		MissingPackages: d.MissingPackages,
		FailedChecks:    d.FailedChecks,
	}
	if resp.MissingPackages == nil {
		resp.MissingPackages = []string{}
	}
	if resp.FailedChecks == nil {
		resp.FailedChecks = []models.FailedCheck{}
	}
	return resp
}

// HandleAccess handles GET /surveys/{surveyID}/access. A denial is a normal
// 200 response; only a missing survey or a fetch failure is an error.
func (h *Handler) HandleAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}
	surveyID, err := id.ParseSurveyID(chi.URLParam(r, "surveyID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	decision, err := h.service.CheckFill(ctx, userID, surveyID)
	if err != nil {
		level := slog.LevelError
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			level = slog.LevelWarn
		}
		h.logger.Log(ctx, level, "survey access check failed",
			"request_id", requestID,
			"user_id", userID,
			"survey_id", surveyID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "survey access checked",
		"request_id", requestID,
		"user_id", userID,
		"survey_id", surveyID,
		"allowed", decision.Allowed,
		"reason", decision.Reason,
	)
	httputil.WriteJSON(w, http.StatusOK, toResponse(surveyID, decision))
}

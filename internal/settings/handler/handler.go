package handler

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"surveygate/internal/settings/models"
	dErrors "surveygate/pkg/domain-errors"
	"surveygate/pkg/platform/httputil"
	"surveygate/pkg/requestcontext"
)

// Service defines the interface for profile option settings.
type Service interface {
	OptionLists(ctx context.Context) (models.OptionLists, error)
	UpdateOptionLists(ctx context.Context, input models.UpdateInput) (models.OptionLists, error)
}

// Handler serves the admin profile option endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterAdmin mounts the endpoints. The router must run the admin token
// middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/admin/profile-options", h.HandleGetOptions)
	r.Put("/admin/profile-options", h.HandleUpdateOptions)
}

// UpdateOptionsRequest is the body of PUT /admin/profile-options.
type UpdateOptionsRequest struct {
	models.UpdateInput
}

// Validate implements httputil.Validatable.
func (r *UpdateOptionsRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

// HandleGetOptions handles GET /admin/profile-options.
func (h *Handler) HandleGetOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lists, err := h.service.OptionLists(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load profile options",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, lists)
}

// HandleUpdateOptions handles PUT /admin/profile-options.
func (h *Handler) HandleUpdateOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UpdateOptionsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	lists, err := h.service.UpdateOptionLists(ctx, req.UpdateInput)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update profile options",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "profile options updated", "request_id", requestID)
	httputil.WriteJSON(w, http.StatusOK, lists)
}

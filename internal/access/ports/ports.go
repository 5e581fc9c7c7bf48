package ports

//go:generate mockgen -source=ports.go -destination=mocks/ports_mock.go -package=mocks

import (
	"context"

	"surveygate/internal/access/models"
	id "surveygate/pkg/domain"
	"surveygate/pkg/platform/audit"
)

// ProfileProgress reports which profile packages a user has not completed.
type ProfileProgress interface {
	// MissingPackages returns the codes of every profile package without a
	// completed section for userID, in package display order.
	MissingPackages(ctx context.Context, userID id.UserID) ([]string, error)
}

// SurveyReader loads surveys.
type SurveyReader interface {
	// FindSurvey returns nil, nil when the survey does not exist.
	FindSurvey(ctx context.Context, surveyID id.SurveyID) (*models.Survey, error)
}

// ResponseReader answers whether a user already submitted a survey.
type ResponseReader interface {
	HasResponded(ctx context.Context, userID id.UserID, surveyID id.SurveyID) (bool, error)
}

// EligibilityPort evaluates a survey's rule document for a user.
type EligibilityPort interface {
	Check(ctx context.Context, userID id.UserID, surveyID id.SurveyID) (*models.Eligibility, error)
}

// AuditPort records denials.
type AuditPort interface {
	Emit(ctx context.Context, event audit.Event) error
}

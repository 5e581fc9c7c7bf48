package ports

//go:generate mockgen -source=ports.go -destination=mocks/ports_mock.go -package=mocks

import (
	"context"

	"surveygate/internal/eligibility/models"
	id "surveygate/pkg/domain"
	"surveygate/pkg/platform/audit"
)

// ProfileReader loads a user's core profile.
type ProfileReader interface {
	// FindProfile returns nil, nil when the user has no profile record.
	// Returns nil, error only for infrastructure failures.
	FindProfile(ctx context.Context, userID id.UserID) (*models.Profile, error)
}

// AnswerReader loads a user's dynamic profile answers.
type AnswerReader interface {
	// FindAnswers returns the answers for the given question keys. A nil or
	// empty keys slice returns every answer the user has.
	FindAnswers(ctx context.Context, userID id.UserID, keys []string) (models.Answers, error)
}

// RuleReader loads a survey's eligibility rule document.
type RuleReader interface {
	// FindRules returns nil, nil when the survey has no rule document.
	FindRules(ctx context.Context, surveyID id.SurveyID) (*models.RuleDocument, error)
}

// RuleStore persists rule documents authored by admins.
type RuleStore interface {
	RuleReader
	SaveRules(ctx context.Context, surveyID id.SurveyID, doc *models.RuleDocument) error
	// DeleteRules returns sentinel.ErrNotFound when nothing was stored.
	DeleteRules(ctx context.Context, surveyID id.SurveyID) error
}

// RuleCache invalidates cached rule documents after an admin write.
type RuleCache interface {
	Invalidate(ctx context.Context, surveyID id.SurveyID) error
}

// OptionsLookup is the read-only view of the configured profile option lists
// used to validate authored rule documents.
type OptionsLookup interface {
	OptionLists(ctx context.Context) (models.OptionLists, error)
}

// AuditPort defines the interface for emitting audit events.
// This matches the audit.Publisher interface but is defined here
// to maintain hexagonal boundaries.
type AuditPort interface {
	Emit(ctx context.Context, event audit.Event) error
}

package audit

import (
	"context"
	"time"

	id "surveygate/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies, storage backends, and routing.
type EventCategory string

const (
	// CategoryCompliance covers admin configuration changes that decide who
	// may earn rewards. These require long retention.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers routine access decisions useful for support
	// and debugging. These can be sampled or aggregated downstream.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory `json:"category"`
	Timestamp time.Time     `json:"timestamp"`
	UserID    id.UserID     `json:"user_id,omitempty"`
	SurveyID  id.SurveyID   `json:"survey_id,omitempty"`
	Subject   string        `json:"subject,omitempty"`
	Action    string        `json:"action"`
	Decision  string        `json:"decision,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	RequestID string        `json:"request_id,omitempty"`
	// ActorID identifies the admin token holder for configuration changes.
	ActorID string `json:"actor_id,omitempty"`
}

type AuditEvent string

const (
	// Rule authoring events
	EventSurveyRulesUpdated AuditEvent = "survey_rules_updated"
	EventSurveyRulesDeleted AuditEvent = "survey_rules_deleted"

	// Settings events
	EventProfileOptionsUpdated AuditEvent = "profile_options_updated"

	// Access events
	EventSurveyAccessDenied AuditEvent = "survey_access_denied"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventSurveyRulesUpdated:    CategoryCompliance,
	EventSurveyRulesDeleted:    CategoryCompliance,
	EventProfileOptionsUpdated: CategoryCompliance,
	EventSurveyAccessDenied:    CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Store persists or forwards audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// Lister is implemented by stores that can read events back.
type Lister interface {
	ListByUser(ctx context.Context, userID id.UserID) ([]Event, error)
}

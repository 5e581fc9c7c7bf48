package handler

import (
	"surveygate/internal/eligibility/models"
	id "surveygate/pkg/domain"
)

// EligibilityResponse is returned by GET /surveys/{surveyID}/eligibility.
type EligibilityResponse struct {
	SurveyID     id.SurveyID          `json:"survey_id"`
	Eligible     bool                 `json:"eligible"`
	Rules        *models.RuleDocument `json:"rules"`
	FailedChecks []models.Check       `json:"failed_checks"`
}

// FromResult maps a service result to the response body.
func FromResult(surveyID id.SurveyID, r *models.Result) EligibilityResponse {
	failed := r.Failed
	if failed == nil {
		failed = []models.Check{}
	}
	return EligibilityResponse{
		SurveyID:     surveyID,
		Eligible:     r.Eligible,
		Rules:        r.Rules,
		FailedChecks: failed,
	}
}

// FilterResponse is returned by POST /surveys/eligible.
type FilterResponse struct {
	SurveyIDs []id.SurveyID `json:"survey_ids"`
}

// RulesResponse is returned by the admin rules endpoints.
type RulesResponse struct {
	SurveyID id.SurveyID          `json:"survey_id"`
	Rules    *models.RuleDocument `json:"rules"`
}

package handler

import (
	"surveygate/internal/eligibility/models"
	id "surveygate/pkg/domain"
	dErrors "surveygate/pkg/domain-errors"
)

// maxBatchSurveys caps POST /surveys/eligible.
const maxBatchSurveys = 200

// FilterRequest is the body of POST /surveys/eligible.
type FilterRequest struct {
	SurveyIDs []int64 `json:"survey_ids"`

	parsed []id.SurveyID
}

// Validate implements httputil.Validatable.
func (r *FilterRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.SurveyIDs) > maxBatchSurveys {
		return dErrors.Newf(dErrors.CodeValidation, "survey_ids must contain at most %d entries", maxBatchSurveys)
	}
	r.parsed = make([]id.SurveyID, 0, len(r.SurveyIDs))
	for _, raw := range r.SurveyIDs {
		surveyID := id.SurveyID(raw)
		if surveyID.IsNil() {
			return dErrors.New(dErrors.CodeValidation, "survey_ids must be positive")
		}
		r.parsed = append(r.parsed, surveyID)
	}
	return nil
}

// Parsed returns the validated survey IDs.
func (r *FilterRequest) Parsed() []id.SurveyID {
	return r.parsed
}

// SaveRulesRequest is the body of PUT /admin/surveys/{surveyID}/rules.
type SaveRulesRequest struct {
	models.RuleInput
}

// Validate implements httputil.Validatable. Field validation happens in the
// service because it needs the configured option lists.
func (r *SaveRulesRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

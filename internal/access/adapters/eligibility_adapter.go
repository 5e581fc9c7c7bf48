package adapters

import (
	"context"

	"surveygate/internal/access/models"
	"surveygate/internal/access/ports"
	eligibilityModels "surveygate/internal/eligibility/models"
	id "surveygate/pkg/domain"
)

// Explainer is the slice of the eligibility service the gate needs.
type Explainer interface {
	Explain(ctx context.Context, userID id.UserID, surveyID id.SurveyID) (*eligibilityModels.Result, error)
}

// EligibilityAdapter implements ports.EligibilityPort by calling the
// eligibility service in-process.
type EligibilityAdapter struct {
	eligibility Explainer
}

// NewEligibilityAdapter creates a new eligibility adapter.
func NewEligibilityAdapter(eligibility Explainer) ports.EligibilityPort {
	return &EligibilityAdapter{eligibility: eligibility}
}

// Check evaluates the survey's rule document for the user. Fetch errors
// pass through with their domain code.
func (a *EligibilityAdapter) Check(ctx context.Context, userID id.UserID, surveyID id.SurveyID) (*models.Eligibility, error) {
	result, err := a.eligibility.Explain(ctx, userID, surveyID)
	if err != nil {
		return nil, err
	}
	failed := make([]models.FailedCheck, 0, len(result.Failed))
	for _, c := range result.Failed {
		failed = append(failed, models.FailedCheck{
			Check:     string(c.Name),
			RuleIndex: c.RuleIndex,
			Key:       c.Key,
		})
	}
	return &models.Eligibility{Eligible: result.Eligible, Failed: failed}, nil
}

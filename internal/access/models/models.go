package models

import id "surveygate/pkg/domain"

// Reason explains an access decision.
type Reason string

const (
	ReasonAllowed           Reason = "allowed"
	ReasonProfileIncomplete Reason = "profile_incomplete"
	ReasonNotEligible       Reason = "not_eligible"
	ReasonAlreadyResponded  Reason = "already_responded"
)

// FailedCheck names an eligibility constraint the user did not meet.
type FailedCheck struct {
	Check     string `json:"check"`
	RuleIndex *int   `json:"rule_index,omitempty"`
	Key       string `json:"key,omitempty"`
}

// Eligibility is the evaluator's verdict as seen by the gate.
type Eligibility struct {
	Eligible bool
	Failed   []FailedCheck
}

// Survey is the subset of a survey row the gate reads.
type Survey struct {
	ID            id.SurveyID
	Title         string
	IsActive      bool
	AllowMultiple bool
}

// Decision is the outcome of a fill attempt check.
type Decision struct {
	Allowed         bool          `json:"allowed"`
	Reason          Reason        `json:"reason"`
	MissingPackages []string      `json:"missing_packages,omitempty"`
	FailedChecks    []FailedCheck `json:"failed_checks,omitempty"`
}

// Allow returns the decision for a user who may fill the survey.
func Allow() *Decision {
	return &Decision{Allowed: true, Reason: ReasonAllowed}
}

// Deny returns a denial with reason.
func Deny(reason Reason) *Decision {
	return &Decision{Allowed: false, Reason: reason}
}

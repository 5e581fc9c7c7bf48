package models

import (
	pstrings "surveygate/pkg/platform/strings"
)

// ListInput is an admin-entered list field: a comma-separated string or a
// JSON array.
type ListInput = pstrings.CommaList

// RuleInput is the admin payload for authoring a survey's rule document.
type RuleInput struct {
	MinAge          *int                `json:"min_age"`
	MaxAge          *int                `json:"max_age"`
	Degrees         ListInput           `json:"degrees"`
	Cities          ListInput           `json:"cities"`
	FamilyStatus    ListInput           `json:"family_status"`
	WorkTypes       ListInput           `json:"work_types"`
	Gender          string              `json:"gender"`
	PoliticalMember string              `json:"political_member"`
	AdvancedRules   []AdvancedRuleInput `json:"advanced_rules"`
}

// AdvancedRuleInput is one advanced rule as posted by the admin form.
type AdvancedRuleInput struct {
	Key string    `json:"key"`
	Op  string    `json:"op"`
	Val RuleValue `json:"val"`
}

// OptionLists are the configured choices for the enumerated profile fields.
type OptionLists struct {
	Degrees      []string `json:"degrees"`
	Cities       []string `json:"cities"`
	FamilyStatus []string `json:"family_status"`
	WorkTypes    []string `json:"work_types"`
}

package models

import (
	"encoding/json"
	"fmt"
)

// EitherSentinel is the single-value rule meaning "no constraint" for gender
// and political membership. It reads "both" in the admin form's language.
const EitherSentinel = "هەردوو"

// Operator is an advanced rule comparison.
type Operator string

const (
	OpEquals   Operator = "="
	OpIn       Operator = "in"
	OpGTE      Operator = ">="
	OpLTE      Operator = "<="
	OpContains Operator = "contains"
)

// Known reports whether the evaluator implements o.
func (o Operator) Known() bool {
	switch o {
	case OpEquals, OpIn, OpGTE, OpLTE, OpContains:
		return true
	}
	return false
}

// AdvancedRule compares one dynamic profile answer against a value.
type AdvancedRule struct {
	Key string    `json:"key"`
	Op  Operator  `json:"op"`
	Val RuleValue `json:"val"`
}

// RuleDocument is the per-survey eligibility rule set. Absent or empty fields
// impose no constraint.
type RuleDocument struct {
	MinAge          *int           `json:"min_age,omitempty"`
	MaxAge          *int           `json:"max_age,omitempty"`
	Degrees         []string       `json:"degrees,omitempty"`
	Cities          []string       `json:"cities,omitempty"`
	FamilyStatus    []string       `json:"family_status,omitempty"`
	WorkTypes       []string       `json:"work_types,omitempty"`
	Gender          string         `json:"gender,omitempty"`
	PoliticalMember string         `json:"political_member,omitempty"`
	AdvancedRules   []AdvancedRule `json:"advanced_rules,omitempty"`
}

// legacyAdvancedKey is the field name older admin forms wrote the advanced
// rule list under. Decoding accepts both; encoding writes advanced_rules.
const legacyAdvancedKey = "advanced_rules_json"

type ruleDocumentJSON RuleDocument

func (d *RuleDocument) UnmarshalJSON(data []byte) error {
	var aux struct {
		ruleDocumentJSON
		Legacy []AdvancedRule `json:"advanced_rules_json"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("decode rule document: %w", err)
	}
	*d = RuleDocument(aux.ruleDocumentJSON)
	if len(d.AdvancedRules) == 0 && len(aux.Legacy) > 0 {
		d.AdvancedRules = aux.Legacy
	}
	return nil
}

// IsEmpty reports whether d constrains nothing.
func (d *RuleDocument) IsEmpty() bool {
	if d == nil {
		return true
	}
	return d.MinAge == nil && d.MaxAge == nil &&
		len(d.Degrees) == 0 && len(d.Cities) == 0 &&
		len(d.FamilyStatus) == 0 && len(d.WorkTypes) == 0 &&
		d.Gender == "" && d.PoliticalMember == "" &&
		len(d.AdvancedRules) == 0
}

// AnswerKeys returns the distinct question keys the advanced rules read, in
// rule order.
func (d *RuleDocument) AnswerKeys() []string {
	if d == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(d.AdvancedRules))
	keys := make([]string, 0, len(d.AdvancedRules))
	for _, r := range d.AdvancedRules {
		if _, ok := seen[r.Key]; ok {
			continue
		}
		seen[r.Key] = struct{}{}
		keys = append(keys, r.Key)
	}
	return keys
}

package service

import (
	"slices"
	"strings"

	"surveygate/internal/eligibility/models"
)

// Evaluate applies a rule document to one user's profile and answers.
// This is pure domain logic - no I/O, no side effects, safe for concurrent use.
//
// Every stage is evaluated so the failed checks are complete; the verdict is
// the AND of all stages and does not depend on their order:
//  1. Age bounds (inclusive; an unknown age fails any present bound)
//  2. Enumerated membership (an empty set imposes nothing)
//  3. Single-value gender and political membership (blank or the either
//     sentinel imposes nothing)
//  4. Advanced rules over dynamic answers (an empty list imposes nothing)
//
// A nil document means the survey is open to everyone.
func Evaluate(doc *models.RuleDocument, profile *models.Profile, answers models.Answers) models.Result {
	result := models.Result{Eligible: true, Rules: doc, Failed: []models.Check{}}
	if doc == nil {
		return result
	}

	if !agePasses(doc, profile) {
		result.Fail(models.Check{Name: models.CheckAge})
	}

	enumerated := []struct {
		check   models.CheckName
		field   models.ProfileField
		allowed []string
	}{
		{models.CheckDegree, models.FieldDegree, doc.Degrees},
		{models.CheckCity, models.FieldCity, doc.Cities},
		{models.CheckFamilyStatus, models.FieldFamilyStatus, doc.FamilyStatus},
		{models.CheckWorkType, models.FieldWorkType, doc.WorkTypes},
	}
	for _, e := range enumerated {
		if !memberPasses(e.allowed, profile.Field(e.field)) {
			result.Fail(models.Check{Name: e.check})
		}
	}

	if !singlePasses(doc.Gender, profile.Field(models.FieldGender)) {
		result.Fail(models.Check{Name: models.CheckGender})
	}
	if !singlePasses(doc.PoliticalMember, profile.Field(models.FieldPoliticalMember)) {
		result.Fail(models.Check{Name: models.CheckPoliticalMember})
	}

	for i, rule := range doc.AdvancedRules {
		if !rule.Op.Known() {
			result.UnknownOps = append(result.UnknownOps, rule.Op)
		}
		if !AdvancedPasses(rule, answers.Get(rule.Key)) {
			idx := i
			result.Fail(models.Check{
				Name:      models.CheckAdvanced,
				RuleIndex: &idx,
				Key:       rule.Key,
				Op:        rule.Op,
			})
		}
	}

	return result
}

// AdvancedPasses applies one advanced rule to the user's answer, where an
// unanswered question is the empty string. Unknown operators pass.
func AdvancedPasses(rule models.AdvancedRule, answer string) bool {
	switch rule.Op {
	case models.OpEquals:
		return answer == rule.Val.String()
	case models.OpIn:
		return slices.Contains(rule.Val.Members(), answer)
	case models.OpGTE, models.OpLTE:
		a, ok := models.ParseFloat(answer)
		if !ok {
			return false
		}
		v, ok := rule.Val.Float()
		if !ok {
			return false
		}
		if rule.Op == models.OpGTE {
			return a >= v
		}
		return a <= v
	case models.OpContains:
		return strings.Contains(answer, rule.Val.String())
	default:
		return true
	}
}

func agePasses(doc *models.RuleDocument, profile *models.Profile) bool {
	if doc.MinAge == nil && doc.MaxAge == nil {
		return true
	}
	age, ok := profile.KnownAge()
	if !ok {
		return false
	}
	if doc.MinAge != nil && age < *doc.MinAge {
		return false
	}
	if doc.MaxAge != nil && age > *doc.MaxAge {
		return false
	}
	return true
}

func memberPasses(allowed []string, value *string) bool {
	if len(allowed) == 0 {
		return true
	}
	if value == nil {
		return false
	}
	return slices.Contains(allowed, *value)
}

func singlePasses(required string, value *string) bool {
	if required == "" || required == models.EitherSentinel {
		return true
	}
	return value != nil && *value == required
}

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"surveygate/internal/eligibility/models"
	"surveygate/pkg/attrs"
	id "surveygate/pkg/domain"
	dErrors "surveygate/pkg/domain-errors"
	"surveygate/pkg/platform/audit"
	"surveygate/pkg/platform/sentinel"
	pstrings "surveygate/pkg/platform/strings"
	"surveygate/pkg/requestcontext"
)

const maxAge = 150

// BuildRuleDocument normalizes an admin payload into a rule document. List
// fields are split on commas, trimmed, emptied of blanks and de-duplicated.
// When options is non-nil every enumerated value must be one of the
// configured choices for its field. Unknown advanced operators are accepted.
func BuildRuleDocument(input models.RuleInput, options *models.OptionLists) (*models.RuleDocument, error) {
	doc := &models.RuleDocument{
		MinAge:          input.MinAge,
		MaxAge:          input.MaxAge,
		Degrees:         normalizeList(input.Degrees),
		Cities:          normalizeList(input.Cities),
		FamilyStatus:    normalizeList(input.FamilyStatus),
		WorkTypes:       normalizeList(input.WorkTypes),
		Gender:          strings.TrimSpace(input.Gender),
		PoliticalMember: strings.TrimSpace(input.PoliticalMember),
	}

	if err := validateAge("min_age", doc.MinAge); err != nil {
		return nil, err
	}
	if err := validateAge("max_age", doc.MaxAge); err != nil {
		return nil, err
	}
	if doc.MinAge != nil && doc.MaxAge != nil && *doc.MinAge > *doc.MaxAge {
		return nil, dErrors.New(dErrors.CodeValidation, "min_age must not exceed max_age")
	}

	if options != nil {
		checks := []struct {
			field   string
			values  []string
			allowed []string
		}{
			{"degrees", doc.Degrees, options.Degrees},
			{"cities", doc.Cities, options.Cities},
			{"family_status", doc.FamilyStatus, options.FamilyStatus},
			{"work_types", doc.WorkTypes, options.WorkTypes},
		}
		for _, c := range checks {
			for _, v := range c.values {
				if !slices.Contains(c.allowed, v) {
					return nil, dErrors.Newf(dErrors.CodeValidation, "%s contains unknown value %q", c.field, v)
				}
			}
		}
	}

	for i, in := range input.AdvancedRules {
		key := strings.TrimSpace(in.Key)
		if _, err := id.ParseQuestionKey(key); err != nil {
			return nil, dErrors.Newf(dErrors.CodeValidation, "advanced_rules[%d].key must look like q_<question id>", i)
		}
		op := strings.TrimSpace(in.Op)
		if op == "" {
			return nil, dErrors.Newf(dErrors.CodeValidation, "advanced_rules[%d].op is required", i)
		}
		doc.AdvancedRules = append(doc.AdvancedRules, models.AdvancedRule{
			Key: key,
			Op:  models.Operator(op),
			Val: in.Val,
		})
	}

	return doc, nil
}

func normalizeList(in models.ListInput) []string {
	out := pstrings.DedupeAndTrim(in)
	if len(out) == 0 {
		return nil
	}
	return out
}

func validateAge(field string, v *int) error {
	if v == nil {
		return nil
	}
	if *v < 0 || *v > maxAge {
		return dErrors.Newf(dErrors.CodeValidation, "%s must be between 0 and %d", field, maxAge)
	}
	return nil
}

// SaveRules validates and stores surveyID's rule document, replacing any
// previous one.
func (s *Service) SaveRules(ctx context.Context, surveyID id.SurveyID, input models.RuleInput) (*models.RuleDocument, error) {
	var options *models.OptionLists
	if s.options != nil {
		lists, err := s.options.OptionLists(ctx)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile options")
		}
		options = &lists
	}

	doc, err := BuildRuleDocument(input, options)
	if err != nil {
		return nil, err
	}
	for i, r := range doc.AdvancedRules {
		if !r.Op.Known() {
			s.logger.WarnContext(ctx, "saving advanced rule with unknown operator; it will always pass",
				"request_id", requestcontext.RequestID(ctx),
				"survey_id", surveyID,
				"rule_index", i,
				"op", r.Op,
			)
		}
	}

	if err := s.store.SaveRules(ctx, surveyID, doc); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save eligibility rules")
	}
	s.invalidate(ctx, surveyID)
	s.metrics.IncrementRuleWrite("save")
	s.logAudit(ctx, string(audit.EventSurveyRulesUpdated),
		"survey_id", surveyID,
		"advanced_rules", len(doc.AdvancedRules),
	)
	return doc, nil
}

// GetRules returns the stored document for surveyID.
func (s *Service) GetRules(ctx context.Context, surveyID id.SurveyID) (*models.RuleDocument, error) {
	doc, err := s.store.FindRules(ctx, surveyID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load eligibility rules")
	}
	if doc == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "survey has no eligibility rules")
	}
	return doc, nil
}

// DeleteRules removes surveyID's document, opening the survey to everyone.
func (s *Service) DeleteRules(ctx context.Context, surveyID id.SurveyID) error {
	if err := s.store.DeleteRules(ctx, surveyID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "survey has no eligibility rules")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete eligibility rules")
	}
	s.invalidate(ctx, surveyID)
	s.metrics.IncrementRuleWrite("delete")
	s.logAudit(ctx, string(audit.EventSurveyRulesDeleted), "survey_id", surveyID)
	return nil
}

// invalidate drops the cached document. A failure is logged; the entry
// expires on its TTL.
func (s *Service) invalidate(ctx context.Context, surveyID id.SurveyID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, surveyID); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate cached rules",
			"request_id", requestcontext.RequestID(ctx),
			"survey_id", surveyID,
			"error", err,
		)
	}
}

func (s *Service) logAudit(ctx context.Context, event string, attributes ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "log_type", "audit")
	s.logger.InfoContext(ctx, event, args...)

	if s.auditor == nil {
		return
	}
	surveyID, _ := attrs.Extract[id.SurveyID](attributes, "survey_id")
	if err := s.auditor.Emit(ctx, audit.Event{
		SurveyID:  surveyID,
		Subject:   fmt.Sprintf("survey:%s", surveyID),
		Action:    event,
		RequestID: requestID,
		ActorID:   "admin",
	}); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event",
			"event", event,
			"request_id", requestID,
			"error", err,
		)
	}
}

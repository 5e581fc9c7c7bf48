package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveygate/internal/eligibility/models"
	dErrors "surveygate/pkg/domain-errors"
)

func TestBuildRuleDocument(t *testing.T) {
	t.Run("normalizes lists and drops empty fields", func(t *testing.T) {
		doc, err := BuildRuleDocument(models.RuleInput{
			Degrees:         models.ListInput{"BA", " MA", "BA"},
			Cities:          models.ListInput{"", "  "},
			Gender:          "  M ",
			PoliticalMember: models.EitherSentinel,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"BA", "MA"}, doc.Degrees)
		assert.Nil(t, doc.Cities)
		assert.Equal(t, "M", doc.Gender)
		assert.Equal(t, models.EitherSentinel, doc.PoliticalMember)
	})

	t.Run("empty input builds an empty document", func(t *testing.T) {
		doc, err := BuildRuleDocument(models.RuleInput{}, nil)
		require.NoError(t, err)
		assert.True(t, doc.IsEmpty())
	})

	t.Run("keeps unknown operators", func(t *testing.T) {
		doc, err := BuildRuleDocument(models.RuleInput{AdvancedRules: []models.AdvancedRuleInput{
			{Key: " q_3 ", Op: "!=", Val: models.StringValue("x")},
		}}, nil)
		require.NoError(t, err)
		assert.Equal(t, "q_3", doc.AdvancedRules[0].Key)
		assert.Equal(t, models.Operator("!="), doc.AdvancedRules[0].Op)
	})

	options := &models.OptionLists{Degrees: []string{"BA"}, Cities: []string{"Erbil"}}
	failures := []struct {
		name    string
		input   models.RuleInput
		options *models.OptionLists
		msg     string
	}{
		{"negative age", models.RuleInput{MinAge: intPtr(-1)}, nil, "min_age must be between 0 and 150"},
		{"age too large", models.RuleInput{MaxAge: intPtr(151)}, nil, "max_age must be between 0 and 150"},
		{"inverted bounds", models.RuleInput{MinAge: intPtr(30), MaxAge: intPtr(20)}, nil, "min_age must not exceed max_age"},
		{"unknown degree", models.RuleInput{Degrees: models.ListInput{"PhD"}}, options, `degrees contains unknown value "PhD"`},
		{"bad key", models.RuleInput{AdvancedRules: []models.AdvancedRuleInput{{Key: "age", Op: "="}}}, nil, "advanced_rules[0].key must look like q_<question id>"},
		{"missing op", models.RuleInput{AdvancedRules: []models.AdvancedRuleInput{{Key: "q_1", Op: " "}}}, nil, "advanced_rules[0].op is required"},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRuleDocument(tt.input, tt.options)
			assert.ErrorIs(t, err, dErrors.New(dErrors.CodeValidation, tt.msg))
		})
	}

	t.Run("option lists are not consulted when absent", func(t *testing.T) {
		_, err := BuildRuleDocument(models.RuleInput{Degrees: models.ListInput{"PhD"}}, nil)
		assert.NoError(t, err)
	})
}

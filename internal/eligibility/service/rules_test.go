package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveygate/internal/eligibility/models"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func mustDoc(t *testing.T, raw string) *models.RuleDocument {
	t.Helper()
	var doc models.RuleDocument
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return &doc
}

func checkNames(r models.Result) []models.CheckName {
	names := make([]models.CheckName, 0, len(r.Failed))
	for _, c := range r.Failed {
		names = append(names, c.Name)
	}
	return names
}

func TestEvaluate_NoDocumentAdmitsEveryone(t *testing.T) {
	result := Evaluate(nil, nil, nil)
	assert.True(t, result.Eligible)
	assert.Nil(t, result.Rules)
	assert.Empty(t, result.Failed)

	result = Evaluate(nil, &models.Profile{Age: intPtr(5)}, models.Answers{"q_1": "x"})
	assert.True(t, result.Eligible)
}

func TestEvaluate_EmptyDocumentIsVacuouslyTrue(t *testing.T) {
	doc := mustDoc(t, `{"degrees":[],"cities":[],"gender":"","advanced_rules":[]}`)
	assert.True(t, doc.IsEmpty())

	result := Evaluate(doc, nil, nil)
	assert.True(t, result.Eligible)
	assert.Same(t, doc, result.Rules)
}

func TestEvaluate_AgeBounds(t *testing.T) {
	doc := &models.RuleDocument{MinAge: intPtr(18)}

	tests := []struct {
		name    string
		profile *models.Profile
		want    bool
	}{
		{"no profile record", nil, false},
		{"age absent", &models.Profile{}, false},
		{"age zero counts as unknown", &models.Profile{Age: intPtr(0)}, false},
		{"below minimum", &models.Profile{Age: intPtr(17)}, false},
		{"at minimum", &models.Profile{Age: intPtr(18)}, true},
		{"above minimum", &models.Profile{Age: intPtr(40)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(doc, tt.profile, nil).Eligible)
		})
	}

	t.Run("maximum is inclusive", func(t *testing.T) {
		doc := &models.RuleDocument{MaxAge: intPtr(30)}
		assert.True(t, Evaluate(doc, &models.Profile{Age: intPtr(30)}, nil).Eligible)
		assert.False(t, Evaluate(doc, &models.Profile{Age: intPtr(31)}, nil).Eligible)
		assert.False(t, Evaluate(doc, &models.Profile{}, nil).Eligible)
	})
}

func TestEvaluate_EnumeratedMembership(t *testing.T) {
	doc := &models.RuleDocument{Degrees: []string{"BA", "MA"}}

	assert.True(t, Evaluate(doc, &models.Profile{Degree: strPtr("BA")}, nil).Eligible)
	assert.False(t, Evaluate(doc, &models.Profile{Degree: strPtr("PhD")}, nil).Eligible)
	assert.False(t, Evaluate(doc, &models.Profile{}, nil).Eligible)
	assert.False(t, Evaluate(doc, nil, nil).Eligible)
	assert.False(t, Evaluate(doc, &models.Profile{Degree: strPtr("ba")}, nil).Eligible, "membership is case-sensitive")

	each := map[models.CheckName]*models.RuleDocument{
		models.CheckCity:         {Cities: []string{"Erbil"}},
		models.CheckFamilyStatus: {FamilyStatus: []string{"married"}},
		models.CheckWorkType:     {WorkTypes: []string{"private"}},
	}
	for check, doc := range each {
		result := Evaluate(doc, &models.Profile{}, nil)
		assert.Equal(t, []models.CheckName{check}, checkNames(result))
	}
}

func TestEvaluate_SingleValueFilters(t *testing.T) {
	t.Run("either sentinel passes regardless of profile", func(t *testing.T) {
		doc := &models.RuleDocument{Gender: models.EitherSentinel, PoliticalMember: models.EitherSentinel}
		assert.True(t, Evaluate(doc, nil, nil).Eligible)
		assert.True(t, Evaluate(doc, &models.Profile{Gender: strPtr("F")}, nil).Eligible)
	})

	t.Run("exact match required", func(t *testing.T) {
		doc := &models.RuleDocument{Gender: "M"}
		assert.True(t, Evaluate(doc, &models.Profile{Gender: strPtr("M")}, nil).Eligible)
		assert.False(t, Evaluate(doc, &models.Profile{Gender: strPtr("m")}, nil).Eligible)
		assert.False(t, Evaluate(doc, &models.Profile{}, nil).Eligible)
	})

	t.Run("political membership", func(t *testing.T) {
		doc := &models.RuleDocument{PoliticalMember: "yes"}
		result := Evaluate(doc, &models.Profile{PoliticalMember: strPtr("no")}, nil)
		assert.Equal(t, []models.CheckName{models.CheckPoliticalMember}, checkNames(result))
	})
}

func TestAdvancedPasses(t *testing.T) {
	tests := []struct {
		name   string
		rule   string
		answer string
		want   bool
	}{
		{"equals string", `{"key":"q_1","op":"=","val":"yes"}`, "yes", true},
		{"equals mismatch", `{"key":"q_1","op":"=","val":"yes"}`, "no", false},
		{"equals number literal", `{"key":"q_1","op":"=","val":3}`, "3", true},
		{"equals float literal keeps its text", `{"key":"q_1","op":"=","val":3.0}`, "3.0", true},
		{"equals boolean", `{"key":"q_1","op":"=","val":true}`, "True", true},
		{"in comma string", `{"key":"q_5","op":"in","val":"red,blue"}`, "blue", true},
		{"in comma string trims", `{"key":"q_5","op":"in","val":" red , blue "}`, "blue", true},
		{"in comma string miss", `{"key":"q_5","op":"in","val":"red,blue"}`, "green", false},
		{"in empty answer", `{"key":"q_5","op":"in","val":"red,blue"}`, "", false},
		{"in list containing empty", `{"key":"q_5","op":"in","val":["red",""]}`, "", true},
		{"in list", `{"key":"q_5","op":"in","val":["red","blue"]}`, "red", true},
		{"in list of numbers", `{"key":"q_5","op":"in","val":[1,2]}`, "2", true},
		{"in list does not split members", `{"key":"q_5","op":"in","val":["a,b"]}`, "a", false},
		{"gte numeric", `{"key":"q_9","op":">=","val":18}`, "18", true},
		{"gte below", `{"key":"q_9","op":">=","val":18}`, "17.5", false},
		{"gte answer with spaces", `{"key":"q_9","op":">=","val":18}`, " 20 ", true},
		{"gte non numeric answer", `{"key":"q_9","op":">=","val":18}`, "n/a", false},
		{"gte empty answer", `{"key":"q_9","op":">=","val":18}`, "", false},
		{"gte string value", `{"key":"q_9","op":">=","val":"18"}`, "19", true},
		{"gte non numeric value", `{"key":"q_9","op":">=","val":"adult"}`, "19", false},
		{"gte list value", `{"key":"q_9","op":">=","val":["18"]}`, "19", false},
		{"lte numeric", `{"key":"q_9","op":"<=","val":"2.5"}`, "2.5", true},
		{"lte above", `{"key":"q_9","op":"<=","val":"2.5"}`, "3", false},
		{"contains", `{"key":"q_2","op":"contains","val":"car"}`, "I own a car", true},
		{"contains miss", `{"key":"q_2","op":"contains","val":"car"}`, "bike", false},
		{"contains empty value", `{"key":"q_2","op":"contains","val":""}`, "", true},
		{"unknown operator passes", `{"key":"q_2","op":"~=","val":"x"}`, "anything", true},
		{"null value compares as empty", `{"key":"q_2","op":"=","val":null}`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rule models.AdvancedRule
			require.NoError(t, json.Unmarshal([]byte(tt.rule), &rule))
			assert.Equal(t, tt.want, AdvancedPasses(rule, tt.answer))
		})
	}
}

func TestEvaluate_AdvancedRules(t *testing.T) {
	doc := mustDoc(t, `{"advanced_rules":[
		{"key":"q_5","op":"in","val":"red,blue"},
		{"key":"q_9","op":">=","val":18},
		{"key":"q_2","op":"~=","val":"x"}
	]}`)

	t.Run("missing answers read as empty", func(t *testing.T) {
		result := Evaluate(doc, nil, nil)
		assert.False(t, result.Eligible)
		require.Len(t, result.Failed, 2)
		assert.Equal(t, "q_5", result.Failed[0].Key)
		assert.Equal(t, 0, *result.Failed[0].RuleIndex)
		assert.Equal(t, models.OpGTE, result.Failed[1].Op)
		assert.Equal(t, 1, *result.Failed[1].RuleIndex)
	})

	t.Run("all satisfied", func(t *testing.T) {
		result := Evaluate(doc, nil, models.Answers{"q_5": "blue", "q_9": "21"})
		assert.True(t, result.Eligible)
		assert.Equal(t, []models.Operator{"~="}, result.UnknownOps)
	})

	t.Run("legacy field name", func(t *testing.T) {
		legacy := mustDoc(t, `{"advanced_rules_json":[{"key":"q_5","op":"=","val":"x"}]}`)
		assert.False(t, Evaluate(legacy, nil, models.Answers{"q_5": "y"}).Eligible)
		assert.True(t, Evaluate(legacy, nil, models.Answers{"q_5": "x"}).Eligible)
	})
}

func TestEvaluate_ErbilScenario(t *testing.T) {
	doc := mustDoc(t, `{"min_age":21,"cities":["Erbil"],"gender":"M"}`)

	tests := []struct {
		user    string
		profile *models.Profile
		want    bool
		failed  []models.CheckName
	}{
		{"A", &models.Profile{Age: intPtr(25), City: strPtr("Erbil"), Gender: strPtr("M")}, true, []models.CheckName{}},
		{"B", &models.Profile{Age: intPtr(19), City: strPtr("Erbil"), Gender: strPtr("M")}, false, []models.CheckName{models.CheckAge}},
		{"C", &models.Profile{Age: intPtr(30), City: strPtr("Baghdad"), Gender: strPtr("M")}, false, []models.CheckName{models.CheckCity}},
		{"D", &models.Profile{Age: intPtr(30), City: strPtr("Erbil"), Gender: strPtr("F")}, false, []models.CheckName{models.CheckGender}},
	}
	for _, tt := range tests {
		t.Run("user "+tt.user, func(t *testing.T) {
			result := Evaluate(doc, tt.profile, nil)
			assert.Equal(t, tt.want, result.Eligible)
			assert.Equal(t, tt.failed, checkNames(result))
		})
	}
}

func TestEvaluate_ReportsEveryFailedStage(t *testing.T) {
	doc := mustDoc(t, `{
		"min_age":30,"degrees":["MA"],"cities":["Duhok"],"family_status":["single"],
		"work_types":["gov"],"gender":"F","political_member":"no",
		"advanced_rules":[{"key":"q_1","op":"=","val":"x"}]
	}`)

	result := Evaluate(doc, nil, nil)
	assert.False(t, result.Eligible)
	assert.Equal(t, []models.CheckName{
		models.CheckAge, models.CheckDegree, models.CheckCity, models.CheckFamilyStatus,
		models.CheckWorkType, models.CheckGender, models.CheckPoliticalMember, models.CheckAdvanced,
	}, checkNames(result))
}

func TestEvaluate_Idempotent(t *testing.T) {
	doc := mustDoc(t, `{"min_age":18,"cities":["Erbil"],"advanced_rules":[{"key":"q_3","op":"contains","val":"a"}]}`)
	profile := &models.Profile{Age: intPtr(20), City: strPtr("Erbil")}
	answers := models.Answers{"q_3": "banana"}

	first := Evaluate(doc, profile, answers)
	second := Evaluate(doc, profile, answers)
	assert.Equal(t, first, second)
	assert.Equal(t, models.Answers{"q_3": "banana"}, answers, "inputs are not mutated")
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleValue_Decoding(t *testing.T) {
	tests := []struct {
		raw     string
		text    string
		members []string
		float   float64
		floatOK bool
		list    bool
	}{
		{`"red, blue"`, "red, blue", []string{"red", "blue"}, 0, false, false},
		{`18`, "18", []string{"18"}, 18, true, false},
		{`2.50`, "2.50", []string{"2.50"}, 2.5, true, false},
		{`["a","b"]`, "a,b", []string{"a", "b"}, 0, false, true},
		{`[1, true, null]`, "1,True,", []string{"1", "True", ""}, 0, false, true},
		{`false`, "False", []string{"False"}, 0, true, false},
		{`null`, "", []string{""}, 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var v RuleValue
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &v))
			assert.Equal(t, tt.text, v.String())
			assert.Equal(t, tt.members, v.Members())
			assert.Equal(t, tt.list, v.IsList())
			f, ok := v.Float()
			assert.Equal(t, tt.floatOK, ok)
			if ok {
				assert.InDelta(t, tt.float, f, 1e-9)
			}
		})
	}
}

func TestRuleValue_EncodingKeepsShape(t *testing.T) {
	for _, raw := range []string{`"x"`, `18`, `["a","b"]`, `true`} {
		var v RuleValue
		require.NoError(t, json.Unmarshal([]byte(raw), &v))
		out, err := json.Marshal(v)
		require.NoError(t, err)
		assert.JSONEq(t, raw, string(out))
	}
}

func TestRuleDocument_LegacyAdvancedKey(t *testing.T) {
	var doc RuleDocument
	require.NoError(t, json.Unmarshal([]byte(`{
		"min_age": 21,
		"advanced_rules_json": [{"key":"q_4","op":"in","val":"a,b"}]
	}`), &doc))

	require.Len(t, doc.AdvancedRules, 1)
	assert.Equal(t, OpIn, doc.AdvancedRules[0].Op)
	assert.Equal(t, 21, *doc.MinAge)

	out, err := json.Marshal(&doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"advanced_rules":`)
	assert.NotContains(t, string(out), "advanced_rules_json")
}

func TestRuleDocument_AnswerKeys(t *testing.T) {
	doc := &RuleDocument{AdvancedRules: []AdvancedRule{
		{Key: "q_2"}, {Key: "q_1"}, {Key: "q_2"},
	}}
	assert.Equal(t, []string{"q_2", "q_1"}, doc.AnswerKeys())

	var nilDoc *RuleDocument
	assert.Nil(t, nilDoc.AnswerKeys())
	assert.True(t, nilDoc.IsEmpty())
}

func TestListInput_AcceptsStringOrList(t *testing.T) {
	var in RuleInput
	require.NoError(t, json.Unmarshal([]byte(`{"cities":"Erbil, Duhok","degrees":["BA"]}`), &in))
	assert.Equal(t, ListInput{"Erbil", " Duhok"}, in.Cities)
	assert.Equal(t, ListInput{"BA"}, in.Degrees)

	err := json.Unmarshal([]byte(`{"cities":5}`), &in)
	assert.Error(t, err)
}

func TestProfile_KnownAge(t *testing.T) {
	var nilProfile *Profile
	_, ok := nilProfile.KnownAge()
	assert.False(t, ok)

	zero := 0
	_, ok = (&Profile{Age: &zero}).KnownAge()
	assert.False(t, ok)

	age := 33
	got, ok := (&Profile{Age: &age}).KnownAge()
	assert.True(t, ok)
	assert.Equal(t, 33, got)
}

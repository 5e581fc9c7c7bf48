package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "surveygate/pkg/domain-errors"
)

// TestParseID_Invariants validates the parsing invariant:
// "IDs must be positive decimal integers with no surrounding noise"
func TestParseID_Invariants(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"SQL injection attempt", "1; DROP TABLE users;--", true},
		{"Negative", "-5", true},
		{"Zero", "0", true},
		{"Leading plus", "+5", true},
		{"Whitespace padded", " 5 ", true},
		{"Oversized input", strings.Repeat("9", 40), true},
		{"Overflows int64", "9999999999999999999", true},
		{"Empty string", "", true},
		{"Valid", "42", false},
		{"Valid with leading zero", "007", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUserID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestQuestionKey(t *testing.T) {
	t.Run("round trips through Key", func(t *testing.T) {
		qid := QuestionID(5)
		assert.Equal(t, "q_5", qid.Key())

		parsed, err := ParseQuestionKey(qid.Key())
		require.NoError(t, err)
		assert.Equal(t, qid, parsed)
	})

	t.Run("rejects missing prefix", func(t *testing.T) {
		_, err := ParseQuestionKey("5")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects non numeric id", func(t *testing.T) {
		_, err := ParseQuestionKey("q_age")
		require.Error(t, err)
	})
}

// TestAllIDTypes_ConsistentBehavior ensures all ID types share parsing rules.
func TestAllIDTypes_ConsistentBehavior(t *testing.T) {
	for _, input := range []string{"", "abc", "0"} {
		t.Run("all reject: "+input, func(t *testing.T) {
			_, errUser := ParseUserID(input)
			_, errSurvey := ParseSurveyID(input)
			_, errQuestion := ParseQuestionID(input)

			require.Error(t, errUser)
			require.Error(t, errSurvey)
			require.Error(t, errQuestion)
		})
	}

	assert.True(t, UserID(0).IsNil())
	assert.False(t, SurveyID(3).IsNil())
}

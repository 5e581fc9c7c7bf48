// Package domain holds the typed identifiers shared across modules.
//
// Identifiers in the web application are positive integer row IDs. Wrapping
// them in distinct types keeps a SurveyID from being passed where a UserID is
// expected.
package domain

import (
	"strconv"
	"strings"

	dErrors "surveygate/pkg/domain-errors"
)

type (
	UserID     int64
	SurveyID   int64
	QuestionID int64
)

// maxIDLength bounds the decimal form of an int64.
const maxIDLength = 19

// questionKeyPrefix prefixes dynamic profile answer keys ("q_<question_id>").
const questionKeyPrefix = "q_"

func (id UserID) String() string     { return strconv.FormatInt(int64(id), 10) }
func (id SurveyID) String() string   { return strconv.FormatInt(int64(id), 10) }
func (id QuestionID) String() string { return strconv.FormatInt(int64(id), 10) }

func (id UserID) IsNil() bool     { return id <= 0 }
func (id SurveyID) IsNil() bool   { return id <= 0 }
func (id QuestionID) IsNil() bool { return id <= 0 }

// Key returns the dynamic profile answer key for the question.
func (id QuestionID) Key() string {
	return questionKeyPrefix + id.String()
}

func ParseUserID(s string) (UserID, error) {
	v, err := parsePositive(s, "user ID")
	return UserID(v), err
}

func ParseSurveyID(s string) (SurveyID, error) {
	v, err := parsePositive(s, "survey ID")
	return SurveyID(v), err
}

func ParseQuestionID(s string) (QuestionID, error) {
	v, err := parsePositive(s, "question ID")
	return QuestionID(v), err
}

// ParseQuestionKey parses an answer key of the form "q_<question_id>".
func ParseQuestionKey(key string) (QuestionID, error) {
	rest, ok := strings.CutPrefix(key, questionKeyPrefix)
	if !ok {
		return 0, dErrors.Newf(dErrors.CodeInvalidInput, "question key %q must start with %q", key, questionKeyPrefix)
	}
	return ParseQuestionID(rest)
}

func parsePositive(s, kind string) (int64, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, kind+" is required")
	}
	if len(s) > maxIDLength {
		return 0, dErrors.New(dErrors.CodeInvalidInput, kind+" is too long")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid "+kind)
	}
	if v <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, kind+" must be positive")
	}
	return v, nil
}

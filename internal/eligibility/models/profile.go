package models

import id "surveygate/pkg/domain"

// Profile is the fixed demographic record a user fills on their profile page.
// Every field is optional; a user without a stored profile is represented by
// a nil *Profile, which evaluates exactly like a Profile with all fields nil.
type Profile struct {
	UserID          id.UserID `json:"user_id"`
	Age             *int      `json:"age,omitempty"`
	Degree          *string   `json:"degree,omitempty"`
	City            *string   `json:"city,omitempty"`
	FamilyStatus    *string   `json:"family_status,omitempty"`
	WorkType        *string   `json:"work_type,omitempty"`
	Gender          *string   `json:"gender,omitempty"`
	PoliticalMember *string   `json:"political_member,omitempty"`
}

// KnownAge returns the user's age when it is recorded. A stored zero is the
// profile form's blank default and counts as unknown.
func (p *Profile) KnownAge() (int, bool) {
	if p == nil || p.Age == nil || *p.Age == 0 {
		return 0, false
	}
	return *p.Age, true
}

// Field returns the value of an enumerated profile field, or nil when absent.
func (p *Profile) Field(f ProfileField) *string {
	if p == nil {
		return nil
	}
	switch f {
	case FieldDegree:
		return p.Degree
	case FieldCity:
		return p.City
	case FieldFamilyStatus:
		return p.FamilyStatus
	case FieldWorkType:
		return p.WorkType
	case FieldGender:
		return p.Gender
	case FieldPoliticalMember:
		return p.PoliticalMember
	default:
		return nil
	}
}

// ProfileField names a scalar string field of Profile.
type ProfileField string

const (
	FieldDegree          ProfileField = "degree"
	FieldCity            ProfileField = "city"
	FieldFamilyStatus    ProfileField = "family_status"
	FieldWorkType        ProfileField = "work_type"
	FieldGender          ProfileField = "gender"
	FieldPoliticalMember ProfileField = "political_member"
)

// Answers maps dynamic profile question keys ("q_<question_id>") to the
// user's free-text answer. Unanswered questions are absent.
type Answers map[string]string

// Get returns the answer for key, or "" when the question is unanswered.
func (a Answers) Get(key string) string {
	return a[key]
}

// Answer is a single stored dynamic profile answer.
type Answer struct {
	UserID      id.UserID
	QuestionID  id.QuestionID
	PackageCode string
	Text        string
}

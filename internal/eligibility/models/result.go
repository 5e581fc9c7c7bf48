package models

// CheckName identifies an evaluation stage.
type CheckName string

const (
	CheckAge             CheckName = "age"
	CheckDegree          CheckName = "degree"
	CheckCity            CheckName = "city"
	CheckFamilyStatus    CheckName = "family_status"
	CheckWorkType        CheckName = "work_type"
	CheckGender          CheckName = "gender"
	CheckPoliticalMember CheckName = "political_member"
	CheckAdvanced        CheckName = "advanced"
)

// Check describes one failed constraint. RuleIndex, Key and Op are set only
// for advanced rules.
type Check struct {
	Name      CheckName `json:"check"`
	RuleIndex *int      `json:"rule_index,omitempty"`
	Key       string    `json:"key,omitempty"`
	Op        Operator  `json:"op,omitempty"`
}

// Result is the outcome of evaluating a rule document against one user.
type Result struct {
	Eligible bool          `json:"eligible"`
	Rules    *RuleDocument `json:"rules"`
	Failed   []Check       `json:"failed_checks"`
	// UnknownOps lists operators that were treated as satisfied.
	UnknownOps []Operator `json:"-"`
}

// Fail records a failed check and clears Eligible.
func (r *Result) Fail(c Check) {
	r.Eligible = false
	r.Failed = append(r.Failed, c)
}

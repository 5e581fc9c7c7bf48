package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	pstrings "surveygate/pkg/platform/strings"
)

type valueKind uint8

const (
	kindString valueKind = iota
	kindNumber
	kindBool
	kindList
)

// RuleValue is the operand of an advanced rule. Admins may store a string, a
// number, a boolean or a list of strings; the JSON boundary normalizes any of
// them into this type so operators never branch on the raw JSON shape.
type RuleValue struct {
	kind   valueKind
	scalar string
	list   []string
}

// StringValue builds a string operand.
func StringValue(s string) RuleValue {
	return RuleValue{kind: kindString, scalar: s}
}

// NumberValue builds a numeric operand from its decimal literal.
func NumberValue(literal string) RuleValue {
	return RuleValue{kind: kindNumber, scalar: literal}
}

// ListValue builds a list operand.
func ListValue(items ...string) RuleValue {
	return RuleValue{kind: kindList, list: append([]string{}, items...)}
}

// IsList reports whether the operand was supplied as a list.
func (v RuleValue) IsList() bool {
	return v.kind == kindList
}

// String is the operand as text, used by "=" and "contains". Lists render as
// their comma-joined members.
func (v RuleValue) String() string {
	if v.kind == kindList {
		return strings.Join(v.list, ",")
	}
	return v.scalar
}

// Members is the operand as a set for "in": a list as given, otherwise the
// text split on commas with each part trimmed.
func (v RuleValue) Members() []string {
	if v.kind == kindList {
		return v.list
	}
	return pstrings.SplitTrim(v.scalar)
}

// Float parses the operand for ">=" and "<=". Lists never parse.
func (v RuleValue) Float() (float64, bool) {
	switch v.kind {
	case kindList:
		return 0, false
	case kindBool:
		if v.scalar == "True" {
			return 1, true
		}
		return 0, true
	default:
		return ParseFloat(v.scalar)
	}
}

// ParseFloat parses s as a float after trimming surrounding whitespace.
func ParseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (v *RuleValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decode rule value: %w", err)
	}

	switch t := raw.(type) {
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			items = append(items, scalarText(item))
		}
		*v = RuleValue{kind: kindList, list: items}
	case json.Number:
		*v = NumberValue(t.String())
	case bool:
		*v = RuleValue{kind: kindBool, scalar: scalarText(t)}
	default:
		*v = StringValue(scalarText(t))
	}
	return nil
}

func (v RuleValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case kindNumber:
		return json.Marshal(json.Number(v.scalar))
	case kindBool:
		return json.Marshal(v.scalar == "True")
	default:
		return json.Marshal(v.scalar)
	}
}

// scalarText renders a decoded JSON value the way the admin form compares it:
// strings verbatim, numbers by their literal, booleans capitalized, null empty.
func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "True"
		}
		return "False"
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

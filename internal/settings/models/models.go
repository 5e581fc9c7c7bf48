package models

import pstrings "surveygate/pkg/platform/strings"

// OptionKey is the app_settings key a profile option list is stored under.
type OptionKey string

const (
	KeyDegrees      OptionKey = "opt_degrees"
	KeyCities       OptionKey = "opt_cities"
	KeyFamilyStatus OptionKey = "opt_famstat"
	KeyWorkTypes    OptionKey = "opt_work_types"
)

// OptionKeys lists every option key in display order.
var OptionKeys = []OptionKey{KeyDegrees, KeyCities, KeyFamilyStatus, KeyWorkTypes}

// OptionLists are the choices offered for the enumerated profile fields and
// accepted in rule documents.
type OptionLists struct {
	Degrees      []string `json:"degrees"`
	Cities       []string `json:"cities"`
	FamilyStatus []string `json:"family_status"`
	WorkTypes    []string `json:"work_types"`
}

// Get returns the list stored under key.
func (o *OptionLists) Get(key OptionKey) []string {
	switch key {
	case KeyDegrees:
		return o.Degrees
	case KeyCities:
		return o.Cities
	case KeyFamilyStatus:
		return o.FamilyStatus
	case KeyWorkTypes:
		return o.WorkTypes
	}
	return nil
}

// Set replaces the list stored under key.
func (o *OptionLists) Set(key OptionKey, values []string) {
	switch key {
	case KeyDegrees:
		o.Degrees = values
	case KeyCities:
		o.Cities = values
	case KeyFamilyStatus:
		o.FamilyStatus = values
	case KeyWorkTypes:
		o.WorkTypes = values
	}
}

// DefaultOptionLists returns the built-in lists used when nothing is stored.
func DefaultOptionLists() OptionLists {
	return OptionLists{
		Degrees:      []string{"بێ بڕوانامە", "سەرەتایی", "ناوەندی", "ئامادەیی", "دبلۆم", "بكالۆریۆس", "دبلۆمی باڵا", "ماستەر", "دكتۆرا"},
		Cities:       []string{"هەولێر", "سلێمانی", "دهۆک", "کەرکوک", "مووسڵ", "بەغداد", "بەصرە", "نەجەف", "کەربەلا"},
		FamilyStatus: []string{"خێزاندار", "سەڵت", "جیابووەوە", "نەمانی هاوسەر"},
		WorkTypes:    []string{"حکومی", "ئەهلی", "سەربەخۆ", "رێکخراوەیی", "حزبی", "هیتر"},
	}
}

// UpdateInput is the admin payload replacing all four lists.
type UpdateInput struct {
	Degrees      pstrings.CommaList `json:"degrees"`
	Cities       pstrings.CommaList `json:"cities"`
	FamilyStatus pstrings.CommaList `json:"family_status"`
	WorkTypes    pstrings.CommaList `json:"work_types"`
}

// Normalize trims, drops blanks and de-duplicates every list. An empty list
// stays empty rather than falling back to the defaults.
func (in UpdateInput) Normalize() OptionLists {
	norm := func(l pstrings.CommaList) []string {
		out := pstrings.DedupeAndTrim(l)
		if out == nil {
			return []string{}
		}
		return out
	}
	return OptionLists{
		Degrees:      norm(in.Degrees),
		Cities:       norm(in.Cities),
		FamilyStatus: norm(in.FamilyStatus),
		WorkTypes:    norm(in.WorkTypes),
	}
}

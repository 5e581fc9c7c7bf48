package domain

import (
	"testing"
)

// FuzzParseSurveyID checks that parsing never panics and that every accepted
// value round-trips through String.
func FuzzParseSurveyID(f *testing.F) {
	f.Add("")
	f.Add("1")
	f.Add("9223372036854775807")
	f.Add("'; DROP TABLE surveys;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseSurveyID(input)
		if err != nil {
			return
		}
		if id.IsNil() {
			t.Errorf("accepted non-positive ID %d", id)
		}
		roundTrip, err := ParseSurveyID(id.String())
		if err != nil {
			t.Errorf("valid ID failed round-trip: %v", err)
		}
		if roundTrip != id {
			t.Error("round-trip changed ID value")
		}
	})
}

package strings

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// CommaList is an admin-entered list. HTML forms post it as one
// comma-separated string; API clients may send a JSON array instead. Parts
// are kept raw; callers normalize with DedupeAndTrim.
type CommaList []string

func (l *CommaList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*l = strings.Split(s, ",")
		return nil
	}
	var items []string
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return errors.New("expected a string or a list of strings")
	}
	*l = items
	return nil
}

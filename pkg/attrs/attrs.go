// Package attrs reads values back out of slog-style key/value attribute
// slices, so one attribute list can feed both a log line and an audit event.
package attrs

// Extract returns the value stored under key in a [key1, value1, key2,
// value2, ...] slice when it has type T.
func Extract[T any](attrs []any, key string) (T, bool) {
	var zero T
	for i := 0; i < len(attrs)-1; i += 2 {
		k, ok := attrs[i].(string)
		if !ok || k != key {
			continue
		}
		v, ok := attrs[i+1].(T)
		if !ok {
			return zero, false
		}
		return v, true
	}
	return zero, false
}

// ExtractString extracts a string value from a key-value attribute slice.
// Returns empty string if the key is not found or the value is not a string.
func ExtractString(attrs []any, key string) string {
	v, _ := Extract[string](attrs, key)
	return v
}

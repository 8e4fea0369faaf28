package dataclient

import (
	"time"
)

// Record value accessors tolerant of the concrete numeric types different
// stores decode into.

// AsInt coerces a record value to int.
func AsInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// AsFloat coerces a record value to float64.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// AsString returns a record value as a string, or "".
func AsString(v any) string {
	s, _ := v.(string)
	return s
}

// AsBool returns a record value as a bool, or false.
func AsBool(v any) bool {
	b, _ := v.(bool)
	return b
}

// AsTime returns a record value as a time.Time, accepting RFC 3339 strings.
func AsTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}

package types

import (
	"fmt"
	"strconv"
)

// Row is a single result row, keyed by column name. Values are whatever the
// driver produced: string, int64, float64, []byte or nil.
type Row map[string]any

// AsString normalizes a payload or row value to a string. Missing values and
// nil become the empty string; numbers are formatted without an exponent.
func AsString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		if x {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// AsInt normalizes a value to an int64, returning 0 for anything that does
// not parse.
func AsInt(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int64:
		return x
	case float64:
		return int64(x)
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// AsFloat normalizes a value to a float64, returning 0 for anything that does
// not parse.
func AsFloat(v any) float64 {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case float64:
		return x
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// AsNullableFloat normalizes a value to a float64 or nil. Used for columns
// like latitude/longitude where absence must stay NULL rather than become 0.
func AsNullableFloat(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case float64:
		return x
	case string:
		if x == "" {
			return nil
		}
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return nil
		}
		return f
	default:
		return nil
	}
}

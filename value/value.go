// Package value provides primitives for coercing loosely-typed extraction
// output into canonical values.
//
// Extraction documents arrive as JSON-decoded map[string]any trees whose
// leaves were produced by scrapers under no type discipline: booleans as
// "yes", dates in half a dozen encodings, keyword lists as delimited
// strings. These helpers collapse that variety without ever failing.
package value

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Text extracts a string from various representations.
// Handles: string, []byte, fmt.Stringer, json.Number, numeric types, nil
func Text(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case json.Number:
		return val.String()
	case fmt.Stringer:
		return val.String()
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// TextOr extracts a string with a default for empty/nil values.
func TextOr(v any, defaultVal string) string {
	s := Text(v)
	if s == "" {
		return defaultVal
	}
	return s
}

// Bool extracts a boolean from various representations.
// Handles: bool, numeric (0/non-0), string ("true"/"1"/"yes"/"on"), nil
func Bool(v any) bool {
	if v == nil {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case json.Number:
		i, _ := val.Int64()
		return i != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		return s == "true" || s == "1" || s == "yes" || s == "on"
	default:
		return false
	}
}

// TextSlice normalizes a value to []string, dropping empty elements.
// Handles: string, []string, []any, nil
func TextSlice(v any) []string {
	if v == nil {
		return nil
	}

	var result []string

	switch val := v.(type) {
	case []string:
		result = make([]string, 0, len(val))
		for _, s := range val {
			if s = strings.TrimSpace(s); s != "" {
				result = append(result, s)
			}
		}
	case []any:
		result = make([]string, 0, len(val))
		for _, item := range val {
			if s := strings.TrimSpace(Text(item)); s != "" {
				result = append(result, s)
			}
		}
	default:
		if s := strings.TrimSpace(Text(v)); s != "" {
			result = []string{s}
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

package normalize

import (
	"encoding/json"
	"fmt"
	"math"
)

// MarshalCanonical encodes a document for persistence. Encoding
// tolerates any stray un-normalized value by stringifying it, so a
// re-persist after normalization can never fail mid-tree even if the
// transform missed something exotic.
func MarshalCanonical(doc map[string]any) []byte {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err == nil {
		return append(data, '\n')
	}

	sanitized, _ := sanitize(doc).(map[string]any)
	data, err = json.MarshalIndent(sanitized, "", "  ")
	if err != nil {
		// Sanitized trees hold only JSON-native values; this is
		// unreachable, but degrade to an empty document over a panic.
		return []byte("{}\n")
	}
	return append(data, '\n')
}

// sanitize rebuilds a tree out of JSON-native values, stringifying
// anything the encoder would reject (NaN, Inf, channels, and whatever
// else a scraper adapter managed to smuggle in).
func sanitize(v any) any {
	switch val := v.(type) {
	case nil, bool, string, int, int64, json.Number:
		return val
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Sprintf("%v", val)
		}
		return val
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = sanitize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = sanitize(item)
		}
		return out
	case []string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

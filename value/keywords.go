package value

import "strings"

// keywordDelimiters in the order they are tried against a raw string.
var keywordDelimiters = []string{",", ";"}

// Keywords normalizes a raw keyword value to an ordered list.
//
// An existing list passes through with its elements coerced to strings.
// A delimited string is split on whichever of ","/";" yields more than
// one non-empty trimmed segment. A bare keyword yields a one-element
// list. Nil and empty input yield an empty list, never nil, so the
// persisted field is always a JSON array.
func Keywords(v any) []string {
	switch v.(type) {
	case []string, []any:
		result := TextSlice(v)
		if result == nil {
			return []string{}
		}
		return result
	}

	s := strings.TrimSpace(Text(v))
	if s == "" {
		return []string{}
	}

	for _, sep := range keywordDelimiters {
		parts := TextSlice(strings.Split(s, sep))
		if len(parts) > 1 {
			return parts
		}
	}

	return []string{s}
}

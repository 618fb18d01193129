// Package normalize transforms raw per-platform extraction documents
// into the canonical schema (version 1.0.0).
//
// Every entry point is total: malformed input degrades field by field to
// null or a default, and the transform never returns an error. Error
// reporting is deliberately left to the validate package.
package normalize

import "strings"

// Resolve walks a dotted path ("a.b.c") through nested maps.
// A plain key is a one-segment path. Any missing segment, or any
// intermediate value that is not a map, yields nil. This lets the
// per-platform field tables reference values buried at inconsistent
// depths without bespoke per-platform code.
func Resolve(m map[string]any, path string) any {
	if m == nil || path == "" {
		return nil
	}

	current := any(m)
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = node[segment]
		if !ok {
			return nil
		}
	}
	return current
}

// Package validate checks persisted canonical documents against every
// guarantee the normalizer is supposed to provide. It is the only place
// error information surfaces: the transform itself is total by design,
// so a separate pass has to be the oracle.
package validate

import (
	"fmt"

	"github.com/editorial-pipelines/canonform/value"
)

// ValidationError represents a validation failure with context.
type ValidationError struct {
	Field   string // Field path (e.g., "manuscripts[0].referees[1].dates")
	Code    string // Error code (e.g., "required", "invalid_date")
	Message string // Human-readable message
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result contains all validation errors for a document.
type Result struct {
	Errors []ValidationError
}

// IsValid returns true if there are no errors.
func (r *Result) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *Result) add(field, code, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Code: code, Message: message})
}

// requiredWrapperKeys must be present on every normalized document.
var requiredWrapperKeys = []string{"schema_version", "extraction_timestamp", "journal", "manuscripts"}

// legacyRefereeDateFields are pre-normalization date field names. Any of
// them sitting at a referee's top level, outside platform_specific,
// means an older un-migrated normalizer produced the file.
var legacyRefereeDateFields = []string{
	"invitation_date", "agreed_date", "due_date", "returned_date",
	"contact_date", "received_date",
	"date_invited", "date_agreed", "date_due", "date_returned",
}

// canonicalDateKeys the referee dates sub-map must carry, exactly.
var canonicalDateKeys = []string{"invited", "agreed", "due", "returned"}

// SchemaVersion every persisted document must declare.
const SchemaVersion = "1.0.0"

// Document validates a normalized wrapper document.
func Document(doc map[string]any) *Result {
	result := &Result{}

	for _, key := range requiredWrapperKeys {
		if _, ok := doc[key]; !ok {
			result.add(key, "required", "missing required key")
		}
	}

	if v, ok := doc["schema_version"]; ok {
		if s := value.Text(v); s != SchemaVersion {
			result.add("schema_version", "wrong_version",
				fmt.Sprintf("got %q, want %q", s, SchemaVersion))
		}
	}

	manuscripts, ok := doc["manuscripts"].([]any)
	if !ok {
		if _, present := doc["manuscripts"]; present {
			result.add("manuscripts", "wrong_type", "manuscripts must be a list")
		}
		return result
	}

	for i, m := range manuscripts {
		field := fmt.Sprintf("manuscripts[%d]", i)
		manuscript, ok := m.(map[string]any)
		if !ok {
			result.add(field, "wrong_type", "manuscript must be an object")
			continue
		}
		validateManuscript(manuscript, field, result)
	}

	return result
}

func validateManuscript(manuscript map[string]any, field string, result *Result) {
	if value.Text(manuscript["manuscript_id"]) == "" {
		result.add(field+".manuscript_id", "required", "manuscript_id is required")
	}
	if value.Text(manuscript["title"]) == "" {
		result.add(field+".title", "required", "title is required")
	}

	if v, ok := manuscript["submission_date"]; ok && v != nil {
		s, isString := v.(string)
		if !isString || !value.IsISODate(s) {
			result.add(field+".submission_date", "invalid_date",
				fmt.Sprintf("got %v, want YYYY-MM-DD or null", v))
		}
	}

	if v, ok := manuscript["keywords"]; ok && v != nil {
		switch v.(type) {
		case []any, []string:
		default:
			result.add(field+".keywords", "wrong_type", "keywords must be a list")
		}
	}

	if authors, ok := manuscript["authors"].([]any); ok {
		for i, a := range authors {
			if author, ok := a.(map[string]any); ok {
				validateAuthor(author, fmt.Sprintf("%s.authors[%d]", field, i), result)
			}
		}
	}
	if referees, ok := manuscript["referees"].([]any); ok {
		for i, r := range referees {
			if referee, ok := r.(map[string]any); ok {
				validateReferee(referee, fmt.Sprintf("%s.referees[%d]", field, i), result)
			}
		}
	}
}

func validateAuthor(author map[string]any, field string, result *Result) {
	if v, ok := author["is_corresponding"]; ok && v != nil {
		if _, isBool := v.(bool); !isBool {
			result.add(field+".is_corresponding", "wrong_type",
				fmt.Sprintf("got %T, want boolean", v))
		}
	}
}

func validateReferee(referee map[string]any, field string, result *Result) {
	dates, ok := referee["dates"].(map[string]any)
	if !ok {
		result.add(field+".dates", "required", "dates sub-map is required")
	} else {
		for _, key := range canonicalDateKeys {
			v, present := dates[key]
			if !present {
				result.add(field+".dates."+key, "required", "canonical date key missing")
				continue
			}
			if v == nil {
				continue
			}
			s, isString := v.(string)
			if !isString || !value.IsISODate(s) {
				result.add(field+".dates."+key, "invalid_date",
					fmt.Sprintf("got %v, want YYYY-MM-DD or null", v))
			}
		}
		if len(dates) != len(canonicalDateKeys) {
			result.add(field+".dates", "extra_keys",
				fmt.Sprintf("got %d keys, want exactly %d", len(dates), len(canonicalDateKeys)))
		}
	}

	// The key regression check: a legacy field at the referee's top
	// level means an un-migrated normalizer wrote this file.
	for _, legacy := range legacyRefereeDateFields {
		if _, present := referee[legacy]; present {
			result.add(field+"."+legacy, "legacy_field",
				"legacy date field outside platform_specific")
		}
	}
}

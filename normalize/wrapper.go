package normalize

import (
	"time"

	"github.com/editorial-pipelines/canonform/journals"
	"github.com/editorial-pipelines/canonform/value"
)

// SchemaVersion is stamped on every normalized document.
const SchemaVersion = "1.0.0"

// timeNow is swapped out by tests.
var timeNow = time.Now

// Wrapper normalizes a full extraction document in place and returns it,
// so call sites can either reuse the value or discard it. Single pass:
//
//  1. Required top-level keys are ensured. An existing journal value
//     always wins over the caller-supplied code, which supports manual
//     overrides and pre-tagged documents.
//  2. schema_version is stamped; extraction_timestamp is stamped only
//     if absent.
//  3. journal_name and platform are resolved from the journal table.
//  4. Every manuscript is normalized, recursing into authors and
//     referees with the resolved platform family.
//
// The function is total. No manuscript's malformed data can abort
// normalization of the rest: each field degrades locally to null or a
// default, and there is no error return.
func Wrapper(doc map[string]any, journalCode string, table *journals.Table) map[string]any {
	if doc == nil {
		doc = make(map[string]any)
	}

	if value.Text(doc["journal"]) == "" {
		doc["journal"] = journalCode
	}
	doc["schema_version"] = SchemaVersion
	if value.Text(doc["extraction_timestamp"]) == "" {
		doc["extraction_timestamp"] = timeNow().UTC().Format(time.RFC3339)
	}

	code := value.Text(doc["journal"])
	if journal, ok := table.Get(code); ok {
		doc["journal_name"] = journal.Name
		doc["platform"] = journal.Platform
	} else {
		// Unknown code: keep whatever the document already carries.
		doc["journal_name"] = value.TextOr(doc["journal_name"], "")
		doc["platform"] = value.TextOr(doc["platform"], "")
	}
	platform := value.Text(doc["platform"])

	manuscripts, _ := doc["manuscripts"].([]any)
	if manuscripts == nil {
		manuscripts = []any{}
	}
	for _, m := range manuscripts {
		if manuscript, ok := m.(map[string]any); ok {
			normalizeManuscript(manuscript, platform)
		}
	}
	doc["manuscripts"] = manuscripts

	if _, ok := doc["summary"].(map[string]any); !ok && doc["summary"] == nil {
		doc["summary"] = map[string]any{}
	}
	if _, ok := doc["errors"].([]any); !ok && doc["errors"] == nil {
		doc["errors"] = []any{}
	}

	return doc
}

func normalizeManuscript(manuscript map[string]any, platform string) {
	// Promote the legacy id alias, never the reverse.
	if value.Text(manuscript["manuscript_id"]) == "" {
		if id := value.Text(manuscript["id"]); id != "" {
			manuscript["manuscript_id"] = id
		}
	}

	manuscript["submission_date"] = value.ISODate(manuscript["submission_date"])
	manuscript["keywords"] = value.Keywords(manuscript["keywords"])

	if authors, ok := manuscript["authors"].([]any); ok {
		for _, a := range authors {
			if author, ok := a.(map[string]any); ok {
				Author(author)
			}
		}
	}
	if referees, ok := manuscript["referees"].([]any); ok {
		for _, r := range referees {
			if referee, ok := r.(map[string]any); ok {
				Referee(referee, platform)
			}
		}
	}
}

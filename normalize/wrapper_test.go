package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/editorial-pipelines/canonform/journals"
)

// canonJSON renders a document deterministically for comparisons.
func canonJSON(doc map[string]any) string {
	return string(MarshalCanonical(doc))
}

func testTable(t *testing.T) *journals.Table {
	t.Helper()
	table, err := journals.Default()
	if err != nil {
		t.Fatalf("loading default journal table: %v", err)
	}
	return table
}

// roundTrip simulates persistence: the normalized in-memory document
// and the document read back from disk must normalize identically.
func roundTrip(t *testing.T, doc map[string]any) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(MarshalCanonical(doc), &out); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	return out
}

func TestWrapperStampsMetadata(t *testing.T) {
	timeNow = func() time.Time { return time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC) }
	defer func() { timeNow = time.Now }()

	doc := map[string]any{
		"manuscripts": []any{},
	}

	got := Wrapper(doc, "mnsc", testTable(t))

	if got["schema_version"] != SchemaVersion {
		t.Errorf("schema_version = %v, want %v", got["schema_version"], SchemaVersion)
	}
	if got["extraction_timestamp"] != "2025-01-15T14:30:00Z" {
		t.Errorf("extraction_timestamp = %v", got["extraction_timestamp"])
	}
	if got["journal"] != "mnsc" {
		t.Errorf("journal = %v, want mnsc", got["journal"])
	}
	if got["journal_name"] != "Management Science" {
		t.Errorf("journal_name = %v", got["journal_name"])
	}
	if got["platform"] != journals.PlatformScholarOne {
		t.Errorf("platform = %v", got["platform"])
	}
	if _, ok := got["summary"].(map[string]any); !ok {
		t.Error("summary not ensured")
	}
	if _, ok := got["errors"].([]any); !ok {
		t.Error("errors not ensured")
	}
}

func TestWrapperExistingJournalWins(t *testing.T) {
	doc := map[string]any{
		"journal":     "siopt",
		"manuscripts": []any{},
	}

	got := Wrapper(doc, "mnsc", testTable(t))

	if got["journal"] != "siopt" {
		t.Errorf("journal = %v, want pre-tagged siopt to win", got["journal"])
	}
	if got["platform"] != journals.PlatformSIAM {
		t.Errorf("platform = %v, want %v", got["platform"], journals.PlatformSIAM)
	}
}

func TestWrapperExistingTimestampKept(t *testing.T) {
	doc := map[string]any{
		"extraction_timestamp": "2024-06-01T08:00:00Z",
		"manuscripts":          []any{},
	}

	got := Wrapper(doc, "mnsc", testTable(t))

	if got["extraction_timestamp"] != "2024-06-01T08:00:00Z" {
		t.Errorf("extraction_timestamp = %v, want original kept", got["extraction_timestamp"])
	}
}

func TestWrapperPromotesLegacyID(t *testing.T) {
	doc := map[string]any{
		"manuscripts": []any{
			map[string]any{"id": "X-001", "title": "A Study"},
		},
	}

	got := Wrapper(doc, "mnsc", testTable(t))

	manuscript := got["manuscripts"].([]any)[0].(map[string]any)
	if manuscript["manuscript_id"] != "X-001" {
		t.Errorf("manuscript_id = %v, want X-001", manuscript["manuscript_id"])
	}
	// Promotion is one-directional: the legacy alias stays untouched.
	if manuscript["id"] != "X-001" {
		t.Errorf("id = %v, want X-001", manuscript["id"])
	}
}

func TestWrapperDoesNotOverwriteManuscriptID(t *testing.T) {
	doc := map[string]any{
		"manuscripts": []any{
			map[string]any{"manuscript_id": "MS-9", "id": "X-001", "title": "A Study"},
		},
	}

	got := Wrapper(doc, "mnsc", testTable(t))

	manuscript := got["manuscripts"].([]any)[0].(map[string]any)
	if manuscript["manuscript_id"] != "MS-9" {
		t.Errorf("manuscript_id = %v, want MS-9", manuscript["manuscript_id"])
	}
}

func TestWrapperNormalizesManuscriptFields(t *testing.T) {
	doc := map[string]any{
		"manuscripts": []any{
			map[string]any{
				"manuscript_id":   "MS-1",
				"title":           "A Study",
				"submission_date": "15-Jan-2025",
				"keywords":        "optimization, duality",
				"authors": []any{
					map[string]any{"name": "A. Author", "role": "Corresponding Author"},
				},
				"referees": []any{
					map[string]any{"name": "R. Reviewer", "invitation_date": "20-Jan-2025"},
				},
			},
		},
	}

	got := Wrapper(doc, "mnsc", testTable(t))

	manuscript := got["manuscripts"].([]any)[0].(map[string]any)
	if manuscript["submission_date"] != "2025-01-15" {
		t.Errorf("submission_date = %v, want 2025-01-15", manuscript["submission_date"])
	}

	keywords, ok := manuscript["keywords"].([]string)
	if !ok || len(keywords) != 2 || keywords[0] != "optimization" {
		t.Errorf("keywords = %v, want [optimization duality]", manuscript["keywords"])
	}

	author := manuscript["authors"].([]any)[0].(map[string]any)
	if author["is_corresponding"] != true {
		t.Errorf("is_corresponding = %v, want true", author["is_corresponding"])
	}

	referee := manuscript["referees"].([]any)[0].(map[string]any)
	dates := referee["dates"].(map[string]any)
	if dates["invited"] != "2025-01-20" {
		t.Errorf("invited = %v, want 2025-01-20", dates["invited"])
	}
}

func TestWrapperUnknownJournalDegrades(t *testing.T) {
	doc := map[string]any{
		"manuscripts": []any{
			map[string]any{
				"manuscript_id": "MS-1",
				"title":         "A Study",
				"referees": []any{
					map[string]any{"invitation_date": "15-Jan-2025"},
				},
			},
		},
	}

	got := Wrapper(doc, "unknown-journal", testTable(t))

	if got["journal_name"] != "" || got["platform"] != "" {
		t.Errorf("journal_name/platform = %v/%v, want empty", got["journal_name"], got["platform"])
	}
	// No platform family: referee dates degrade to all-null, no failure.
	referee := got["manuscripts"].([]any)[0].(map[string]any)["referees"].([]any)[0].(map[string]any)
	dates := referee["dates"].(map[string]any)
	for _, key := range DateKeys {
		if dates[key] != nil {
			t.Errorf("dates[%s] = %v, want nil", key, dates[key])
		}
	}
}

func TestWrapperMalformedEntitiesDegradeLocally(t *testing.T) {
	doc := map[string]any{
		"manuscripts": []any{
			"not a manuscript",
			map[string]any{
				"manuscript_id":   "MS-2",
				"title":           "Survives",
				"submission_date": "not a date",
				"keywords":        nil,
				"authors":         "not a list",
				"referees":        []any{"not a referee"},
			},
		},
	}

	got := Wrapper(doc, "mnsc", testTable(t))

	manuscript := got["manuscripts"].([]any)[1].(map[string]any)
	if manuscript["submission_date"] != nil {
		t.Errorf("submission_date = %v, want nil", manuscript["submission_date"])
	}
	if keywords := manuscript["keywords"].([]string); len(keywords) != 0 {
		t.Errorf("keywords = %v, want empty list", keywords)
	}
}

func TestWrapperIdempotent(t *testing.T) {
	doc := map[string]any{
		"manuscripts": []any{
			map[string]any{
				"id":              "X-001",
				"title":           "A Study",
				"submission_date": "15-Jan-2025",
				"keywords":        "optimization; duality",
				"authors": []any{
					map[string]any{"name": "A. Author", "corresponding": "yes", "orcid": "0000-0001-2345-6789"},
				},
				"referees": []any{
					map[string]any{"name": "R. Reviewer", "invitation_date": "20-Jan-2025", "agreed_date": "25-Jan-2025"},
				},
			},
		},
	}

	once := Wrapper(doc, "mnsc", testTable(t))
	first := canonJSON(once)

	// Apply again to the in-memory result and to the persisted form.
	second := canonJSON(Wrapper(once, "mnsc", testTable(t)))
	if second != first {
		t.Errorf("second pass changed document:\nfirst:  %s\nsecond: %s", first, second)
	}

	reloaded := Wrapper(roundTrip(t, once), "mnsc", testTable(t))
	if third := canonJSON(reloaded); third != first {
		t.Errorf("normalize after reload changed document:\nfirst: %s\nthird: %s", first, third)
	}
}

package normalize

import (
	"github.com/editorial-pipelines/canonform/journals"
	"github.com/editorial-pipelines/canonform/value"
)

// DateKeys are the four canonical referee date keys, in report order.
// Every normalized referee carries exactly these, each ISO-date or null.
var DateKeys = []string{"invited", "agreed", "due", "returned"}

// Canonical referee fields. Everything else moves to platform_specific.
var refereeCanonical = map[string]bool{
	"name":   true,
	"email":  true,
	"status": true,
	"dates":  true,
}

// refereeDateFields maps each platform family's legacy field names onto
// the canonical date keys. The table is closed: adding a journal means
// adding a row here and in the journal table, never a new type. Paths
// may be dotted for platforms that nest their date blocks.
var refereeDateFields = map[string]map[string]string{
	journals.PlatformScholarOne: {
		"invited":  "invitation_date",
		"agreed":   "agreed_date",
		"due":      "due_date",
		"returned": "returned_date",
	},
	journals.PlatformEditorialManager: {
		"invited":  "contact_date",
		"agreed":   "agreed_date",
		"due":      "due_date",
		"returned": "received_date",
	},
	// The SIAM CGI system only exposes first contact.
	journals.PlatformSIAM: {
		"invited": "contact_date",
	},
}

// Referee normalizes a single referee entity in place and returns it.
//
// The canonical dates sub-map is rebuilt with exactly the four keys. A
// value already present under dates takes precedence over any legacy
// field, even when it is null: a second pass must never resurrect a
// legacy value the first pass chose not to use. Every resolved value is
// passed through the date normalizer, which defends idempotence and
// lets newer extractors emit canonical shape directly. An unrecognized
// platform family yields all-null dates rather than failing the batch.
func Referee(referee map[string]any, platform string) map[string]any {
	if referee == nil {
		return nil
	}

	existing, _ := referee["dates"].(map[string]any)
	legacy := refereeDateFields[platform]

	dates := make(map[string]any, len(DateKeys))
	for _, key := range DateKeys {
		if existing != nil {
			if v, ok := existing[key]; ok {
				dates[key] = value.ISODate(v)
				continue
			}
		}
		dates[key] = value.ISODate(Resolve(referee, legacy[key]))
	}
	referee["dates"] = dates

	CollectExtras(referee, refereeCanonical)
	return referee
}

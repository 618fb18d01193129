// Package journals holds the static journal-code lookup table mapping
// each journal code to its full name and editorial platform family.
package journals

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Platform families. The family determines which legacy field names a
// journal's extraction output uses for referee dates.
const (
	PlatformScholarOne       = "scholarone"
	PlatformEditorialManager = "editorial_manager"
	PlatformSIAM             = "siam"
)

// Journal is one row of the lookup table.
type Journal struct {
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	Platform string `yaml:"platform"`
}

// Table maps journal codes to their table rows.
type Table struct {
	journals map[string]Journal
}

// tableConfig is the top-level YAML config format.
type tableConfig struct {
	Version  string    `yaml:"version"`
	Journals []Journal `yaml:"journals"`
}

//go:embed journals.yaml
var embedded []byte

// Default returns the table built from the embedded configuration.
func Default() (*Table, error) {
	return parse(embedded)
}

// LoadFromPath loads a table from a YAML file, replacing the defaults.
func LoadFromPath(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading journal table: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Table, error) {
	var config tableConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing journal table YAML: %w", err)
	}

	t := &Table{journals: make(map[string]Journal, len(config.Journals))}
	for _, j := range config.Journals {
		if j.Code == "" {
			continue
		}
		t.journals[j.Code] = j
	}
	return t, nil
}

// Get retrieves a journal by code.
// An unknown code returns ok=false; callers degrade rather than fail so
// one missing table row never aborts a multi-journal batch.
func (t *Table) Get(code string) (Journal, bool) {
	j, ok := t.journals[code]
	return j, ok
}

// List returns all journals sorted by code.
func (t *Table) List() []Journal {
	result := make([]Journal, 0, len(t.journals))
	for _, j := range t.journals {
		result = append(result, j)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Code < result[j].Code
	})
	return result
}

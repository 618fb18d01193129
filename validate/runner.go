package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/editorial-pipelines/canonform/journals"
	"github.com/editorial-pipelines/canonform/normalize"
)

// Options configures a batch validation run.
type Options struct {
	// Normalize re-runs the wrapper normalizer on every discovered file
	// and re-persists it before validating.
	Normalize bool

	// Journals is the journal-code lookup table. Required when
	// Normalize is set.
	Journals *journals.Table

	// MaxErrorsShown caps the per-file error output. Zero means the
	// default of 3. A file is marked failed on any single violation
	// regardless of how many are shown.
	MaxErrorsShown int
}

// Summary aggregates a batch run. The run passed only if Valid == Total.
type Summary struct {
	Total int
	Valid int
}

// Passed reports whether every file in the tree validated.
func (s *Summary) Passed() bool {
	return s.Valid == s.Total
}

type fileResult struct {
	relPath string
	errors  []ValidationError
	// parseErr records a malformed persisted file: one error, file
	// failed, batch continues.
	parseErr error
}

// Run walks an output root (one sub-directory per journal code, one
// file per extraction run), validates every extraction file, and writes
// a per-file report plus an aggregate line to out. Files flagged
// debug/baseline by name are skipped. The returned error covers only
// I/O problems with the root itself; per-file failures are reported via
// the Summary.
func Run(root string, out io.Writer, opts Options) (*Summary, error) {
	if opts.MaxErrorsShown <= 0 {
		opts.MaxErrorsShown = 3
	}

	dirs, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading output root: %w", err)
	}

	var results []fileResult
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		journalDir := filepath.Join(root, dir.Name())
		entries, err := os.ReadDir(journalDir)
		if err != nil {
			return nil, fmt.Errorf("reading journal directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !isExtractionFile(entry.Name()) {
				slog.Debug("skipping", "file", filepath.Join(dir.Name(), entry.Name()))
				continue
			}
			result := checkFile(filepath.Join(journalDir, entry.Name()), dir.Name(), opts)
			result.relPath = filepath.Join(dir.Name(), entry.Name())
			results = append(results, result)
		}
	}

	summary := &Summary{Total: len(results)}
	for _, r := range results {
		if r.parseErr == nil && len(r.errors) == 0 {
			summary.Valid++
		}
	}

	writeReport(out, results, summary, opts.MaxErrorsShown)
	return summary, nil
}

// isExtractionFile applies the naming convention: extraction-run JSON
// files only, excluding debug and baseline snapshots.
func isExtractionFile(name string) bool {
	if !strings.HasSuffix(name, ".json") || !strings.Contains(name, "_extraction_") {
		return false
	}
	lower := strings.ToLower(name)
	return !strings.Contains(lower, "debug") && !strings.Contains(name, "BASELINE")
}

func checkFile(path, journalCode string, opts Options) fileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileResult{parseErr: err}
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fileResult{parseErr: err}
	}

	if opts.Normalize {
		doc = normalize.Wrapper(doc, journalCode, opts.Journals)
		// Not transactional: the file is overwritten before it is
		// re-validated. Acceptable because the transform is total and
		// idempotent, so an interrupted run reproduces the same bytes.
		if err := os.WriteFile(path, normalize.MarshalCanonical(doc), 0644); err != nil {
			return fileResult{parseErr: err}
		}
	}

	return fileResult{errors: Document(doc).Errors}
}

func writeReport(out io.Writer, results []fileResult, summary *Summary, maxShown int) {
	width := 0
	for _, r := range results {
		if w := runewidth.StringWidth(r.relPath); w > width {
			width = w
		}
	}

	for _, r := range results {
		padded := r.relPath + strings.Repeat(" ", width-runewidth.StringWidth(r.relPath))
		switch {
		case r.parseErr != nil:
			fmt.Fprintf(out, "✗ %s  unreadable\n", padded)
			fmt.Fprintf(out, "    %v\n", r.parseErr)
		case len(r.errors) > 0:
			fmt.Fprintf(out, "✗ %s  %d error(s)\n", padded, len(r.errors))
			shown := r.errors
			if len(shown) > maxShown {
				shown = shown[:maxShown]
			}
			for _, e := range shown {
				fmt.Fprintf(out, "    %s\n", e.Error())
			}
			if rest := len(r.errors) - len(shown); rest > 0 {
				fmt.Fprintf(out, "    ... and %d more\n", rest)
			}
		default:
			fmt.Fprintf(out, "✓ %s  ok\n", padded)
		}
	}

	fmt.Fprintf(out, "\n%d/%d files valid\n", summary.Valid, summary.Total)
}

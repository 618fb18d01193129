package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/editorial-pipelines/canonform/journals"
	"github.com/editorial-pipelines/canonform/normalize"
)

var (
	normalizeInput    string
	normalizeOutput   string
	normalizeJournals string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <journal-code>",
	Short: "Normalize one raw extraction document",
	Long: `Normalize a single raw extraction document into canonical form.

The journal code selects the platform family used for per-platform
field mapping. An existing journal value inside the document wins over
the argument.

Input defaults to stdin, output to stdout.

Examples:
  canonform normalize mnsc -i raw.json -o mnsc_extraction_20250115.json
  cat raw.json | canonform normalize siopt`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeInput, "input", "i", "", "Input file (default: stdin)")
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "output", "o", "", "Output file (default: stdout)")
	normalizeCmd.Flags().StringVar(&normalizeJournals, "journals", "", "Journal table YAML override")
}

func runNormalize(cmd *cobra.Command, args []string) (err error) {
	journalCode := args[0]

	var input io.Reader
	if normalizeInput != "" {
		f, openErr := os.Open(normalizeInput)
		if openErr != nil {
			return fmt.Errorf("opening input file: %w", openErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		input = f
	} else {
		input = os.Stdin
	}

	table, err := loadJournalTable(normalizeJournals)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	doc = normalize.Wrapper(doc, journalCode, table)
	out := normalize.MarshalCanonical(doc)

	if normalizeOutput != "" {
		return os.WriteFile(normalizeOutput, out, 0644)
	}
	_, err = os.Stdout.Write(out)
	return err
}

func loadJournalTable(path string) (*journals.Table, error) {
	if path != "" {
		return journals.LoadFromPath(path)
	}
	return journals.Default()
}

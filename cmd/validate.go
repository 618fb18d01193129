package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/editorial-pipelines/canonform/validate"
)

var (
	validateNormalize bool
	validateJournals  string
	validateMaxErrors int
)

var validateCmd = &cobra.Command{
	Use:   "validate <output-root>",
	Short: "Validate persisted extraction output",
	Long: `Validate every persisted extraction document under an output root.

The root holds one sub-directory per journal code with one JSON file
per extraction run; files flagged debug/baseline by name are skipped.
With --normalize each file is re-run through the normalizer and
rewritten in place before validation.

The process exits non-zero if any file fails, suitable for CI gating.

Examples:
  canonform validate ./output
  canonform validate ./output --normalize`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateNormalize, "normalize", false, "Rewrite files into canonical form before validating")
	validateCmd.Flags().StringVar(&validateJournals, "journals", "", "Journal table YAML override")
	validateCmd.Flags().IntVar(&validateMaxErrors, "max-errors", 3, "Errors shown per file")
}

func runValidate(cmd *cobra.Command, args []string) error {
	root := args[0]

	table, err := loadJournalTable(validateJournals)
	if err != nil {
		return err
	}

	summary, err := validate.Run(root, os.Stdout, validate.Options{
		Normalize:      validateNormalize,
		Journals:       table,
		MaxErrorsShown: validateMaxErrors,
	})
	if err != nil {
		return err
	}

	if !summary.Passed() {
		return fmt.Errorf("%d of %d files invalid", summary.Total-summary.Valid, summary.Total)
	}
	return nil
}

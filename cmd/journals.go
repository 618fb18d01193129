package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var journalsCmd = &cobra.Command{
	Use:   "journals",
	Short: "Manage the journal lookup table",
	Long:  `List and inspect the journal-code lookup table.`,
}

var journalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured journals",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadJournalTable("")
		if err != nil {
			return err
		}

		entries := table.List()
		if len(entries) == 0 {
			fmt.Println("No journals configured")
			return nil
		}

		fmt.Println("Configured journals:")
		for _, j := range entries {
			fmt.Printf("  %s  %s (%s)\n", j.Code, j.Name, j.Platform)
		}
		return nil
	},
}

func init() {
	journalsCmd.AddCommand(journalsListCmd)
}

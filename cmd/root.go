// Package cmd provides CLI commands for canonform.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "canonform",
	Short: "Normalize and validate editorial-platform extraction output",
	Long: `Canonform converts raw manuscript extraction output from journal
editorial platforms (ScholarOne, Editorial Manager, the SIAM system)
into one canonical, schema-versioned document shape, and validates
persisted output trees as a CI gate.

Examples:
  canonform normalize mnsc -i raw.json -o mnsc_extraction_20250115.json
  cat raw.json | canonform normalize mnsc
  canonform validate ./output
  canonform validate ./output --normalize`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(journalsCmd)
}

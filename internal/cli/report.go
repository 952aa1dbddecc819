package cli

import (
	"fmt"
	"os"

	"github.com/selquery/selq/internal/inspect"
	"github.com/selquery/selq/internal/report"
)

// Report generates a report from saved inspection data
func Report(config *Config) error {
	// Step 1: Load inspection data
	store := inspect.NewStore(config.DataFile)
	if !store.Exists() {
		return fmt.Errorf("inspection data not found: %s (run 'selq inspect' first)", store.Path())
	}

	insp, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load inspection data: %w", err)
	}

	// Step 2: Validate format
	if !report.ValidFormat(config.Format) {
		return fmt.Errorf("unsupported format: %s (supported: %v)", config.Format, report.SupportedFormats())
	}

	// Step 3: Get formatter
	formatter, err := report.GetFormatter(report.FormatType(config.Format))
	if err != nil {
		return err
	}

	// Step 4: Format and output
	var writer *os.File
	if config.Output == "-" || config.Output == "" {
		writer = os.Stdout
	} else {
		writer, err = os.Create(config.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer writer.Close()
	}

	if err := formatter.Format(insp, writer); err != nil {
		return fmt.Errorf("failed to format inspection data: %w", err)
	}

	// Success message goes to stderr so it doesn't interfere with stdout output
	if config.Output != "-" && config.Output != "" {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", config.Output)
	}

	return nil
}

// ReportSummary prints a JSON summary of saved inspection data:
// statement counts per file plus table and database tallies
func ReportSummary(config *Config) error {
	store := inspect.NewStore(config.DataFile)
	if !store.Exists() {
		return fmt.Errorf("inspection data not found: %s (run 'selq inspect' first)", store.Path())
	}

	insp, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load inspection data: %w", err)
	}

	summary, err := report.NewJSONReporter().FormatSummary(insp)
	if err != nil {
		return err
	}

	fmt.Println(summary)
	return nil
}

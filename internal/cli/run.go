package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/selquery/selq/internal/discovery"
	"github.com/selquery/selq/internal/inspect"
	"github.com/selquery/selq/internal/logger"
)

// Run executes the inspection workflow: discover SQL files under
// searchPath, inspect every SELECT statement, and save the results
func Run(ctx context.Context, config *Config, searchPath string) (int, error) {
	startTime := time.Now()

	logger.Debug("discovering SQL files in %s", searchPath)

	// Step 1: Discover SQL files
	files, err := discovery.Discover(searchPath)
	if err != nil {
		return 1, fmt.Errorf("failed to discover SQL files: %w", err)
	}

	if len(files) == 0 {
		fmt.Println("No SQL files found (*.sql)")
		return 0, nil
	}

	logger.Debug("found %d SQL file(s)", len(files))

	// Step 2: Inspect files (parallel or sequential based on config)
	pool := inspect.NewWorkerPool(config.Parallelism)
	results := pool.InspectParallel(ctx, files)

	// Step 3: Collect results
	collector := inspect.NewCollector()
	collectErr := collector.CollectResults(results)
	collector.Sort()

	// Step 4: Save inspection data
	store := inspect.NewStore(config.DataFile)
	if err := store.Save(collector.Inspection()); err != nil {
		return 1, fmt.Errorf("failed to save inspection data: %w", err)
	}

	// Step 5: Display summary
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Error("%v", r.Err)
		}
	}

	fmt.Printf("\n")
	fmt.Printf("Files:      %d inspected, %d failed\n", len(files)-failed, failed)
	fmt.Printf("Statements: %d\n", len(collector.Inspection().Statements))
	fmt.Printf("Time:       %v\n", time.Since(startTime).Round(time.Millisecond))
	fmt.Printf("\n")
	fmt.Printf("Inspection data written to %s\n", store.Path())

	if collectErr != nil {
		return 1, nil
	}
	return 0, nil
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/selquery/selq/internal/logger"
	"github.com/selquery/selq/internal/watch"
)

// Watch runs the inspection workflow, then re-runs it whenever SQL files
// under searchPath change. Blocks until ctx is cancelled.
func Watch(ctx context.Context, config *Config, searchPath string) error {
	if _, err := Run(ctx, config, searchPath); err != nil {
		return err
	}

	// Watching a single file means watching its directory
	watchRoot := searchPath
	if info, err := os.Stat(searchPath); err == nil && !info.IsDir() {
		watchRoot = filepath.Dir(searchPath)
	}

	w, err := watch.NewWatcher(watchRoot,
		watch.WithDebounce(config.Debounce),
		watch.WithOnChange(func(paths []string) {
			logger.Info("%d file(s) changed, re-running inspection", len(paths))
			if _, err := Run(ctx, config, searchPath); err != nil {
				logger.Error("inspection failed: %v", err)
			}
		}),
		watch.WithOnError(func(err error) {
			logger.Error("watch failed: %v", err)
		}),
	)
	if err != nil {
		return err
	}

	if err := w.Start(); err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	fmt.Printf("Watching %s for changes (Ctrl-C to stop)\n", watchRoot)

	<-ctx.Done()
	return nil
}

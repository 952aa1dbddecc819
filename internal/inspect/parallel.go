package inspect

import (
	"context"
	"sync"

	"github.com/selquery/selq/internal/discovery"
	"github.com/selquery/selq/internal/errors"
	"github.com/selquery/selq/internal/logger"
	"github.com/selquery/selq/pkg/types"
)

// FileResult is the inspection outcome for a single file
type FileResult struct {
	File       discovery.DiscoveredFile
	Statements []types.StatementInfo
	Err        error
}

// WorkerPool manages parallel file inspection
type WorkerPool struct {
	maxWorkers int
}

// NewWorkerPool creates a new worker pool for parallel file inspection
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		maxWorkers: maxWorkers,
	}
}

// InspectParallel inspects multiple files in parallel with the configured
// concurrency limit. Results come back in input order; per-file failures
// are recorded in the result, not returned.
func (wp *WorkerPool) InspectParallel(ctx context.Context, files []discovery.DiscoveredFile) []FileResult {
	numFiles := len(files)
	if numFiles == 0 {
		return nil
	}

	// One worker or one file degrades to sequential inspection
	if wp.maxWorkers == 1 || numFiles == 1 {
		return wp.inspectSequential(ctx, files)
	}

	logger.Debug("starting parallel inspection with %d workers for %d files", wp.maxWorkers, numFiles)

	jobs := make(chan *fileJob, numFiles)
	results := make(chan *fileResult, numFiles)

	var wg sync.WaitGroup
	for i := 0; i < wp.maxWorkers; i++ {
		wg.Add(1)
		go wp.worker(ctx, i, jobs, results, &wg)
	}

	for i := range files {
		jobs <- &fileJob{
			file:  &files[i],
			index: i,
		}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	ordered := make([]FileResult, numFiles)
	for result := range results {
		ordered[result.index] = result.res
		if result.res.Err != nil {
			logger.Debug("worker %d: %v", result.workerID, result.res.Err)
		}
	}

	return ordered
}

// inspectSequential inspects files one at a time on the calling goroutine
func (wp *WorkerPool) inspectSequential(ctx context.Context, files []discovery.DiscoveredFile) []FileResult {
	ordered := make([]FileResult, len(files))
	for i := range files {
		ordered[i] = inspectOne(ctx, files[i])
	}
	return ordered
}

// fileJob represents a single file to inspect
type fileJob struct {
	file  *discovery.DiscoveredFile
	index int
}

// fileResult represents the outcome of one inspection job
type fileResult struct {
	res      FileResult
	index    int
	workerID int
}

// worker is the goroutine that processes inspection jobs
func (wp *WorkerPool) worker(ctx context.Context, workerID int, jobs <-chan *fileJob, results chan<- *fileResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for job := range jobs {
		results <- &fileResult{
			res:      inspectOne(ctx, *job.file),
			index:    job.index,
			workerID: workerID,
		}
	}
}

// inspectOne inspects a single file, honoring context cancellation
func inspectOne(ctx context.Context, file discovery.DiscoveredFile) FileResult {
	if err := ctx.Err(); err != nil {
		return FileResult{
			File: file,
			Err:  errors.NewReadError(file.Path, err.Error()),
		}
	}
	statements, err := InspectFile(file)
	return FileResult{
		File:       file,
		Statements: statements,
		Err:        err,
	}
}

package cli

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	textclean "github.com/alnah/go-textclean"
)

// maxAutoWorkers caps the worker count when none is requested.
const maxAutoWorkers = 8

// FileResult holds the outcome of one file.
type FileResult struct {
	InputPath    string
	OutputPath   string
	HTMLPath     string
	FallbackUsed bool
	Err          error
	Duration     time.Duration
}

// batchParams groups what every worker shares.
type batchParams struct {
	proc     Processor
	renderer *textclean.HTMLRenderer // nil = no preview
}

// resolvePoolSize determines the worker count.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0) / 2
	return min(max(n, 1), maxAutoWorkers)
}

// processBatch processes files concurrently. Results keep the order of
// files. Files not yet started when ctx is canceled fail with ctx.Err().
func processBatch(ctx context.Context, files []FileToProcess, params batchParams, workers int) []FileResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(workers, len(files))
	results := make([]FileResult, len(files))
	jobs := make(chan int, len(files))

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = FileResult{InputPath: files[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = processFile(ctx, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// processFile processes a single file and, when enabled, its HTML preview.
func processFile(ctx context.Context, f FileToProcess, params batchParams) FileResult {
	start := time.Now()
	result := FileResult{InputPath: f.InputPath, OutputPath: f.OutputPath}

	res, err := params.proc.ProcessFile(f.InputPath, f.OutputPath)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.OutputPath = res.OutputPath
	result.FallbackUsed = res.FallbackUsed

	if params.renderer != nil {
		htmlPath, err := params.renderer.WriteFile(ctx, res.OutputPath, res.Text)
		if err != nil {
			result.Err = fmt.Errorf("writing HTML preview: %w", err)
			result.Duration = time.Since(start)
			return result
		}
		result.HTMLPath = htmlPath
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed files.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed files.
func countResults(results []FileResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs per-file lines and, for batches, a summary.
// Returns the number of failed files.
func printResults(results []FileResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			if r.FallbackUsed {
				fmt.Fprintf(env.Stderr, "note: %s is not valid UTF-8, decoded as Latin-1\n", r.InputPath)
			}
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		}
		fmt.Fprintf(env.Stdout, "Cleaned text saved to %s\n", r.OutputPath)
		if r.HTMLPath != "" {
			fmt.Fprintf(env.Stdout, "HTML preview saved to %s\n", r.HTMLPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	tab2img "github.com/alnah/go-tab2img"
)

// dirPermissions is used for output directories created during batch runs.
const dirPermissions = 0o750

// Sentinel errors for batch operations.
var (
	ErrInvalidWorkers = errors.New("invalid worker count")
	ErrRendererInit   = errors.New("failed to initialize renderer")
	ErrBatchFailed    = errors.New("batch completed with failures")
)

// rendererSource abstracts pool operations for testability.
type rendererSource interface {
	Acquire() (*tab2img.Renderer, error)
	Release(*tab2img.Renderer)
	Size() int
}

// Compile-time interface implementation check.
var _ rendererSource = (*tab2img.RendererPool)(nil)

// renderJob is a single input/output pair in a batch run.
type renderJob struct {
	InputPath  string
	OutputPath string
}

// batchResult holds the outcome of one batch job.
type batchResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runBatch renders every discovered input into the output directory,
// distributing jobs across a pool of renderers.
func runBatch(ctx context.Context, flags *cliFlags, positional []string, logger *log.Logger) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	format := strings.ToLower(strings.TrimPrefix(flags.format, "."))
	if !supportedFormat(format) {
		return fmt.Errorf("%w: %q (expected html, png, xlsx, or tex)", ErrUnsupportedOutput, flags.format)
	}

	outDir := positional[len(positional)-1]
	jobs, err := discoverInputs(positional[:len(positional)-1], outDir, format)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("%w: no .csv or .md files found", ErrNoInput)
	}

	opts, rendererOpts, err := mergeOptions(flags, "")
	if err != nil {
		return err
	}

	pool := tab2img.NewRendererPool(tab2img.ResolvePoolSize(flags.workers), rendererOpts...)
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Warn("closing renderer pool", "err", err)
		}
	}()
	logger.Debug("batch starting", "jobs", len(jobs), "workers", pool.Size(), "format", format)

	results := renderBatch(ctx, pool, jobs, flags, opts, logger)

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			logger.Error("render failed", "input", res.InputPath, "err", res.Err)
		}
	}
	logger.Info("batch complete", "succeeded", len(results)-failed, "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d inputs", ErrBatchFailed, failed, len(results))
	}
	return nil
}

// renderBatch processes jobs concurrently using the renderer pool.
func renderBatch(ctx context.Context, pool rendererSource, jobs []renderJob, flags *cliFlags, base tab2img.Options, logger *log.Logger) []batchResult {
	concurrency := pool.Size()
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]batchResult, len(jobs))
	jobCh := make(chan int, len(jobs))
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			r, err := pool.Acquire()
			if err != nil {
				// Renderer creation failed, mark remaining jobs as failed
				for idx := range jobCh {
					results[idx] = batchResult{
						InputPath: jobs[idx].InputPath,
						Err:       fmt.Errorf("%w: %v", ErrRendererInit, err),
					}
				}
				return
			}
			defer pool.Release(r)

			for idx := range jobCh {
				if ctx.Err() != nil {
					results[idx] = batchResult{
						InputPath: jobs[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = renderOne(ctx, r, jobs[idx], flags, base, logger)
			}
		}()
	}

	for i := range jobs {
		jobCh <- i
	}
	close(jobCh)

	wg.Wait()
	return results
}

// renderOne processes a single batch job and returns its result.
func renderOne(ctx context.Context, r *tab2img.Renderer, job renderJob, flags *cliFlags, base tab2img.Options, logger *log.Logger) batchResult {
	start := time.Now()
	res := batchResult{InputPath: job.InputPath, OutputPath: job.OutputPath}

	ds, err := readDataset(job.InputPath)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}

	if err := os.MkdirAll(filepath.Dir(job.OutputPath), dirPermissions); err != nil {
		res.Err = fmt.Errorf("creating output directory: %w", err)
		res.Duration = time.Since(start)
		return res
	}

	opts := base
	opts.Name = job.OutputPath
	res.Err = render(ctx, r, ds, flags, opts, job.OutputPath, logger)
	res.Duration = time.Since(start)
	return res
}

// discoverInputs expands the input arguments into render jobs: files are
// taken as-is, directories are walked for .csv and .md files. Directory
// structure is mirrored under the output directory.
func discoverInputs(inputs []string, outDir, format string) ([]renderJob, error) {
	var jobs []renderJob

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
		}

		if !info.IsDir() {
			jobs = append(jobs, renderJob{
				InputPath:  input,
				OutputPath: batchOutputPath(input, outDir, "", format),
			})
			continue
		}

		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".csv", ".md", ".markdown":
				jobs = append(jobs, renderJob{
					InputPath:  path,
					OutputPath: batchOutputPath(path, outDir, input, format),
				})
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return jobs, nil
}

// batchOutputPath maps an input file to its output path. Inputs discovered
// under a directory keep their relative layout below the output directory.
func batchOutputPath(inputPath, outDir, baseInputDir, format string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outDir, filepath.Dir(rel), base+"."+format)
		}
	}
	return filepath.Join(outDir, base+"."+format)
}

// supportedFormat reports whether the batch output format is renderable.
func supportedFormat(format string) bool {
	switch format {
	case "html", "png", "xlsx", "tex":
		return true
	}
	return false
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkers, n)
	}
	if n > tab2img.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkers, n, tab2img.MaxPoolSize)
	}
	return nil
}

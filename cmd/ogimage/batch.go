package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-ogimage/internal/config"
	"github.com/alnah/go-ogimage/internal/fileutil"
)

// Sentinel errors for batch operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidExtension   = errors.New("request file must have .yaml or .yml extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// maxAutoWorkers caps the worker count chosen from GOMAXPROCS.
const maxAutoWorkers = 8

// RequestJob is one request file and where its document goes.
type RequestJob struct {
	InputPath  string
	OutputPath string
}

// RenderResult holds the outcome of a single job.
type RenderResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runBatchCmd parses flags, renders every request file and reports errors.
func runBatchCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseBatchFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printBatchUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printBatchUsage(env.Stderr)
		return ExitUsage
	}

	if err := runBatch(ctx, positional, flags, env); err != nil {
		return reportError(env.Stderr, err, configName(flags.common.config))
	}
	return ExitSuccess
}

// runBatch orchestrates discovery, rendering and reporting.
func runBatch(ctx context.Context, inputs []string, flags *batchFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if len(inputs) == 0 {
		return ErrNoInput
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)

	cfg, err := loadSettings(flags.common, flags.renderer, logger)
	if err != nil {
		return err
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	var jobs []RequestJob
	for _, input := range inputs {
		found, err := discoverRequests(input, outputDir)
		if err != nil {
			return fmt.Errorf("discovering requests: %w", err)
		}
		jobs = append(jobs, found...)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("%w: no request files found in %s", ErrNoInput, strings.Join(inputs, ", "))
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	workers := resolveWorkers(flags.workers, cfg.Workers)
	logger.Debug("starting batch", "requests", len(jobs), "workers", workers)

	results := renderBatch(ctx, renderer, jobs, workers, cfg.Defaults)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env.Stdout, logger)
	if failed > 0 {
		return fmt.Errorf("%d render(s) failed", failed)
	}
	return nil
}

// discoverRequests finds request files under inputPath. A file is taken as
// is (and must be YAML); a directory is walked for *.yaml and *.yml.
func discoverRequests(inputPath, outputDir string) ([]RequestJob, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !isRequestFile(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		return []RequestJob{{InputPath: inputPath, OutputPath: resolveOutputPath(inputPath, outputDir, "")}}, nil
	}

	var jobs []RequestJob
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !isRequestFile(path) {
			return nil
		}
		jobs = append(jobs, RequestJob{InputPath: path, OutputPath: resolveOutputPath(path, outputDir, inputPath)})
		return nil
	})
	return jobs, err
}

// isRequestFile reports whether path has a YAML extension.
func isRequestFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}

// resolveOutputPath determines the HTML path for a request file, keeping
// the directory layout below baseInputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	base, _ := fileutil.ReplaceExt(filepath.Base(inputPath), "html") // constant extension

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(outputDir, base)
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolveWorkers determines the worker count.
// Priority: explicit flag > config/env > GOMAXPROCS-based calculation.
func resolveWorkers(flagWorkers, cfgWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if cfgWorkers > 0 {
		return cfgWorkers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers.
	n := runtime.GOMAXPROCS(0) / 2
	return max(1, min(n, maxAutoWorkers))
}

// renderBatch renders jobs with at most workers in flight. Results keep
// the order of jobs; one failure does not stop the others.
func renderBatch(ctx context.Context, renderer Renderer, jobs []RequestJob, workers int, defaults config.DefaultsConfig) []RenderResult {
	results := make([]RenderResult, len(jobs))

	var g errgroup.Group
	g.SetLimit(max(1, workers))

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = RenderResult{InputPath: job.InputPath, Err: err}
				return nil
			}
			results[i] = renderJob(ctx, renderer, job, defaults)
			return nil
		})
	}

	_ = g.Wait() // jobs report through results
	return results
}

// renderJob reads, renders and writes a single request.
func renderJob(ctx context.Context, renderer Renderer, job RequestJob, defaults config.DefaultsConfig) RenderResult {
	start := time.Now()
	result := RenderResult{InputPath: job.InputPath, OutputPath: job.OutputPath}

	req, err := readRequestFile(job.InputPath, defaults)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	doc, err := renderer.Render(ctx, req)
	if err != nil {
		result.Err = fmt.Errorf("rendering: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	if err := writeHTML(job.OutputPath, doc); err != nil {
		result.Err = err
	}
	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed renders.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed renders.
func countResults(results []RenderResult) ResultSummary {
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

// printResults outputs results and returns the number of failures.
// Failures go to the logger so --quiet still shows them.
func printResults(results []RenderResult, quiet, verbose bool, w io.Writer, logger *slog.Logger) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			logger.Error("render failed", "input", r.InputPath, "err", r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(w, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(w, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(w, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

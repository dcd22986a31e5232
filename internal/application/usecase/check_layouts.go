package usecase

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/splitter/internal/application/port"
	"github.com/bnema/splitter/internal/logging"
	"github.com/bnema/splitter/internal/ui/layout"
)

// CheckLayoutsInput lists the layout files to check and the container size
// each one is probed at.
type CheckLayoutsInput struct {
	Paths []string
	Probe layout.Size
	// Concurrency caps parallel checks; 0 uses GOMAXPROCS.
	Concurrency int
}

// LayoutCheckResult is the outcome for one file.
type LayoutCheckResult struct {
	Path        string
	Panes       int
	Overflow    int
	Unallocated int
	Err         error
}

// OK reports whether the file loaded and fits the probe size.
func (r LayoutCheckResult) OK() bool {
	return r.Err == nil && r.Overflow == 0
}

// CheckLayoutsOutput holds one result per input path, in input order.
type CheckLayoutsOutput struct {
	Results []LayoutCheckResult
	Failed  int
}

// CheckLayoutsUseCase validates layout files and probes them headlessly.
type CheckLayoutsUseCase struct {
	loader port.LayoutLoader
}

// NewCheckLayoutsUseCase creates a new check layouts use case.
func NewCheckLayoutsUseCase(loader port.LayoutLoader) *CheckLayoutsUseCase {
	return &CheckLayoutsUseCase{loader: loader}
}

// Execute checks every path. Per-file problems are reported in the results;
// only cancellation aborts the run.
func (uc *CheckLayoutsUseCase) Execute(ctx context.Context, input CheckLayoutsInput) (*CheckLayoutsOutput, error) {
	log := logging.FromContext(ctx)
	results := make([]LayoutCheckResult, len(input.Paths))

	limit := input.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range input.Paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = uc.check(gctx, path, input.Probe)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &CheckLayoutsOutput{Results: results}
	for _, r := range results {
		if !r.OK() {
			out.Failed++
		}
	}
	log.Debug().Int("files", len(results)).Int("failed", out.Failed).Msg("layout check finished")
	return out, nil
}

func (uc *CheckLayoutsUseCase) check(ctx context.Context, path string, probe layout.Size) LayoutCheckResult {
	result := LayoutCheckResult{Path: path}

	doc, err := uc.loader.LoadLayout(ctx, path)
	if err != nil {
		result.Err = err
		return result
	}
	result.Panes = len(doc.Panes)

	shell, err := layout.Mount(ctx, layout.ShellOptions(doc.Settings), doc.Panes, nil)
	if err != nil {
		result.Err = err
		return result
	}
	defer shell.Unmount()

	if o := shell.Orientation(); probe.Along(o) <= 0 {
		result.Err = fmt.Errorf("probe %s must be positive", axisName(o))
		return result
	}
	observe(shell, probe)
	status := shell.Layout().Status
	result.Overflow = status.Overflow
	result.Unallocated = status.Unallocated
	return result
}

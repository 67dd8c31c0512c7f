package precommit

import (
	"context"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lerenn/devbox/pkg/executor"
)

// Runner executes resolved invocations inside a snapshot.
type Runner struct {
	executor    executor.Executor
	concurrency int
}

// NewRunnerParams contains parameters for NewRunner.
type NewRunnerParams struct {
	Executor executor.Executor

	// Concurrency bounds how many checks run at once. Zero means one per CPU.
	Concurrency int
}

// NewRunner creates a new Runner instance.
func NewRunner(params NewRunnerParams) *Runner {
	concurrency := params.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	return &Runner{
		executor:    params.Executor,
		concurrency: concurrency,
	}
}

// Run executes every invocation and returns one CheckResult per invocation,
// in invocation order. Checks are independent, so they run concurrently up
// to the configured bound; a failing check never cancels the others, so one
// pre-commit attempt reports every problem at once.
func (r *Runner) Run(ctx context.Context, snapshotDir string, invocations []Invocation, timeout time.Duration) []CheckResult {
	results := make([]CheckResult, len(invocations))

	group := new(errgroup.Group)
	group.SetLimit(r.concurrency)

	for i, inv := range invocations {
		group.Go(func() error {
			res, err := r.executor.Execute(ctx, executor.ExecuteParams{
				Dir:     filepath.Join(snapshotDir, inv.Dir),
				Args:    inv.Args,
				Timeout: timeout,
			})
			// Results are index-addressed so reporting order stays stable
			// regardless of completion order.
			results[i] = CheckResult{
				Invocation: inv,
				ExitCode:   res.ExitCode,
				Output:     res.Output,
				Err:        err,
			}
			return nil
		})
	}

	// Goroutines never return errors: every check must run to completion.
	_ = group.Wait()

	return results
}

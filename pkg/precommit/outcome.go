package precommit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lerenn/devbox/pkg/executor"
)

// CheckResult is the outcome of one executed invocation. Immutable once
// produced.
type CheckResult struct {
	Invocation Invocation

	// ExitCode is the command's exit status.
	ExitCode int

	// Output is the combined stdout and stderr of the command.
	Output []byte

	// Err is non-nil when the command could not run at all: it wraps
	// executor.ErrSpawn or executor.ErrTimeout.
	Err error
}

// Failed reports whether this check blocks the commit.
func (r CheckResult) Failed() bool {
	return r.ExitCode != 0 || r.Err != nil
}

// Outcome is the aggregate verdict of one pre-commit run.
type Outcome struct {
	results []CheckResult
}

// Aggregate reduces check results to an Outcome.
func Aggregate(results []CheckResult) Outcome {
	return Outcome{results: results}
}

// Pass reports whether the commit should be allowed: true iff no check ran,
// or every check succeeded.
func (o Outcome) Pass() bool {
	for _, r := range o.results {
		if r.Failed() {
			return false
		}
	}
	return true
}

// Results returns every check result in invocation order.
func (o Outcome) Results() []CheckResult {
	return o.results
}

// Failing returns the failing check results in invocation order.
func (o Outcome) Failing() []CheckResult {
	var failing []CheckResult
	for _, r := range o.results {
		if r.Failed() {
			failing = append(failing, r)
		}
	}
	return failing
}

// Report writes a diagnostic for each failing check to w, in invocation
// order. It only writes: neither the snapshot nor the repository is touched.
func (o Outcome) Report(w io.Writer) {
	failing := o.Failing()
	for _, r := range failing {
		fmt.Fprintf(w, "FAIL: %s", strings.Join(r.Invocation.Args, " "))
		if r.Invocation.File != "" {
			fmt.Fprintf(w, " (triggered by %s)", r.Invocation.File)
		}
		fmt.Fprintln(w)

		switch {
		case errors.Is(r.Err, executor.ErrTimeout):
			fmt.Fprintf(w, "  timed out: %v\n", r.Err)
		case errors.Is(r.Err, executor.ErrSpawn):
			fmt.Fprintf(w, "  could not start: %v\n", r.Err)
		default:
			fmt.Fprintf(w, "  exit status %d\n", r.ExitCode)
		}

		if output := bytes.TrimSpace(r.Output); len(output) > 0 {
			for _, line := range strings.Split(string(output), "\n") {
				fmt.Fprintf(w, "  %s\n", line)
			}
		}
	}

	if len(failing) > 0 {
		fmt.Fprintf(w, "%d of %d checks failed\n", len(failing), len(o.results))
	}
}

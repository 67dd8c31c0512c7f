// Package executor provides process execution capabilities with bounded
// durations. It is the only place devbox spawns external commands, so the
// rest of the code can be tested against a mock without running anything.
package executor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=executor.go -destination=mockexecutor.gen.go -package=executor

// ExecuteParams contains parameters for Execute.
type ExecuteParams struct {
	// Dir is the working directory for the command.
	Dir string

	// Args is the command and its arguments. Must not be empty.
	Args []string

	// Env is the environment for the command. Nil inherits the current
	// process environment.
	Env []string

	// Timeout bounds the command duration. Zero means no bound.
	Timeout time.Duration
}

// Result contains the observable outcome of an executed command.
type Result struct {
	// ExitCode is the command's exit status.
	ExitCode int

	// Output is the combined stdout and stderr of the command.
	Output []byte
}

// Executor interface provides external command execution.
type Executor interface {
	// Execute runs a command and waits for it to finish. A non-zero exit
	// status is not an error: it is reported through Result.ExitCode. The
	// returned error is non-nil only when the command could not be started
	// (wraps ErrSpawn) or exceeded its timeout (wraps ErrTimeout).
	Execute(ctx context.Context, params ExecuteParams) (Result, error)
}

type realExecutor struct {
	// No fields needed for basic command execution
}

// NewExecutor creates a new Executor instance.
func NewExecutor() Executor {
	return &realExecutor{}
}

// Execute runs a command and waits for it to finish.
func (e *realExecutor) Execute(ctx context.Context, params ExecuteParams) (Result, error) {
	if len(params.Args) == 0 {
		return Result{}, fmt.Errorf("%w: empty command", ErrSpawn)
	}

	if params.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, params.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, params.Args[0], params.Args[1:]...)
	cmd.Dir = params.Dir
	cmd.Env = params.Env

	output, err := cmd.CombinedOutput()
	if err != nil {
		// The deadline firing surfaces as a killed process; classify it
		// before looking at the exit status.
		if ctx.Err() == context.DeadlineExceeded {
			return Result{ExitCode: -1, Output: output},
				fmt.Errorf("%w: %s exceeded %s", ErrTimeout, strings.Join(params.Args, " "), params.Timeout)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{ExitCode: exitErr.ExitCode(), Output: output}, nil
		}

		return Result{ExitCode: -1, Output: output},
			fmt.Errorf("%w: %s: %v", ErrSpawn, strings.Join(params.Args, " "), err)
	}

	return Result{ExitCode: 0, Output: output}, nil
}

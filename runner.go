package pdfgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// CommandRunner abstracts subprocess execution to enable testing without
// spawning a real converter.
type CommandRunner interface {
	// Run executes name with args, stdin closed, and returns captured
	// stdout and stderr plus the numeric exit code. err is non-nil only
	// when the process could not be started or waited on (including
	// context cancellation); a non-zero exit is reported through exitCode,
	// not err.
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, exitCode int, err error)
}

// ExecRunner implements CommandRunner using os/exec.
//
// Stdout and stderr are drained into separate buffers by the exec package
// before the exit status is read, so large output cannot deadlock the
// child on a full pipe.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// cmd.Stdin left nil: the child reads from the null device.

	if err := cmd.Start(); err != nil {
		return "", "", -1, fmt.Errorf("starting %s: %w", name, err)
	}

	err := cmd.Wait()
	outText := stdout.String()
	errText := stderr.String()

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return outText, errText, -1, fmt.Errorf("running %s: %w", name, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return outText, errText, exitErr.ExitCode(), nil
		}
		return outText, errText, -1, fmt.Errorf("waiting for %s: %w", name, err)
	}

	return outText, errText, 0, nil
}

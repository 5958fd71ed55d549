package pdfgen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for wrapper operations.
var (
	ErrNotInstalled      = errors.New("converter executable not found")
	ErrNotActivated      = errors.New("converter reports no license activation")
	ErrUnsupportedOption = errors.New("unsupported option")
	ErrInvalidInput      = errors.New("invalid input")
	ErrExecutionFailed   = errors.New("converter execution failed")
	ErrTempFile          = errors.New("temp input file")
)

// ExecutionError reports a converter invocation that failed to spawn or
// exited non-zero. Output holds captured stderr, falling back to stdout
// when stderr is empty. It unwraps to ErrExecutionFailed so callers can
// match with errors.Is.
type ExecutionError struct {
	Args     []string // argument vector the converter was invoked with
	Output   string   // stderr, or stdout when stderr was empty
	ExitCode int      // numeric exit code (-1 when the process never ran)
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("converter execution failed (exit %d): %s [args: %s]",
		e.ExitCode, e.Output, strings.Join(e.Args, " "))
}

func (e *ExecutionError) Unwrap() error { return ErrExecutionFailed }

package pdfgen

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/alnah/go-pdfgen/internal/fileutil"
)

// DefaultExecutable is the converter binary name resolved on PATH.
const DefaultExecutable = "pdfgen"

// Fixed arguments for the converter's status queries.
const (
	versionArg = "--version"
	statusArg  = "--status"
)

// ExecFlags adjusts the pre-flight checks for a single invocation.
// Flags combine with bitwise OR.
type ExecFlags uint8

const (
	// SkipInstalledCheck suppresses the executable lookup assertion.
	SkipInstalledCheck ExecFlags = 1 << iota
	// SkipActivationCheck suppresses the license activation assertion.
	SkipActivationCheck
)

// Gateway resolves the converter executable, assembles argument vectors,
// spawns the process, and maps raw results to typed errors.
//
// A Gateway is safe for concurrent use. The only shared mutable state is
// the memoized executable path; resolution is deterministic, so redundant
// population from concurrent callers is harmless. Overlapping invocations
// each get their own process and temp files.
type Gateway struct {
	executable string
	schema     Schema
	runner     CommandRunner
	lookPath   func(string) (string, error)

	mu         sync.Mutex
	cachedPath string
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithExecutable overrides the converter binary name (or absolute path)
// resolved on PATH.
func WithExecutable(name string) GatewayOption {
	return func(g *Gateway) { g.executable = name }
}

// WithSchema replaces the option schema used for encoding.
func WithSchema(s Schema) GatewayOption {
	return func(g *Gateway) { g.schema = s }
}

// WithRunner replaces the subprocess runner. Intended for tests.
func WithRunner(r CommandRunner) GatewayOption {
	return func(g *Gateway) { g.runner = r }
}

// WithLookPath replaces the PATH lookup. Intended for tests.
func WithLookPath(fn func(string) (string, error)) GatewayOption {
	return func(g *Gateway) { g.lookPath = fn }
}

// NewGateway creates a Gateway with the default executable name, schema,
// runner (os/exec), and PATH lookup (exec.LookPath).
func NewGateway(opts ...GatewayOption) *Gateway {
	g := &Gateway{
		executable: DefaultExecutable,
		schema:     DefaultSchema,
		runner:     &ExecRunner{},
		lookPath:   exec.LookPath,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// LocateExecutable returns the resolved converter path, memoizing the first
// successful lookup for the lifetime of the Gateway. The boolean reports
// whether the converter was found; absence is not an error, so callers
// decide how to fail.
func (g *Gateway) LocateExecutable() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cachedPath != "" {
		return g.cachedPath, true
	}

	path, err := g.lookPath(g.executable)
	if err != nil {
		return "", false
	}
	g.cachedPath = path
	return path, true
}

// AssertInstalled fails with ErrNotInstalled when the converter cannot be
// located.
func (g *Gateway) AssertInstalled() error {
	if _, ok := g.LocateExecutable(); !ok {
		return fmt.Errorf("%w: %q", ErrNotInstalled, g.executable)
	}
	return nil
}

// IsActivated queries the converter's status output and reports whether a
// license activation is present. A missing "Activation:" line, an empty
// token, and "none" (any case) all report false.
func (g *Gateway) IsActivated(ctx context.Context) (bool, error) {
	stdout, _, _, err := g.Run(ctx, []string{statusArg}, SkipActivationCheck)
	if err != nil {
		return false, err
	}
	return isActivatedStatus(stdout), nil
}

// AssertActivated fails with ErrNotActivated when the converter reports no
// valid license activation.
func (g *Gateway) AssertActivated(ctx context.Context) error {
	activated, err := g.IsActivated(ctx)
	if err != nil {
		return err
	}
	if !activated {
		return ErrNotActivated
	}
	return nil
}

// Run invokes the converter with the given argument vector. Unless skipped
// via flags, it first asserts that the converter is installed and
// activated. Captured stdout and stderr are trimmed of surrounding
// whitespace. A spawn failure or non-zero exit surfaces as *ExecutionError
// carrying the argument vector, the captured error text (stderr, or stdout
// when stderr is empty), and the exit code.
//
// There is no retry and no default timeout: a hung converter blocks until
// ctx is canceled.
func (g *Gateway) Run(ctx context.Context, args []string, flags ExecFlags) (stdout, stderr string, exitCode int, err error) {
	if flags&SkipInstalledCheck == 0 {
		if err := g.AssertInstalled(); err != nil {
			return "", "", 0, err
		}
	}
	if flags&SkipActivationCheck == 0 {
		if err := g.AssertActivated(ctx); err != nil {
			return "", "", 0, err
		}
	}

	path, ok := g.LocateExecutable()
	if !ok {
		return "", "", 0, fmt.Errorf("%w: %q", ErrNotInstalled, g.executable)
	}

	rawOut, rawErr, code, runErr := g.runner.Run(ctx, path, args...)
	stdout = strings.TrimSpace(rawOut)
	stderr = strings.TrimSpace(rawErr)

	if runErr != nil {
		return stdout, stderr, code, &ExecutionError{
			Args:     args,
			Output:   firstNonEmpty(stderr, stdout, runErr.Error()),
			ExitCode: code,
		}
	}
	if code != 0 {
		return stdout, stderr, code, &ExecutionError{
			Args:     args,
			Output:   firstNonEmpty(stderr, stdout),
			ExitCode: code,
		}
	}
	return stdout, stderr, 0, nil
}

// Version returns the converter's trimmed --version output. The activation
// check is skipped so the version stays queryable on unlicensed installs.
func (g *Gateway) Version(ctx context.Context) (string, error) {
	stdout, _, _, err := g.Run(ctx, []string{versionArg}, SkipActivationCheck)
	return stdout, err
}

// RemainingPagesPerHour reads the remaining page quota from the converter's
// status output. Unreadable output yields QuotaUnknown without an error;
// only invocation failures are reported.
func (g *Gateway) RemainingPagesPerHour(ctx context.Context) (Quota, error) {
	stdout, _, _, err := g.Run(ctx, []string{statusArg}, SkipActivationCheck)
	if err != nil {
		return QuotaUnknown, err
	}
	return parseRemainingPages(stdout), nil
}

// Process converts the given input files into outputPath and returns
// outputPath on success. Every input path must exist and be readable before
// the converter is spawned; the first offending path is named in the
// ErrInvalidInput error. The argument vector is
// <inputs...> <output> <encoded options...>. A failed call leaves no
// defined output file.
func (g *Gateway) Process(ctx context.Context, inputPaths []string, outputPath string, opts Options, flags ExecFlags) (string, error) {
	if len(inputPaths) == 0 {
		return "", fmt.Errorf("%w: no input files", ErrInvalidInput)
	}
	if outputPath == "" {
		return "", fmt.Errorf("%w: no output path", ErrInvalidInput)
	}
	for _, p := range inputPaths {
		if err := fileutil.CheckReadable(p); err != nil {
			return "", fmt.Errorf("%w: input file %q: %v", ErrInvalidInput, p, err)
		}
	}

	tokens, err := g.schema.EncodeAll(opts)
	if err != nil {
		return "", err
	}

	args := make([]string, 0, len(inputPaths)+1+len(tokens))
	args = append(args, inputPaths...)
	args = append(args, outputPath)
	args = append(args, tokens...)

	if _, _, _, err := g.Run(ctx, args, flags); err != nil {
		return "", err
	}
	return outputPath, nil
}

// StringInput pairs in-memory document content with the file-type extension
// the converter requires on its inputs.
type StringInput struct {
	Content   string
	Extension string // without the leading dot, e.g. "html" or "svg"
}

// ProcessString materializes content into a uniquely named temp file ending
// in .extension and converts it into outputPath.
//
// The temp file is not removed afterwards; its lifetime belongs to the
// caller (or the OS temp cleaner).
func (g *Gateway) ProcessString(ctx context.Context, content, extension, outputPath string, opts Options, flags ExecFlags) (string, error) {
	return g.ProcessStrings(ctx, []StringInput{{Content: content, Extension: extension}}, outputPath, opts, flags)
}

// ProcessStrings is the multi-input form of ProcessString: each entry
// becomes its own temp input file and all files feed a single converter
// invocation, in the order given.
func (g *Gateway) ProcessStrings(ctx context.Context, inputs []StringInput, outputPath string, opts Options, flags ExecFlags) (string, error) {
	if len(inputs) == 0 {
		return "", fmt.Errorf("%w: no string inputs", ErrInvalidInput)
	}

	paths := make([]string, len(inputs))
	for i, in := range inputs {
		if in.Extension == "" {
			return "", fmt.Errorf("%w: string input %d has no file extension", ErrInvalidInput, i)
		}
		// The converter refuses extension-less inputs, so the temp name is
		// forced to end in the declared extension.
		path, _, err := fileutil.WriteTempFile(in.Content, in.Extension)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrTempFile, err)
		}
		paths[i] = path
	}

	return g.Process(ctx, paths, outputPath, opts, flags)
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

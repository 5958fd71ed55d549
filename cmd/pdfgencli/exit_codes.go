package main

import (
	"errors"
	"os"

	pdfgen "github.com/alnah/go-pdfgen"
	"github.com/alnah/go-pdfgen/internal/config"
)

// Exit codes for pdfgencli.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful operation
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or validation
	ExitIO        = 3 // File not found, permission denied, temp file failure
	ExitConverter = 4 // Converter missing, unlicensed, or failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Converter errors (exit 4)
	if errors.Is(err, pdfgen.ErrNotInstalled) ||
		errors.Is(err, pdfgen.ErrNotActivated) ||
		errors.Is(err, pdfgen.ErrExecutionFailed) {
		return ExitConverter
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, pdfgen.ErrInvalidInput) ||
		errors.Is(err, pdfgen.ErrTempFile) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidMaxPages) ||
		errors.Is(err, config.ErrInvalidZoom) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, pdfgen.ErrUnsupportedOption) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidTimeoutFlag) {
		return ExitUsage
	}

	return ExitGeneral
}

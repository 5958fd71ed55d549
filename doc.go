// Package pdfgen wraps the proprietary pdfgen command-line converter, which
// renders HTML and SVG documents to PDF.
//
// The library locates the converter executable, encodes a structured option
// set into the argument tokens the converter's own parser expects, spawns
// the process, captures stdout/stderr/exit code, and translates failures
// into typed errors. It also exposes the converter's status queries
// (version, license activation, remaining page quota).
//
// # Quick Start
//
// Create a gateway and convert files:
//
//	gw := pdfgen.NewGateway()
//
//	out, err := gw.Process(ctx,
//	    []string{"report.html"}, "report.pdf",
//	    pdfgen.Options{
//	        pdfgen.Opt("maxpages", "10"),
//	        pdfgen.Flag("remote-content"),
//	    }, 0)
//
// In-memory content is materialized to a temp file first (the converter
// refuses inputs without a file extension):
//
//	out, err := gw.ProcessString(ctx, "<h1>Hello</h1>", "html", "hello.pdf", nil, 0)
//
// # Option Encoding
//
// Options are encoded deterministically in the order given. Names of one
// character render in short form (-n "v"), all others in long form
// (--name="v"). Multi-values are joined with the option's schema delimiter
// (comma unless declared otherwise). Encoded tokens are passed to the
// process as discrete arguments, never through a shell.
//
// # Status Queries
//
//	version, err := gw.Version(ctx)             // works without a license
//	ok, err := gw.IsActivated(ctx)              // "Activation:" status line
//	quota, err := gw.RemainingPagesPerHour(ctx) // "Pages per hour:" line
//
// # Pre-flight Checks
//
// Process and Run assert that the converter is installed and activated
// before spawning. Either check can be suppressed per call:
//
//	gw.Run(ctx, args, pdfgen.SkipActivationCheck)
//
// # Cancellation
//
// Every operation that spawns the converter takes a context.Context. There
// is no default timeout; pass context.WithTimeout to bound a hung
// converter. Errors are sentinel-based (ErrNotInstalled, ErrNotActivated,
// ErrUnsupportedOption, ErrInvalidInput, ErrExecutionFailed, ErrTempFile)
// and match with errors.Is.
package pdfgen

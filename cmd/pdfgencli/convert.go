package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	pdfgen "github.com/alnah/go-pdfgen"
	"github.com/alnah/go-pdfgen/internal/config"
	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input files specified")
	ErrInvalidTimeoutFlag = errors.New("invalid timeout value")
)

// runConvertCmd executes the convert command and returns an exit code.
func runConvertCmd(args []string, env *Environment) int {
	flags, inputs, err := parseConvertFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return ExitUsage
	}

	if err := runConvert(context.Background(), inputs, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runConvert orchestrates a single conversion.
func runConvert(ctx context.Context, inputs []string, flags *convertFlags, env *Environment) error {
	logger := newLogger(env.Stderr, logLevelFor(flags.common.quiet, flags.common.verbose))

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger.Debug("loaded config", "name", flags.common.config)
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	if len(inputs) == 0 {
		return ErrNoInput
	}

	outputPath := resolveOutputPath(inputs[0], flags.output, cfg)

	opts := buildOptions(cfg)

	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q", ErrInvalidTimeoutFlag, flags.timeout)
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	var execFlags pdfgen.ExecFlags
	if flags.checks.skipInstalled {
		execFlags |= pdfgen.SkipInstalledCheck
	}
	if flags.checks.skipActivation {
		execFlags |= pdfgen.SkipActivationCheck
	}

	gw := env.gateway(cfg)

	logger.Debug("converting", "inputs", strings.Join(inputs, ", "), "output", outputPath)
	start := env.Now()

	out, err := gw.Process(ctx, inputs, outputPath, opts, execFlags)
	if err != nil {
		return err
	}

	logger.Debug("converted", "duration", env.Now().Sub(start).Round(time.Millisecond))
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", out)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// Numeric and boolean flags merge only when explicitly set, so a config file
// value survives the flag's zero default.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.fs.Changed("maxpages") {
		cfg.Options.MaxPages = flags.render.maxPages
	}
	if flags.fs.Changed("zoom-factor") {
		cfg.Options.ZoomFactor = flags.render.zoomFactor
	}
	if flags.fs.Changed("remote-content") {
		cfg.Options.RemoteContent = flags.render.remoteContent
	}
	if flags.fs.Changed("use-system-proxy") {
		cfg.Options.UseSystemProxy = flags.render.useSystemProxy
	}
	if flags.fs.Changed("dump-static-html") {
		cfg.Options.DumpStaticHTML = flags.render.dumpStaticHTML
	}
	if len(flags.render.underlays) > 0 {
		cfg.Options.Underlays = flags.render.underlays
	}
	if len(flags.render.overlays) > 0 {
		cfg.Options.Overlays = flags.render.overlays
	}
	if len(flags.render.imports) > 0 {
		cfg.Options.Imports = flags.render.imports
	}

	if flags.license.server != "" {
		cfg.Converter.LicenseServer = flags.license.server
	}
	if flags.license.typ != "" {
		cfg.Converter.LicenseType = flags.license.typ
	}
	if flags.license.message != "" {
		cfg.Converter.LicenseServerMessage = flags.license.message
	}
	if flags.fs.Changed("license-timeout") {
		cfg.Converter.LicenseServerTimeout = flags.license.timeout
	}
}

// resolveOutputPath determines the PDF output path.
// Priority: -o flag > config defaultDir + input basename > input dir + basename.
func resolveOutputPath(firstInput, flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}

	ext := filepath.Ext(firstInput)
	base := strings.TrimSuffix(filepath.Base(firstInput), ext)

	if cfg.Output.DefaultDir != "" {
		return filepath.Join(cfg.Output.DefaultDir, base+".pdf")
	}
	return filepath.Join(filepath.Dir(firstInput), base+".pdf")
}

// buildOptions translates the merged config into converter options.
// Entries append in a fixed order so identical configs always produce
// byte-identical command lines.
func buildOptions(cfg *config.Config) pdfgen.Options {
	var opts pdfgen.Options

	if cfg.Options.MaxPages > 0 {
		opts = append(opts, pdfgen.Opt("maxpages", strconv.Itoa(cfg.Options.MaxPages)))
	}
	if cfg.Options.ZoomFactor > 0 {
		opts = append(opts, pdfgen.Opt("zoom-factor", strconv.FormatFloat(cfg.Options.ZoomFactor, 'g', -1, 64)))
	}
	if cfg.Options.RemoteContent {
		opts = append(opts, pdfgen.Flag("remote-content"))
	}
	if cfg.Options.UseSystemProxy {
		opts = append(opts, pdfgen.Flag("use-system-proxy"))
	}
	if cfg.Options.DumpStaticHTML {
		opts = append(opts, pdfgen.Flag("dump-static-html"))
	}
	if len(cfg.Options.Underlays) > 0 {
		opts = append(opts, pdfgen.Opt("underlay", cfg.Options.Underlays...))
	}
	if len(cfg.Options.Overlays) > 0 {
		opts = append(opts, pdfgen.Opt("overlay", cfg.Options.Overlays...))
	}
	if len(cfg.Options.Imports) > 0 {
		opts = append(opts, pdfgen.Opt("import", cfg.Options.Imports...))
	}

	if cfg.Converter.LicenseServer != "" {
		opts = append(opts, pdfgen.Opt("licenseserver", cfg.Converter.LicenseServer))
	}
	if cfg.Converter.LicenseType != "" {
		opts = append(opts, pdfgen.Opt("licensetype", cfg.Converter.LicenseType))
	}
	if cfg.Converter.LicenseServerMessage != "" {
		opts = append(opts, pdfgen.Opt("lsmessage", cfg.Converter.LicenseServerMessage))
	}
	if cfg.Converter.LicenseServerTimeout > 0 {
		opts = append(opts, pdfgen.Opt("timeout-licenseserver", strconv.Itoa(cfg.Converter.LicenseServerTimeout)))
	}

	return opts
}

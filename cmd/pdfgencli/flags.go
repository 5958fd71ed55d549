package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// checkFlags controls the gateway's pre-flight assertions.
type checkFlags struct {
	skipInstalled  bool
	skipActivation bool
}

// licenseFlags holds license-server flags.
type licenseFlags struct {
	server  string
	typ     string
	message string
	timeout int
}

// renderFlags holds converter rendering options.
type renderFlags struct {
	maxPages       int
	zoomFactor     float64
	remoteContent  bool
	useSystemProxy bool
	dumpStaticHTML bool
	underlays      []string
	overlays       []string
	imports        []string
}

// convertFlags holds all flags for the convert command.
// fs is retained so merge logic can ask which flags were explicitly set.
type convertFlags struct {
	common  commonFlags
	output  string
	timeout string
	checks  checkFlags
	license licenseFlags
	render  renderFlags

	fs *flag.FlagSet
}

// statusFlags holds flags for the status command.
type statusFlags struct {
	common commonFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addCheckFlags adds pre-flight check flags to a FlagSet.
func addCheckFlags(fs *flag.FlagSet, f *checkFlags) {
	fs.BoolVar(&f.skipInstalled, "skip-installed-check", false, "skip the converter lookup assertion")
	fs.BoolVar(&f.skipActivation, "skip-activation-check", false, "skip the license activation assertion")
}

// addLicenseFlags adds license-server flags to a FlagSet.
func addLicenseFlags(fs *flag.FlagSet, f *licenseFlags) {
	fs.StringVar(&f.server, "license-server", "", "license server host:port")
	fs.StringVar(&f.typ, "license-type", "", "license type identifier")
	fs.StringVar(&f.message, "license-message", "", "message sent to the license server")
	fs.IntVar(&f.timeout, "license-timeout", 0, "license server timeout in seconds")
}

// addRenderFlags adds converter rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.IntVar(&f.maxPages, "maxpages", 0, "maximum number of pages to render (0 = no limit)")
	fs.Float64Var(&f.zoomFactor, "zoom-factor", 0, "rendering zoom factor (0 = converter default)")
	fs.BoolVar(&f.remoteContent, "remote-content", false, "allow fetching remote resources")
	fs.BoolVar(&f.useSystemProxy, "use-system-proxy", false, "use the system proxy settings")
	fs.BoolVar(&f.dumpStaticHTML, "dump-static-html", false, "write the post-script-execution HTML")
	fs.StringSliceVar(&f.underlays, "underlay", nil, "document layered under each page (repeatable)")
	fs.StringSliceVar(&f.overlays, "overlay", nil, "document layered over each page (repeatable)")
	fs.StringSliceVar(&f.imports, "import", nil, "resource imported into the document (repeatable)")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{fs: fs}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF file")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "converter timeout (e.g. 30s, 2m; empty = none)")

	addCommonFlags(fs, &f.common)
	addCheckFlags(fs, &f.checks)
	addLicenseFlags(fs, &f.license)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseStatusFlags parses status command flags.
func parseStatusFlags(args []string) (*statusFlags, error) {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	f := &statusFlags{}

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printStatusUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdfgencli <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert HTML/SVG files to PDF")
	fmt.Fprintln(w, "  status     Show converter version, activation, and page quota")
	fmt.Fprintln(w, "  doctor     Diagnose the converter installation")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pdfgencli help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdfgencli convert <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert one or more HTML/SVG files into a single PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Input files, in document order")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>          Output PDF file (default: first input with .pdf)")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <dur>          Converter timeout, e.g. 30s or 2m (default: none)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --maxpages <n>           Maximum number of pages to render")
	fmt.Fprintln(w, "      --zoom-factor <f>        Rendering zoom factor")
	fmt.Fprintln(w, "      --remote-content         Allow fetching remote resources")
	fmt.Fprintln(w, "      --use-system-proxy       Use the system proxy settings")
	fmt.Fprintln(w, "      --dump-static-html       Write the post-script-execution HTML")
	fmt.Fprintln(w, "      --underlay <path>        Document layered under each page (repeatable)")
	fmt.Fprintln(w, "      --overlay <path>         Document layered over each page (repeatable)")
	fmt.Fprintln(w, "      --import <path>          Resource imported into the document (repeatable)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "License:")
	fmt.Fprintln(w, "      --license-server <s>     License server host:port")
	fmt.Fprintln(w, "      --license-type <s>       License type identifier")
	fmt.Fprintln(w, "      --license-message <s>    Message sent to the license server")
	fmt.Fprintln(w, "      --license-timeout <n>    License server timeout in seconds")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pre-flight:")
	fmt.Fprintln(w, "      --skip-installed-check   Skip the converter lookup assertion")
	fmt.Fprintln(w, "      --skip-activation-check  Skip the license activation assertion")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show detailed progress")
}

// printStatusUsage prints usage for the status command.
func printStatusUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdfgencli status [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show the converter's version, activation state, and remaining page quota.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show detailed progress")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "status":
		printStatusUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: pdfgencli doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Diagnose the converter installation and environment.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: pdfgencli version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: pdfgencli help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}

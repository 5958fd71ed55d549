package main

import (
	"context"
	"fmt"
	"runtime"
)

// runVersionCmd prints version information and returns an exit code.
// Converter detection is best-effort: a missing or broken converter is
// reported inline, never as a failure.
func runVersionCmd(env *Environment) int {
	fmt.Fprintf(env.Stdout, "pdfgencli %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)

	gw := env.gateway(nil)
	if _, found := gw.LocateExecutable(); !found {
		fmt.Fprintln(env.Stdout, "converter: not found")
		return ExitSuccess
	}

	version, err := gw.Version(context.Background())
	if err != nil {
		fmt.Fprintln(env.Stdout, "converter: unavailable")
		return ExitSuccess
	}
	fmt.Fprintf(env.Stdout, "converter: %s\n", version)
	return ExitSuccess
}

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-pdfgen/internal/config"
	flag "github.com/spf13/pflag"
)

// runStatusCmd executes the status command and returns an exit code.
func runStatusCmd(args []string, env *Environment) int {
	flags, err := parseStatusFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return ExitUsage
	}

	if err := runStatus(context.Background(), flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runStatus queries the converter and prints its version, activation state,
// and remaining page quota.
func runStatus(ctx context.Context, flags *statusFlags, env *Environment) error {
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	gw := env.gateway(cfg)

	version, err := gw.Version(ctx)
	if err != nil {
		return err
	}

	activated, err := gw.IsActivated(ctx)
	if err != nil {
		return err
	}

	quota, err := gw.RemainingPagesPerHour(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "Version:    %s\n", version)
	if activated {
		fmt.Fprintln(env.Stdout, "Activation: active")
	} else {
		fmt.Fprintln(env.Stdout, "Activation: none")
	}
	if quota.Known() && !quota.Unlimited() {
		fmt.Fprintf(env.Stdout, "Quota:      %s pages/hour remaining\n", quota)
	} else {
		fmt.Fprintf(env.Stdout, "Quota:      %s\n", quota)
	}

	return nil
}

package main

import "fmt"

// run dispatches the subcommand and returns a process exit code.
func run(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[1] {
	case "convert":
		return runConvertCmd(args[2:], env)
	case "status":
		return runStatusCmd(args[2:], env)
	case "doctor":
		return runDoctorCmd(args[2:], env)
	case "version":
		return runVersionCmd(env)
	case "help", "--help", "-h":
		runHelp(args[2:], env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[1])
		printUsage(env.Stderr)
		return ExitUsage
	}
}

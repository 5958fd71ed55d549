package main

import (
	"strings"
	"testing"
)

func TestRunStatusCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints version activation and quota", func(t *testing.T) {
		t.Parallel()

		runner := &mockRunner{Stdout: "pdfgen 11.2.1", StatusStdout: activatedStatus}
		env, stdout, stderr := testEnv(runner)

		code := runStatusCmd(nil, env)
		if code != ExitSuccess {
			t.Fatalf("runStatusCmd() = %d, stderr:\n%s", code, stderr.String())
		}

		out := stdout.String()
		for _, s := range []string{"Version:", "pdfgen 11.2.1", "Activation: active", "523 pages/hour remaining"} {
			if !strings.Contains(out, s) {
				t.Errorf("stdout should contain %q, got:\n%s", s, out)
			}
		}
	})

	t.Run("unactivated converter reports none", func(t *testing.T) {
		t.Parallel()

		runner := &mockRunner{
			Stdout:       "pdfgen 11.2.1",
			StatusStdout: "Activation: None\nPages per hour: 0 (0 remaining)\n",
		}
		env, stdout, stderr := testEnv(runner)

		code := runStatusCmd(nil, env)
		if code != ExitSuccess {
			t.Fatalf("runStatusCmd() = %d, stderr:\n%s", code, stderr.String())
		}
		if !strings.Contains(stdout.String(), "Activation: none") {
			t.Errorf("stdout should report no activation, got:\n%s", stdout.String())
		}
	})

	t.Run("unlimited quota", func(t *testing.T) {
		t.Parallel()

		runner := &mockRunner{
			Stdout:       "pdfgen 11.2.1",
			StatusStdout: "Activation: ABC123\nPages per hour: unlimited (unlimited remaining)\n",
		}
		env, stdout, _ := testEnv(runner)

		if code := runStatusCmd(nil, env); code != ExitSuccess {
			t.Fatalf("runStatusCmd() = %d", code)
		}
		if !strings.Contains(stdout.String(), "Quota:      unlimited") {
			t.Errorf("stdout should report unlimited quota, got:\n%s", stdout.String())
		}
	})

	t.Run("missing converter maps to converter exit code", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnvMissingConverter()

		code := runStatusCmd(nil, env)
		if code != ExitConverter {
			t.Errorf("runStatusCmd() = %d, want %d\nstderr: %s", code, ExitConverter, stderr.String())
		}
	})
}

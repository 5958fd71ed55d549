package main

import (
	"io"
	"os"
	"time"

	pdfgen "github.com/alnah/go-pdfgen"
	"github.com/alnah/go-pdfgen/internal/config"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer

	// Gateway, when set, is used instead of building one from config.
	// Tests inject a gateway with a mock runner here.
	Gateway *pdfgen.Gateway
}

// DefaultEnv returns production dependencies.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// gateway returns the injected gateway or builds one from config.
func (e *Environment) gateway(cfg *config.Config) *pdfgen.Gateway {
	if e.Gateway != nil {
		return e.Gateway
	}
	if cfg != nil && cfg.Converter.Executable != "" {
		return pdfgen.NewGateway(pdfgen.WithExecutable(cfg.Converter.Executable))
	}
	return pdfgen.NewGateway()
}

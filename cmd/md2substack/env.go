package main

import (
	"io"
	"os"
	"time"

	md2substack "github.com/alnah/go-md2substack"
	"github.com/alnah/go-md2substack/internal/preview"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, the process environment and the preview browser.
type Environment struct {
	Now       func() time.Time
	Stdout    io.Writer
	Stderr    io.Writer
	LookupEnv func(key string) (string, bool)
	Environ   func() []string
	DotEnv    string // .env file read for credentials ("" = none)
	Opener    preview.Opener

	// ServiceOptions are appended after the options derived from flags,
	// env and config.
	ServiceOptions []md2substack.Option
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:       time.Now,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		LookupEnv: os.LookupEnv,
		Environ:   os.Environ,
		DotEnv:    ".env",
		Opener:    preview.NewRodOpener(preview.DefaultTimeout),
	}
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/lodestone/lodestone/internal/config"
	"github.com/lodestone/lodestone/pkg/pathutil"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every command handler reaches the filesystem,
	// configuration and output streams through it.
	App struct {
		Config config.Provider
		Fs     afero.Fs
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Fs     afero.Fs
		Stdout io.Writer
		Stderr io.Writer
	}

	// cli carries one command tree's global flags and the session resolved
	// from them before a subcommand runs.
	cli struct {
		app     *App
		flags   rootFlags
		session *session
	}

	rootFlags struct {
		verbose    bool
		configPath string
		output     string
	}

	// session is the effective per-invocation state: flags layered over the
	// loaded configuration.
	session struct {
		cfg       *config.Config
		cfgPath   string
		verbose   bool
		output    config.OutputFormat
		logger    *log.Logger
		sanitizer *pathutil.Sanitizer
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}

	return &App{
		Config: deps.Config,
		Fs:     deps.Fs,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}, nil
}

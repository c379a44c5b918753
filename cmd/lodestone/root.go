// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/lodestone/lodestone/internal/config"
	"github.com/lodestone/lodestone/internal/issue"
	"github.com/lodestone/lodestone/pkg/pathutil"
	"github.com/lodestone/lodestone/pkg/types"
)

// annotationStrictConfig marks commands that fail, rather than warn and fall
// back to defaults, when the configuration cannot be loaded.
const annotationStrictConfig = "lodestone/strict-config"

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the lodestone command tree on top of app.
func NewRootCommand(app *App) *cobra.Command {
	c := &cli{app: app}

	rootCmd := &cobra.Command{
		Use:   "lodestone",
		Short: "Turn arbitrary strings into safe, collision-free file names",
		Long: TitleStyle.Render("lodestone") + SubtitleStyle.Render(" - safe, collision-free file and directory names") + `

lodestone strips the characters that are not allowed in file names on
common platforms and picks a free name by appending " (n)" before the
extension when the path is already taken.

` + SubtitleStyle.Render("Examples:") + `
  lodestone clean 'My: World?'        Print "My World"
  lodestone unique ./Cargo.toml       Print "./Cargo (1).toml" if taken
  lodestone sanitize 'saves/a|b'      Clean, then make unique
  lodestone reserve --dir 'saves/x'   Clean, make unique and create
  lodestone rules                     Show the naming rules`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.prepare(cmd)
		},
	}
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose output")
	pf.StringVar(&c.flags.configPath, "config", "", "config file (default is $HOME/.config/lodestone/config.cue)")
	pf.StringVarP(&c.flags.output, "output", "o", "", "output format: plain or table (default from config)")

	rootCmd.AddCommand(
		newCleanCommand(c),
		newUniqueCommand(c),
		newSanitizeCommand(c),
		newReserveCommand(c),
		newRulesCommand(c),
		newConfigCommand(c),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the production App and runs the command tree.
// This is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(int(types.ExitFailure))
	}

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(types.ExitFailure))
	}
}

// prepare loads configuration and layers the global flags over it.
func (c *cli) prepare(cmd *cobra.Command) error {
	s := &session{}

	loaded, err := c.app.Config.Load(cmd.Context(), config.LoadOptions{
		ConfigFilePath: types.FilesystemPath(c.flags.configPath),
	})
	switch {
	case err != nil && cmd.Annotations[annotationStrictConfig] != "":
		c.renderIssue(issue.ConfigLoadFailedId, string(config.ColorSchemeAuto))
		return err
	case err != nil:
		// Always surface config problems, then carry on with defaults.
		fmt.Fprintln(c.app.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, c.flags.verbose))
		s.cfg = config.DefaultConfig()
	default:
		s.cfg = loaded.Config
		s.cfgPath = loaded.Path
	}

	s.verbose = c.flags.verbose || s.cfg.UI.Verbose
	s.output = s.cfg.Output.Format
	if c.flags.output != "" {
		s.output = config.OutputFormat(c.flags.output)
		if err := s.output.Validate(); err != nil {
			return fmt.Errorf("--output: %w", err)
		}
	}

	s.logger = newLogger(c.app.stderr, s.verbose)
	s.sanitizer = pathutil.New(pathutil.WithFs(c.app.Fs), pathutil.WithLogger(s.logger))
	if s.cfgPath != "" {
		s.logger.Debug("loaded configuration", "path", s.cfgPath)
	}

	c.session = s
	return nil
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// get their suggestions, and the full chain in verbose mode.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// renderIssue writes the Markdown guidance for id to stderr. Rendering
// failures are ignored; the error itself has already been reported.
func (c *cli) renderIssue(id issue.Id, style string) {
	iss := issue.Get(id)
	if iss == nil {
		return
	}
	rendered, err := iss.Render(style)
	if err != nil {
		return
	}
	fmt.Fprint(c.app.stderr, rendered)
}

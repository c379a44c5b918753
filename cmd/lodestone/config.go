// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lodestone/lodestone/internal/config"
)

const (
	configFormatCUE  = "cue"
	configFormatTOML = "toml"
)

// newConfigCommand creates the `lodestone config` command tree.
func newConfigCommand(c *cli) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage lodestone configuration",
		Long: `Manage lodestone configuration.

Configuration is stored in:
  - Linux: ~/.config/lodestone/config.cue
  - macOS: ~/Library/Application Support/lodestone/config.cue
  - Windows: %APPDATA%\lodestone\config.cue

Every key can be overridden with a LODESTONE_* environment variable,
for example LODESTONE_OUTPUT_FORMAT=table.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	var format string
	showCmd := &cobra.Command{
		Use:         "show",
		Short:       "Show the effective configuration",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationStrictConfig: "true"},
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.showConfig(format)
		},
	}
	showCmd.Flags().StringVar(&format, "format", configFormatCUE, "output format: cue or toml")

	var dir string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.initConfig(dir)
		},
	}
	initCmd.Flags().StringVar(&dir, "dir", "", "directory to write config.cue into (default is the config directory)")

	cfgCmd.AddCommand(showCmd, initCmd, &cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.FilePath("")
			if err != nil {
				return err
			}
			fmt.Fprintln(c.app.stdout, path)
			return nil
		},
	})

	return cfgCmd
}

func (c *cli) showConfig(format string) error {
	s := c.session

	var out string
	switch format {
	case configFormatCUE:
		out = config.GenerateCUE(s.cfg)
	case configFormatTOML:
		var err error
		if out, err = config.GenerateTOML(s.cfg); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (valid: %s, %s)", format, configFormatCUE, configFormatTOML)
	}

	source := SubtitleStyle.Render("(using defaults)")
	if s.cfgPath != "" {
		source = s.cfgPath
	}
	fmt.Fprintf(c.app.stderr, "%s: %s\n", PathStyle.Render("Config file"), source)
	fmt.Fprint(c.app.stdout, out)
	return nil
}

func (c *cli) initConfig(dir string) error {
	path, created, err := config.WriteDefault(dir)
	if err != nil {
		return err
	}

	if !created {
		fmt.Fprintf(c.app.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("•"), path)
		return nil
	}
	fmt.Fprintf(c.app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

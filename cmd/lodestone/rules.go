// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/lodestone/lodestone/internal/issue"
	"github.com/lodestone/lodestone/pkg/types"
)

func newRulesCommand(c *cli) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show how names are cleaned and made unique",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			md := rulesMarkdown()
			if raw {
				fmt.Fprint(c.app.stdout, md)
				return nil
			}

			out, err := glamour.Render(md, c.session.cfg.UI.ColorScheme.GlamourStyle())
			if err != nil {
				return fmt.Errorf("failed to render rules: %w", err)
			}
			fmt.Fprint(c.app.stdout, out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the Markdown source instead of rendering it")

	return cmd
}

// rulesMarkdown describes the naming rules. The character list comes from
// the same constant the sanitizer uses.
func rulesMarkdown() string {
	var sb strings.Builder

	sb.WriteString("# Naming rules\n\n")

	sb.WriteString("## Cleaning\n\n")
	sb.WriteString("Only the last element of a path is cleaned. These characters are removed from it:\n\n")
	for _, r := range types.ForbiddenFileNameChars {
		fmt.Fprintf(&sb, "- `%c`\n", r)
	}
	sb.WriteString("\nSurrounding whitespace is trimmed afterwards. A name left empty, or left as `.` or `..`, is rejected.\n\n")

	sb.WriteString("## Making names unique\n\n")
	sb.WriteString("When the path already exists, ` (n)` is inserted before the extension, counting from 1, ")
	sb.WriteString("until a free name is found. The extension is the text after the last dot; ")
	sb.WriteString("a leading dot does not start one.\n\n")
	sb.WriteString("| Taken | Result |\n|---|---|\n")
	sb.WriteString("| `Cargo.toml` | `Cargo (1).toml` |\n")
	sb.WriteString("| `src` | `src (1)` |\n")
	sb.WriteString("| `.minecraft` | `.minecraft (1)` |\n")
	sb.WriteString("| `pack.tar.gz` | `pack.tar (1).gz` |\n\n")

	sb.WriteString("## Exit status\n\n")
	fmt.Fprintf(&sb, "- `%s` every path was processed\n", types.ExitSuccess)
	fmt.Fprintf(&sb, "- `%s` usage or configuration error\n", types.ExitFailure)
	fmt.Fprintf(&sb, "- `%s` a name had no usable characters\n", types.ExitInvalidName)
	fmt.Fprintf(&sb, "- `%s` the filesystem could not be checked or written\n\n", types.ExitFilesystem)

	sb.WriteString("## Known problems\n\n")
	for _, iss := range issue.Values() {
		fmt.Fprintf(&sb, "- %s\n", iss.Title())
	}

	return sb.String()
}

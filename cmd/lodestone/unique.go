// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lodestone/lodestone/pkg/types"
)

var uniqueOp = pathOp{
	name:      "unique",
	operation: "find a free name",
	run: func(s *session, p *types.FilesystemPath) error {
		_, err := s.sanitizer.Unique(p)
		return err
	},
}

func newUniqueCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "unique PATH...",
		Short: `Append " (n)" to paths that already exist`,
		Long: `Print each path unchanged if nothing exists there. Otherwise insert
" (n)" before the extension, counting from 1, and print the first
candidate that is free. A dangling symlink counts as taken.

The name is only checked, not created; use 'lodestone reserve' to claim it.`,
		Example: `  lodestone unique ./Cargo.toml     # ./Cargo (1).toml
  lodestone unique ./src            # ./src (1)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPaths(cmd, uniqueOp, args)
		},
	}
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lodestone/lodestone/pkg/types"
)

var cleanOp = pathOp{
	name:      "clean",
	operation: "clean file name",
	run: func(s *session, p *types.FilesystemPath) error {
		_, err := s.sanitizer.Clean(p)
		return err
	},
}

func newCleanCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "clean PATH...",
		Short: "Strip forbidden characters from the last path element",
		Long: `Strip the characters * : " ' \ / ? < > | from the last element of each
path and trim surrounding whitespace. The rest of the path is printed
unchanged. Nothing on disk is read or written.

A name left empty by cleaning is an error (exit status 2).`,
		Example: `  lodestone clean 'My: World?'
  lodestone clean 'instances/<cool> pack|v2'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPaths(cmd, cleanOp, args)
		},
	}
}

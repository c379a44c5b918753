// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lodestone/lodestone/pkg/types"
)

var sanitizeOp = pathOp{
	name:      "sanitize",
	operation: "sanitize path",
	run: func(s *session, p *types.FilesystemPath) error {
		_, err := s.sanitizer.Sanitize(p)
		return err
	},
}

func newSanitizeCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize PATH...",
		Short: "Clean, then make unique",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPaths(cmd, sanitizeOp, args)
		},
	}
}

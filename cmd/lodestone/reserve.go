// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lodestone/lodestone/pkg/pathutil"
	"github.com/lodestone/lodestone/pkg/types"
)

func newReserveCommand(c *cli) *cobra.Command {
	var (
		dir         bool
		maxAttempts int
	)

	cmd := &cobra.Command{
		Use:   "reserve PATH...",
		Short: "Clean, make unique and create the entry",
		Long: `Clean each path, pick a free name and create it atomically as an empty
file (or a directory with --dir). If another process creates the chosen
name first, the next free name is tried, up to reserve.max_attempts times.`,
		Example: `  lodestone reserve --dir 'instances/My: Pack'
  lodestone reserve --max-attempts 20 'logs/latest.log'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := pathutil.EntryFile
			if dir {
				kind = pathutil.EntryDir
			}
			attempts := c.session.cfg.Reserve.MaxAttempts
			if cmd.Flags().Changed("max-attempts") {
				attempts = maxAttempts
			}

			op := pathOp{
				name:           "reserve",
				operation:      "reserve " + kind.String(),
				createsEntries: true,
				run: func(s *session, p *types.FilesystemPath) error {
					_, err := s.sanitizer.Reserve(p, kind, attempts)
					return err
				},
			}
			return c.runPaths(cmd, op, args)
		},
	}

	cmd.Flags().BoolVar(&dir, "dir", false, "create directories instead of files")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "names to try before giving up (default from config)")

	return cmd
}

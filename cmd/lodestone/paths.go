// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lodestone/lodestone/internal/config"
	"github.com/lodestone/lodestone/internal/issue"
	"github.com/lodestone/lodestone/pkg/pathutil"
	"github.com/lodestone/lodestone/pkg/types"
)

const (
	statusUnchanged = "unchanged"
	statusRenamed   = "renamed"
	statusCreated   = "created"
	statusFailed    = "failed"
)

type (
	// pathOp is a path transformation exposed as a command. run mutates p in
	// place and leaves it untouched on error.
	pathOp struct {
		// name is the command name, used in the failure summary.
		name string
		// operation is the verb phrase reported in errors ("clean file name").
		operation string
		// createsEntries marks operations whose unclassified failures come
		// from creating files or directories.
		createsEntries bool
		run            func(s *session, p *types.FilesystemPath) error
	}

	pathResult struct {
		input  string
		output string
		status string
		err    error
	}
)

var issueSuggestions = map[issue.Id][]string{
	issue.NoValidFileNameId: {
		"Use a name with at least one letter, digit or other safe character",
		"Run 'lodestone rules' to see which characters are removed",
	},
	issue.ExistenceCheckFailedId: {
		"Check that you can list the parent directory",
	},
	issue.ReserveExhaustedId: {
		"Retry once the competing process has finished",
		"Raise reserve.max_attempts in your config file",
	},
	issue.EntryCreateFailedId: {
		"Make sure the parent directory exists and is writable",
	},
}

// runPaths applies op to every argument. All arguments are processed even
// when some fail; the exit code is the one of the first failure.
func (c *cli) runPaths(cmd *cobra.Command, op pathOp, args []string) error {
	s := c.session
	results := make([]pathResult, 0, len(args))
	code := types.ExitSuccess
	failed := 0

	for _, arg := range args {
		p := types.FilesystemPath(arg)
		err := op.run(s, &p)

		r := pathResult{input: arg, output: p.String(), err: err}
		switch {
		case err != nil:
			r.status = statusFailed
			failed++
			id, exit := classifyPathError(op, err)
			if code.IsSuccess() {
				code = exit
			}
			c.reportPathError(op, arg, id, err)
		case op.createsEntries:
			r.status = statusCreated
		case r.output == arg:
			r.status = statusUnchanged
		default:
			r.status = statusRenamed
		}
		results = append(results, r)
	}

	c.renderResults(results)

	if failed > 0 {
		cmd.SilenceUsage = true
		return &ExitError{
			Code: code,
			Err:  fmt.Errorf("%s failed for %d of %d path(s)", op.name, failed, len(args)),
		}
	}
	return nil
}

// classifyPathError maps a sanitizer error to its issue and exit code.
func classifyPathError(op pathOp, err error) (issue.Id, types.ExitCode) {
	switch {
	case errors.Is(err, pathutil.ErrNoValidFileNameChars):
		return issue.NoValidFileNameId, types.ExitInvalidName
	case errors.Is(err, pathutil.ErrNoFileName):
		return 0, types.ExitInvalidName
	case errors.Is(err, pathutil.ErrExistenceCheck):
		return issue.ExistenceCheckFailedId, types.ExitFilesystem
	case errors.Is(err, pathutil.ErrReserveExhausted):
		return issue.ReserveExhaustedId, types.ExitFilesystem
	case op.createsEntries, errors.Is(err, fs.ErrPermission), errors.Is(err, fs.ErrNotExist):
		return issue.EntryCreateFailedId, types.ExitFilesystem
	default:
		return 0, types.ExitFailure
	}
}

func (c *cli) reportPathError(op pathOp, input string, id issue.Id, err error) {
	ec := issue.NewErrorContext().
		WithOperation(op.operation).
		WithResource(input).
		Wrap(err)
	for _, sug := range issueSuggestions[id] {
		ec.WithSuggestion(sug)
	}

	fmt.Fprintln(c.app.stderr, ErrorStyle.Render("✗ ")+ec.Build().Format(c.session.verbose))
	if c.session.verbose && id != 0 {
		c.renderIssue(id, c.session.cfg.UI.ColorScheme.GlamourStyle())
	}
}

// renderResults prints successful outputs one per line, or every result as
// a table when table output is selected.
func (c *cli) renderResults(results []pathResult) {
	if c.session.output != config.OutputTable {
		for _, r := range results {
			if r.err == nil {
				fmt.Fprintln(c.app.stdout, r.output)
			}
		}
		return
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		out := r.output
		if r.err != nil {
			out = "-"
		}
		rows = append(rows, []string{r.input, out, r.status})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers("INPUT", "RESULT", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})

	fmt.Fprintln(c.app.stdout, t.Render())
}

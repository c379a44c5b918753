// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Issue identifiers. Values start at 1 so the zero Id means "no issue".
const (
	NoValidFileNameId Id = iota + 1
	ExistenceCheckFailedId
	ReserveExhaustedId
	EntryCreateFailedId
	ConfigLoadFailedId
)

type (
	// Id identifies an Issue in the catalog.
	Id int

	// MarkdownMsg is Markdown guidance shown to the user.
	MarkdownMsg string

	// Issue is a failure class with Markdown guidance.
	Issue struct {
		id    Id
		title string
		mdMsg MarkdownMsg
	}
)

var (
	render = glamour.Render

	noValidFileNameIssue = &Issue{
		id:    NoValidFileNameId,
		title: "No usable characters left",
		mdMsg: `
# No usable characters left in the name

Every character of the name was one of the characters that cannot appear
in a file name on at least one platform:

~~~
* : " ' \ / ? < > |
~~~

Removing them left nothing (or only ` + "`.`" + ` / ` + "`..`" + `).

## Things you can try:
- Pick a name with at least one letter, digit or other safe character
- Run ` + "`lodestone rules`" + ` to see how names are cleaned`,
	}

	existenceCheckFailedIssue = &Issue{
		id:    ExistenceCheckFailedId,
		title: "Could not check whether a path exists",
		mdMsg: `
# Could not check whether the path exists

The filesystem refused to say whether an entry already occupies the name,
so no unique name could be chosen safely.

## Things you can try:
- Check that you can list the parent directory
- Check that no parent component is a regular file`,
	}

	reserveExhaustedIssue = &Issue{
		id:    ReserveExhaustedId,
		title: "Name kept being taken",
		mdMsg: `
# The name kept being taken

Another process created each chosen name before it could be reserved.

## Things you can try:
- Retry once the other process has finished
- Raise ` + "`reserve.max_attempts`" + ` in your config file`,
	}

	entryCreateFailedIssue = &Issue{
		id:    EntryCreateFailedId,
		title: "Could not create the entry",
		mdMsg: `
# Could not create the entry

A unique name was chosen but the file or directory could not be created.

## Things you can try:
- Make sure the parent directory exists
- Check write permissions on the parent directory`,
	}

	configLoadFailedIssue = &Issue{
		id:    ConfigLoadFailedId,
		title: "Configuration could not be loaded",
		mdMsg: `
# Configuration could not be loaded

## Things you can try:
- Check the CUE syntax of your config file
- Show the effective configuration:
~~~
$ lodestone config show
~~~
- Write a fresh default file:
~~~
$ lodestone config init
~~~`,
	}

	issues = map[Id]*Issue{
		noValidFileNameIssue.Id():      noValidFileNameIssue,
		existenceCheckFailedIssue.Id(): existenceCheckFailedIssue,
		reserveExhaustedIssue.Id():     reserveExhaustedIssue,
		entryCreateFailedIssue.Id():    entryCreateFailedIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
	}
)

// Id returns the issue identifier.
func (i *Issue) Id() Id {
	return i.id
}

// Title returns a short heading for the issue.
func (i *Issue) Title() string {
	return i.title
}

// MarkdownMsg returns the raw Markdown guidance.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the guidance with the named glamour style ("auto",
// "dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(strings.TrimSpace(string(i.mdMsg)), stylePath)
}

// Values returns every issue, ordered by Id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return cmp.Compare(a.id, b.id)
	})
}

// Get returns the issue for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"

	"github.com/lodestone/lodestone/internal/issue"
	"github.com/lodestone/lodestone/pkg/types"
)

func TestRulesMarkdown_ListsEveryForbiddenChar(t *testing.T) {
	t.Parallel()

	md := rulesMarkdown()
	for _, r := range types.ForbiddenFileNameChars {
		if item := "- `" + string(r) + "`"; !strings.Contains(md, item) {
			t.Errorf("rules should list %q", item)
		}
	}
	for _, iss := range issue.Values() {
		if !strings.Contains(md, iss.Title()) {
			t.Errorf("rules should mention issue %q", iss.Title())
		}
	}
}

func TestRulesCommand(t *testing.T) {
	t.Parallel()

	raw := runCLI(t, Dependencies{}, "rules", "--raw")
	if raw.err != nil {
		t.Fatalf("rules --raw returned error: %v", raw.err)
	}
	if raw.stdout != rulesMarkdown() {
		t.Error("rules --raw should print the Markdown source verbatim")
	}

	rendered := runCLI(t, Dependencies{}, "rules")
	if rendered.err != nil {
		t.Fatalf("rules returned error: %v", rendered.err)
	}
	if !strings.Contains(rendered.stdout, "Naming rules") {
		t.Errorf("rendered rules missing title:\n%s", rendered.stdout)
	}
}

package ufw

import (
	"github.com/pmezard/go-difflib/difflib"
)

// DiffRules returns a unified diff between two rule listings, rendered in
// the tool's own display convention. Empty when nothing changed.
func DiffRules(before, after RuleSet) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(joinLines(FormatRules(before))),
		B:        difflib.SplitLines(joinLines(FormatRules(after))),
		FromFile: "before",
		ToFile:   "after",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

func joinLines(lines []string) string {
	out := ""
	for _, l := range lines {
		out += l + "\n"
	}
	return out
}

package ufw

import (
	"fmt"
	"strings"
)

// FormatRule renders a rule back to the textual convention the tool uses
// for its listing. Parsing a formatted rule yields the same structured
// fields (stable under re-parse). Raw-only rules render verbatim.
func FormatRule(r Rule) string {
	if !r.Structured() {
		return r.Raw
	}

	to := formatToColumn(r)
	action := strings.ToUpper(string(r.Action))
	switch r.Direction {
	case DirectionIn:
		action += " IN"
	case DirectionOut:
		action += " OUT"
	case DirectionUnknown:
		// routed rules come back from the tool as FWD; keep the token so
		// the line re-parses to the same direction
		action += " FWD"
	}

	from := r.Source
	if from == "" {
		from = "Anywhere"
		if r.V6 {
			from += " (v6)"
		}
	}

	line := pad(to, 27) + pad(action, 12) + from
	if r.Comment != "" {
		line += "  # " + r.Comment
	}
	return strings.TrimRight(line, " ")
}

func formatToColumn(r Rule) string {
	var parts []string
	if r.App != "" {
		parts = append(parts, r.App)
	}
	if r.Destination != "" {
		parts = append(parts, r.Destination)
	}
	switch {
	case r.Port != "" && (r.Protocol == ProtocolTCP || r.Protocol == ProtocolUDP):
		parts = append(parts, r.Port+"/"+string(r.Protocol))
	case r.Port != "":
		parts = append(parts, r.Port)
	}
	if len(parts) == 0 {
		parts = append(parts, "Anywhere")
	}

	to := strings.Join(parts, " ")
	if r.Interface != "" {
		to += " on " + r.Interface
	}
	if r.V6 {
		to += " (v6)"
	}
	return to
}

// FormatRuleNumbered renders a rule in the numbered dialect.
func FormatRuleNumbered(r Rule) string {
	return fmt.Sprintf("[%2d] %s", r.Ordinal, FormatRule(r))
}

// FormatRules renders the whole listing, one line per rule.
func FormatRules(rules RuleSet) []string {
	lines := make([]string, 0, len(rules))
	for _, r := range rules {
		lines = append(lines, FormatRule(r))
	}
	return lines
}

// pad right-pads s to width, always leaving at least two column-separating
// spaces so the listing re-parses on the 2+ space boundary.
func pad(s string, width int) string {
	if len(s)+2 > width {
		return s + "  "
	}
	return s + strings.Repeat(" ", width-len(s))
}

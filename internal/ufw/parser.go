package ufw

import (
	"net"
	"regexp"
	"strconv"
	"strings"
)

var (
	defaultsRe = regexp.MustCompile(`Default:\s*(\w+)\s*\(incoming\),\s*(\w+)\s*\(outgoing\)`)
	loggingRe  = regexp.MustCompile(`Logging:\s*(\w+)(?:\s*\((\w+)\))?`)

	// numbered dialect: "[ 3] 22/tcp  ALLOW IN  Anywhere"
	numberedRe = regexp.MustCompile(`^\[\s*(\d+)\]\s+(.+)$`)

	// action column: "ALLOW", "DENY IN", "REJECT OUT", "LIMIT IN"
	actionColRe = regexp.MustCompile(`^(ALLOW|DENY|REJECT|LIMIT)(?:\s+(IN|OUT|FWD))?$`)

	columnSplitRe = regexp.MustCompile(`\s{2,}`)
	portSpecRe    = regexp.MustCompile(`^\d[\d,:]*$`)
)

// ParseStatus extracts the global firewall state from `ufw status verbose`
// output. Pure function; unrecognized fields keep ufw's documented defaults.
func ParseStatus(raw string) Status {
	st := Status{
		DefaultIncoming: PolicyDeny,
		DefaultOutgoing: PolicyAllow,
		Logging:         LogOff,
	}

	if strings.Contains(raw, "Status: active") {
		st.Enabled = true
	}

	if m := defaultsRe.FindStringSubmatch(raw); m != nil {
		st.DefaultIncoming = ParsePolicy(m[1])
		st.DefaultOutgoing = ParsePolicy(m[2])
	}

	// "Logging: on (low)" carries the level in parens; bare "on" means low.
	if m := loggingRe.FindStringSubmatch(raw); m != nil {
		if m[2] != "" {
			st.Logging = ParseLogLevel(m[2])
		} else {
			st.Logging = ParseLogLevel(m[1])
		}
	}

	return st
}

// lineMatcher classifies one rule line. Matchers run in declared order; the
// first match wins, and an unmatched line falls back to a raw-only Rule so
// no listing line is ever dropped.
type lineMatcher struct {
	name  string
	match func(line string, position int) (Rule, bool)
}

var ruleMatchers = []lineMatcher{
	{name: "numbered", match: matchNumberedLine},
	{name: "plain", match: matchPlainLine},
}

// ParseRules extracts the ordered rule listing from `ufw status` output in
// either the plain or the numbered dialect. Pure function. Every rule line
// yields exactly one Rule; unparseable lines become raw-only Rules.
func ParseRules(raw string) RuleSet {
	var rules RuleSet
	inRules := false
	position := 0

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		// Rules start after the column-header separator line.
		if !inRules {
			if strings.HasPrefix(trimmed, "--") {
				inRules = true
			}
			continue
		}
		if trimmed == "" {
			continue
		}

		position++
		rule := rawRule(trimmed, position)
		for _, m := range ruleMatchers {
			if r, ok := m.match(trimmed, position); ok {
				rule = r
				break
			}
		}
		rules = append(rules, rule)
	}

	return rules
}

// rawRule is the guaranteed fallback: raw text preserved, structured fields
// unknown.
func rawRule(line string, ordinal int) Rule {
	return Rule{
		Ordinal:   ordinal,
		Action:    ActionUnknown,
		Direction: DirectionUnknown,
		Protocol:  ProtocolUnknown,
		Raw:       line,
	}
}

// matchNumberedLine handles the `ufw status numbered` dialect. The bracketed
// ordinal is taken verbatim, so gaps in the tool's own numbering survive.
func matchNumberedLine(line string, position int) (Rule, bool) {
	m := numberedRe.FindStringSubmatch(line)
	if m == nil {
		return Rule{}, false
	}
	ordinal, err := strconv.Atoi(m[1])
	if err != nil {
		return Rule{}, false
	}

	if r, ok := parseRuleColumns(m[2], ordinal, line); ok {
		return r, true
	}
	// The bracket matched but the body did not: keep the declared ordinal.
	return rawRule(line, ordinal), true
}

// matchPlainLine handles the plain `ufw status` dialect; the ordinal is the
// 1-based position of the line in the listing.
func matchPlainLine(line string, position int) (Rule, bool) {
	return parseRuleColumns(line, position, line)
}

// parseRuleColumns splits "To  Action  From [# comment]" into a Rule.
func parseRuleColumns(text string, ordinal int, raw string) (Rule, bool) {
	comment := ""
	if i := strings.Index(text, "#"); i >= 0 {
		comment = strings.TrimSpace(text[i+1:])
		text = strings.TrimSpace(text[:i])
	}

	cols := columnSplitRe.Split(text, -1)
	if len(cols) < 2 {
		return Rule{}, false
	}

	am := actionColRe.FindStringSubmatch(strings.TrimSpace(cols[1]))
	if am == nil {
		return Rule{}, false
	}

	r := Rule{
		Ordinal:   ordinal,
		Action:    ParseAction(am[1]),
		Direction: DirectionIn,
		Protocol:  ProtocolAny,
		Comment:   comment,
		Raw:       raw,
	}
	switch am[2] {
	case "OUT":
		r.Direction = DirectionOut
	case "FWD":
		// routed rules are outside the in/out model
		r.Direction = DirectionUnknown
	}

	parseToColumn(&r, cols[0])
	if len(cols) >= 3 {
		parseFromColumn(&r, cols[2])
	}

	return r, true
}

// parseToColumn fills port/protocol/destination/app from the To column.
func parseToColumn(r *Rule, col string) {
	col = strings.TrimSpace(col)
	if strings.Contains(col, "(v6)") {
		r.V6 = true
		col = strings.TrimSpace(strings.ReplaceAll(col, "(v6)", ""))
	}
	if i := strings.Index(col, " on "); i >= 0 {
		r.Interface = strings.TrimSpace(col[i+4:])
		col = strings.TrimSpace(col[:i])
	}

	for _, tok := range strings.Fields(col) {
		switch {
		case strings.EqualFold(tok, "anywhere"):
			// any destination, any port
		case isPortProto(tok):
			i := strings.LastIndex(tok, "/")
			r.Port = tok[:i]
			r.Protocol = ParseProtocol(tok[i+1:])
		case portSpecRe.MatchString(tok):
			r.Port = tok
		case isAddr(tok):
			r.Destination = tok
		default:
			// application profile name, e.g. "OpenSSH"
			r.App = tok
		}
	}
}

// parseFromColumn fills the source from the From column, kept verbatim
// except for the Anywhere placeholder.
func parseFromColumn(r *Rule, col string) {
	col = strings.TrimSpace(col)
	if strings.Contains(col, "(v6)") {
		r.V6 = true
		col = strings.TrimSpace(strings.ReplaceAll(col, "(v6)", ""))
	}
	if strings.EqualFold(col, "anywhere") {
		return
	}
	r.Source = col
}

// isPortProto reports whether tok is "port/proto" with a real transport
// protocol, which disambiguates it from a CIDR like 10.0.0.0/8.
func isPortProto(tok string) bool {
	i := strings.LastIndex(tok, "/")
	if i <= 0 {
		return false
	}
	p := ParseProtocol(tok[i+1:])
	if p != ProtocolTCP && p != ProtocolUDP {
		return false
	}
	return portSpecRe.MatchString(tok[:i])
}

func isAddr(tok string) bool {
	if strings.Contains(tok, "/") {
		_, _, err := net.ParseCIDR(tok)
		return err == nil
	}
	return net.ParseIP(tok) != nil
}

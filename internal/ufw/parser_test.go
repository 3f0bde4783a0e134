package ufw

import (
	"strings"
	"testing"
)

const verboseOutput = `Status: active
Logging: on (low)
Default: deny (incoming), allow (outgoing), disabled (routed)
New profiles: skip

To                         Action      From
--                         ------      ----
22/tcp                     ALLOW IN    Anywhere
80,443/tcp                 ALLOW IN    Anywhere                   # web
53                         ALLOW IN    Anywhere
Anywhere                   DENY IN     203.0.113.0/24
22/tcp (v6)                ALLOW IN    Anywhere (v6)
`

const numberedOutput = `Status: active

     To                         Action      From
     --                         ------      ----
[ 1] 22/tcp                     ALLOW IN    Anywhere
[ 2] 80/tcp                     DENY IN     10.0.0.0/8
[ 4] Anywhere                   ALLOW OUT   192.168.1.5
`

func TestParseStatusVerbose(t *testing.T) {
	st := ParseStatus(verboseOutput)
	if !st.Enabled {
		t.Error("expected enabled firewall")
	}
	if st.DefaultIncoming != PolicyDeny {
		t.Errorf("DefaultIncoming = %s, want deny", st.DefaultIncoming)
	}
	if st.DefaultOutgoing != PolicyAllow {
		t.Errorf("DefaultOutgoing = %s, want allow", st.DefaultOutgoing)
	}
	if st.Logging != LogLow {
		t.Errorf("Logging = %s, want low", st.Logging)
	}
}

func TestParseStatusVariants(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Status
	}{
		{
			name: "inactive",
			raw:  "Status: inactive\n",
			want: Status{Enabled: false, DefaultIncoming: PolicyDeny, DefaultOutgoing: PolicyAllow, Logging: LogOff},
		},
		{
			name: "reject policies",
			raw:  "Status: active\nLogging: on (high)\nDefault: reject (incoming), deny (outgoing), disabled (routed)\n",
			want: Status{Enabled: true, DefaultIncoming: PolicyReject, DefaultOutgoing: PolicyDeny, Logging: LogHigh},
		},
		{
			name: "logging off",
			raw:  "Status: active\nLogging: off\nDefault: allow (incoming), allow (outgoing), disabled (routed)\n",
			want: Status{Enabled: true, DefaultIncoming: PolicyAllow, DefaultOutgoing: PolicyAllow, Logging: LogOff},
		},
		{
			name: "bare logging on means low",
			raw:  "Status: active\nLogging: on\nDefault: deny (incoming), allow (outgoing), disabled (routed)\n",
			want: Status{Enabled: true, DefaultIncoming: PolicyDeny, DefaultOutgoing: PolicyAllow, Logging: LogLow},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseStatus(tc.raw); got != tc.want {
				t.Errorf("ParseStatus = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseRulesPlain(t *testing.T) {
	rules := ParseRules(verboseOutput)
	if len(rules) != 5 {
		t.Fatalf("expected 5 rules, got %d", len(rules))
	}

	ssh := rules[0]
	if ssh.Ordinal != 1 || ssh.Action != ActionAllow || ssh.Direction != DirectionIn ||
		ssh.Protocol != ProtocolTCP || ssh.Port != "22" || ssh.Source != "" {
		t.Errorf("ssh rule mismatch: %+v", ssh)
	}

	web := rules[1]
	if web.Port != "80,443" || web.Protocol != ProtocolTCP || web.Comment != "web" {
		t.Errorf("web rule mismatch: %+v", web)
	}

	dns := rules[2]
	if dns.Port != "53" || dns.Protocol != ProtocolAny {
		t.Errorf("dns rule mismatch: %+v", dns)
	}

	block := rules[3]
	if block.Action != ActionDeny || block.Source != "203.0.113.0/24" || block.Port != "" {
		t.Errorf("block rule mismatch: %+v", block)
	}

	v6 := rules[4]
	if !v6.V6 || v6.Port != "22" || v6.Protocol != ProtocolTCP {
		t.Errorf("v6 rule mismatch: %+v", v6)
	}
}

func TestParseRulesNumberedPreservesOrdinals(t *testing.T) {
	rules := ParseRules(numberedOutput)
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}

	// Gaps in the tool's own numbering are preserved verbatim.
	wantOrdinals := []int{1, 2, 4}
	for i, want := range wantOrdinals {
		if rules[i].Ordinal != want {
			t.Errorf("rule %d: ordinal = %d, want %d", i, rules[i].Ordinal, want)
		}
	}

	if rules[1].Source != "10.0.0.0/8" || rules[1].Action != ActionDeny {
		t.Errorf("rule 2 mismatch: %+v", rules[1])
	}
	if rules[2].Direction != DirectionOut || rules[2].Source != "192.168.1.5" {
		t.Errorf("rule 4 mismatch: %+v", rules[2])
	}
}

func TestParseRulesFallbackKeepsUnknownLines(t *testing.T) {
	raw := `Status: active

To                         Action      From
--                         ------      ----
22/tcp                     ALLOW IN    Anywhere
some future format the tool might emit
[ 3] another odd line without columns
`
	rules := ParseRules(raw)
	if len(rules) != 3 {
		t.Fatalf("no line may be dropped: got %d rules, want 3", len(rules))
	}

	odd := rules[1]
	if odd.Structured() {
		t.Errorf("unmatched line should be raw-only: %+v", odd)
	}
	if odd.Raw != "some future format the tool might emit" {
		t.Errorf("raw text not preserved: %q", odd.Raw)
	}
	if odd.Action != ActionUnknown || odd.Direction != DirectionUnknown || odd.Protocol != ProtocolUnknown {
		t.Errorf("structured fields should be unknown: %+v", odd)
	}

	// Numbered pattern matched but column parse failed: declared ordinal wins.
	if rules[2].Ordinal != 3 {
		t.Errorf("declared ordinal not preserved: %d", rules[2].Ordinal)
	}
	if rules[2].Structured() {
		t.Errorf("unparseable numbered line should be raw-only: %+v", rules[2])
	}
}

func TestParseRulesLineCountInvariant(t *testing.T) {
	for _, raw := range []string{verboseOutput, numberedOutput} {
		ruleLines := 0
		inRules := false
		for _, line := range strings.Split(raw, "\n") {
			trimmed := strings.TrimSpace(line)
			if !inRules {
				if strings.HasPrefix(trimmed, "--") {
					inRules = true
				}
				continue
			}
			if trimmed != "" {
				ruleLines++
			}
		}
		if got := len(ParseRules(raw)); got != ruleLines {
			t.Errorf("rule count %d != listing line count %d", got, ruleLines)
		}
	}
}

func TestParseRulesEmptyAndInactive(t *testing.T) {
	if rules := ParseRules("Status: inactive\n"); len(rules) != 0 {
		t.Errorf("inactive status should yield no rules, got %d", len(rules))
	}
	if rules := ParseRules(""); len(rules) != 0 {
		t.Errorf("empty input should yield no rules, got %d", len(rules))
	}
}

func TestParseRulesInterfaceAndApp(t *testing.T) {
	raw := `To                         Action      From
--                         ------      ----
22/tcp on eth0             ALLOW IN    Anywhere
OpenSSH                    ALLOW IN    Anywhere
`
	rules := ParseRules(raw)
	if len(rules) != 2 {
		t.Fatalf("got %d rules", len(rules))
	}
	if rules[0].Interface != "eth0" || rules[0].Port != "22" {
		t.Errorf("interface rule mismatch: %+v", rules[0])
	}
	if rules[1].App != "OpenSSH" || rules[1].Port != "" {
		t.Errorf("app rule mismatch: %+v", rules[1])
	}
}

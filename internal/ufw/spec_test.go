package ufw

import (
	"errors"
	"strings"
	"testing"
)

func TestRuleSpecValidate(t *testing.T) {
	valid := []RuleSpec{
		{Action: ActionAllow, Port: "22", Protocol: ProtocolTCP},
		{Action: ActionDeny, Direction: DirectionOut, Port: "53"},
		{Action: ActionLimit, Port: "22", Protocol: ProtocolTCP, Comment: "rate limit ssh"},
		{Action: ActionAllow, Source: "10.0.0.0/8"},
		{Action: ActionReject, Port: "6000:6063", Protocol: ProtocolTCP},
		{Action: ActionAllow, Port: "80,443", Protocol: ProtocolTCP},
		{Action: ActionAllow, Port: "ssh"},
	}
	for _, s := range valid {
		if err := s.Validate(); err != nil {
			t.Errorf("Validate(%+v) = %v, want nil", s, err)
		}
	}

	invalid := []struct {
		spec  RuleSpec
		field string
	}{
		{RuleSpec{Action: "drop", Port: "22"}, "action"},
		{RuleSpec{Action: ActionAllow, Direction: "forward", Port: "22"}, "direction"},
		{RuleSpec{Action: ActionAllow, Port: "70000"}, "port"},
		{RuleSpec{Action: ActionAllow, Port: "22", Protocol: "icmp"}, "protocol"},
		{RuleSpec{Action: ActionAllow, Port: "22", Source: "300.0.0.1"}, "source"},
		{RuleSpec{Action: ActionAllow, Port: "22", Comment: "a;b"}, "comment"},
		{RuleSpec{Action: ActionAllow}, "rule"},
		{RuleSpec{Action: ActionAllow, Port: "80,443"}, "port"},
		{RuleSpec{Action: ActionAllow, Port: "6000:6063"}, "port"},
	}
	for _, tc := range invalid {
		err := tc.spec.Validate()
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Validate(%+v) = %v, want ValidationError", tc.spec, err)
			continue
		}
		if verr.Field != tc.field {
			t.Errorf("Validate(%+v): field = %s, want %s", tc.spec, verr.Field, tc.field)
		}
	}
}

func TestRuleSpecArgs(t *testing.T) {
	cases := []struct {
		spec RuleSpec
		want string
	}{
		{
			RuleSpec{Action: ActionAllow, Port: "22", Protocol: ProtocolTCP},
			"allow in 22/tcp",
		},
		{
			RuleSpec{Action: ActionDeny, Direction: DirectionOut, Port: "53"},
			"deny out 53",
		},
		{
			RuleSpec{Action: ActionAllow, Port: "22", Protocol: ProtocolTCP, Source: "10.0.0.0/8"},
			"allow in from 10.0.0.0/8 to any port 22 proto tcp",
		},
		{
			RuleSpec{Action: ActionAllow, Source: "192.168.1.5"},
			"allow in from 192.168.1.5 to any",
		},
		{
			RuleSpec{Action: ActionAllow, Port: "22", Protocol: ProtocolTCP, Comment: "office ssh"},
			"allow in 22/tcp comment office ssh",
		},
		{
			// "any" source collapses to the short form
			RuleSpec{Action: ActionAllow, Port: "80", Source: "any"},
			"allow in 80",
		},
	}

	for _, tc := range cases {
		if got := strings.Join(tc.spec.Args(), " "); got != tc.want {
			t.Errorf("Args(%+v) = %q, want %q", tc.spec, got, tc.want)
		}
	}
}

func TestRuleSpecString(t *testing.T) {
	s := RuleSpec{Action: ActionAllow, Port: "22", Protocol: ProtocolTCP}
	if got := s.String(); got != "ufw allow in 22/tcp" {
		t.Errorf("String() = %q", got)
	}
}

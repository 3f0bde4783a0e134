package ufw

import (
	"strings"
	"time"
)

// Policy is a default traffic policy.
type Policy string

const (
	PolicyAllow   Policy = "allow"
	PolicyDeny    Policy = "deny"
	PolicyReject  Policy = "reject"
	PolicyUnknown Policy = "unknown"
)

// ParsePolicy maps tool output to a Policy.
func ParsePolicy(s string) Policy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "allow", "allowed":
		return PolicyAllow
	case "deny", "denied":
		return PolicyDeny
	case "reject", "rejected":
		return PolicyReject
	}
	return PolicyUnknown
}

// Action is what a rule does with matching traffic.
type Action string

const (
	ActionAllow   Action = "allow"
	ActionDeny    Action = "deny"
	ActionReject  Action = "reject"
	ActionLimit   Action = "limit"
	ActionUnknown Action = "unknown"
)

// ParseAction maps tool output to an Action.
func ParseAction(s string) Action {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "allow":
		return ActionAllow
	case "deny":
		return ActionDeny
	case "reject":
		return ActionReject
	case "limit":
		return ActionLimit
	}
	return ActionUnknown
}

// Direction is the traffic direction a rule applies to.
type Direction string

const (
	DirectionIn      Direction = "in"
	DirectionOut     Direction = "out"
	DirectionUnknown Direction = "unknown"
)

// Protocol is the transport protocol of a rule.
type Protocol string

const (
	ProtocolAny     Protocol = "any"
	ProtocolTCP     Protocol = "tcp"
	ProtocolUDP     Protocol = "udp"
	ProtocolUnknown Protocol = "unknown"
)

// ParseProtocol maps tool output to a Protocol.
func ParseProtocol(s string) Protocol {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return ProtocolAny
	case "tcp":
		return ProtocolTCP
	case "udp":
		return ProtocolUDP
	}
	return ProtocolUnknown
}

// LogLevel is the firewall's logging verbosity.
type LogLevel string

const (
	LogOff     LogLevel = "off"
	LogLow     LogLevel = "low"
	LogMedium  LogLevel = "medium"
	LogHigh    LogLevel = "high"
	LogFull    LogLevel = "full"
	LogUnknown LogLevel = "unknown"
)

// ParseLogLevel maps tool output to a LogLevel.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return LogOff
	case "on", "low":
		return LogLow
	case "medium":
		return LogMedium
	case "high":
		return LogHigh
	case "full":
		return LogFull
	}
	return LogUnknown
}

// Status is an immutable snapshot of the firewall's global state, replaced
// wholesale on each refresh.
type Status struct {
	Enabled         bool
	DefaultIncoming Policy
	DefaultOutgoing Policy
	Logging         LogLevel
}

// Rule is a single firewall rule as reported by the tool's listing.
// A Rule is immutable once parsed. Ordinal is the 1-based position the tool
// reports; it is the authoritative key for deletion, so it must match the
// listing exactly.
type Rule struct {
	Ordinal     int
	Action      Action
	Direction   Direction
	Protocol    Protocol
	Port        string // "22", "80,443", "6000:6063"; empty = any port
	Destination string // destination address when the To column carries one
	Source      string // IP or CIDR; empty = Anywhere
	App         string // application profile name (e.g. "OpenSSH")
	Interface   string // bound interface ("on eth0"), if any
	Comment     string
	V6          bool
	Raw         string // the original listing line, always populated
}

// Structured reports whether the rule carries parsed fields beyond Raw.
// Unrecognized listing lines are preserved raw-only so nothing is dropped.
func (r Rule) Structured() bool {
	return r.Action != ActionUnknown
}

// RuleSet is the ordered rule listing. Order is significant: the tool
// evaluates and deletes rules positionally.
type RuleSet []Rule

// Snapshot pairs the global status with the rule listing taken in the same
// refresh. Callers never observe a half-updated pair.
type Snapshot struct {
	Status Status
	Rules  RuleSet
	Taken  time.Time
}

package ufw

import (
	"fmt"
	"strings"

	"grimm.is/palisade/internal/validation"
)

// RuleSpec describes a rule to add. It is validated client-side before any
// privileged command is attempted.
type RuleSpec struct {
	Action    Action
	Direction Direction
	Port      string
	Protocol  Protocol
	Source    string
	Comment   string
}

// Validate checks the spec without touching the system. A malformed spec
// fails fast with a *ValidationError.
func (s RuleSpec) Validate() error {
	if err := validation.ValidateAction(string(s.Action)); err != nil {
		return &ValidationError{Field: "action", Reason: err}
	}
	if s.Direction != "" {
		if err := validation.ValidateDirection(string(s.Direction)); err != nil {
			return &ValidationError{Field: "direction", Reason: err}
		}
	}
	if err := validation.ValidateProtocol(string(s.Protocol)); err != nil {
		return &ValidationError{Field: "protocol", Reason: err}
	}
	if err := validation.ValidatePortSpec(s.Port); err != nil {
		return &ValidationError{Field: "port", Reason: err}
	}
	if err := validation.ValidateSource(s.Source); err != nil {
		return &ValidationError{Field: "source", Reason: err}
	}
	if err := validation.ValidateComment(s.Comment); err != nil {
		return &ValidationError{Field: "comment", Reason: err}
	}

	if s.Port == "" && s.normalizedSource() == "" {
		return &ValidationError{Field: "rule", Reason: fmt.Errorf("a port or a source is required")}
	}

	// ufw rejects port lists and ranges without an explicit protocol.
	if strings.ContainsAny(s.Port, ",:") && s.Protocol != ProtocolTCP && s.Protocol != ProtocolUDP {
		return &ValidationError{Field: "port", Reason: fmt.Errorf("port lists and ranges require tcp or udp")}
	}

	return nil
}

// Args builds the ufw argument vector for this spec, matching the tool's
// documented grammar: the short form `allow in 22/tcp` when no source is
// given, the long `from ... to any port ...` form otherwise.
func (s RuleSpec) Args() []string {
	dir := s.Direction
	if dir == "" {
		dir = DirectionIn
	}
	args := []string{string(s.Action), string(dir)}

	src := s.normalizedSource()
	if src != "" {
		args = append(args, "from", src, "to", "any")
		if s.Port != "" {
			args = append(args, "port", s.Port)
		}
		if s.Protocol == ProtocolTCP || s.Protocol == ProtocolUDP {
			args = append(args, "proto", string(s.Protocol))
		}
	} else {
		spec := s.Port
		if s.Protocol == ProtocolTCP || s.Protocol == ProtocolUDP {
			spec += "/" + string(s.Protocol)
		}
		args = append(args, spec)
	}

	if s.Comment != "" {
		args = append(args, "comment", s.Comment)
	}
	return args
}

// String renders the spec as the ufw command it would issue.
func (s RuleSpec) String() string {
	return "ufw " + strings.Join(s.Args(), " ")
}

func (s RuleSpec) normalizedSource() string {
	if strings.EqualFold(s.Source, "any") || strings.EqualFold(s.Source, "anywhere") {
		return ""
	}
	return s.Source
}

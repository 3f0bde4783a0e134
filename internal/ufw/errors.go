package ufw

import (
	"fmt"
	"strings"
)

// ValidationError reports a malformed rule specification, detected before
// any privileged call is attempted.
type ValidationError struct {
	Field  string
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// NotFoundError reports a rule ordinal outside the bounds of the last
// refreshed snapshot.
type NotFoundError struct {
	Ordinal int
	Count   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no rule with ordinal %d (ruleset has %d rules)", e.Ordinal, e.Count)
}

// ToolError reports that ufw ran but failed. Its stderr and exit code are
// surfaced verbatim; the tool's own message is the most reliable diagnostic.
type ToolError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Stdout   string
}

func (e *ToolError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(e.Stdout)
	}
	if msg == "" {
		msg = "no output"
	}
	return fmt.Sprintf("ufw %s failed (exit %d): %s", strings.Join(e.Args, " "), e.ExitCode, msg)
}

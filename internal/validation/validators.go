// Package validation provides client-side checks for rule specifications
// before any privileged command is attempted.
package validation

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
)

var (
	// Valid service name as accepted by ufw (from /etc/services)
	serviceNameRegex = regexp.MustCompile(`^[a-z][a-z0-9+._-]{0,30}$`)

	// Dangerous characters that should never reach a shell-adjacent argv
	dangerousChars = []string{";", "|", "&", "$", "`", "(", ")", "<", ">", "\\", "\"", "'", "\n", "\r"}
)

// ValidateAction validates a rule action.
func ValidateAction(action string) error {
	switch strings.ToLower(action) {
	case "allow", "deny", "reject", "limit":
		return nil
	}
	return fmt.Errorf("invalid action: %s (must be one of: allow, deny, reject, limit)", action)
}

// ValidateDirection validates a rule direction.
func ValidateDirection(dir string) error {
	switch strings.ToLower(dir) {
	case "in", "out":
		return nil
	}
	return fmt.Errorf("invalid direction: %s (must be in or out)", dir)
}

// ValidateProtocol validates a protocol name. Empty means "any".
func ValidateProtocol(proto string) error {
	switch strings.ToLower(proto) {
	case "", "any", "tcp", "udp":
		return nil
	}
	return fmt.Errorf("invalid protocol: %s (must be tcp, udp or any)", proto)
}

// ValidatePortNumber validates a port number.
func ValidatePortNumber(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port number: %d (must be 1-65535)", port)
	}
	return nil
}

// ValidatePortSpec validates a port specification as ufw accepts it:
// a single port, a comma-separated list (80,443), a range (6000:6063),
// or a service name (ssh). Empty means no port restriction.
func ValidatePortSpec(spec string) error {
	if spec == "" {
		return nil
	}

	for _, char := range dangerousChars {
		if strings.Contains(spec, char) {
			return fmt.Errorf("port specification contains dangerous character: %s", char)
		}
	}

	// Range: start:end
	if strings.Contains(spec, ":") {
		parts := strings.Split(spec, ":")
		if len(parts) != 2 {
			return fmt.Errorf("invalid port range: %s", spec)
		}
		start, err1 := strconv.Atoi(parts[0])
		end, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return fmt.Errorf("invalid port range: %s", spec)
		}
		if err := ValidatePortNumber(start); err != nil {
			return err
		}
		if err := ValidatePortNumber(end); err != nil {
			return err
		}
		if start >= end {
			return fmt.Errorf("invalid port range: %s (start must be below end)", spec)
		}
		return nil
	}

	// Comma-separated list of ports
	if strings.Contains(spec, ",") {
		for _, p := range strings.Split(spec, ",") {
			p = strings.TrimSpace(p)
			n, err := strconv.Atoi(p)
			if err != nil {
				return fmt.Errorf("invalid port list entry: %s", p)
			}
			if err := ValidatePortNumber(n); err != nil {
				return err
			}
		}
		return nil
	}

	// Single port
	if n, err := strconv.Atoi(spec); err == nil {
		return ValidatePortNumber(n)
	}

	// Service name (resolved by ufw from /etc/services)
	if !serviceNameRegex.MatchString(strings.ToLower(spec)) {
		return fmt.Errorf("invalid port or service name: %s", spec)
	}
	return nil
}

// ValidateSource validates a rule source: empty, "any", "Anywhere",
// an IP address, or a CIDR range.
func ValidateSource(s string) error {
	if s == "" || strings.EqualFold(s, "any") || strings.EqualFold(s, "anywhere") {
		return nil
	}

	if strings.Contains(s, "/") {
		_, _, err := net.ParseCIDR(s)
		if err != nil {
			return fmt.Errorf("invalid CIDR: %w", err)
		}
		return nil
	}

	if net.ParseIP(s) == nil {
		return fmt.Errorf("invalid IP address: %s", s)
	}
	return nil
}

// ValidateComment validates a free-text rule comment.
func ValidateComment(s string) error {
	if len(s) > 255 {
		return fmt.Errorf("comment too long (max 255 characters)")
	}
	for _, char := range dangerousChars {
		if strings.Contains(s, char) {
			return fmt.Errorf("comment contains dangerous character: %s", char)
		}
	}
	return nil
}

// SanitizeString removes dangerous characters from a string (for display purposes)
func SanitizeString(s string) string {
	for _, char := range dangerousChars {
		s = strings.ReplaceAll(s, char, "")
	}
	return s
}

package validation

import (
	"testing"
)

func TestValidateAction(t *testing.T) {
	for _, ok := range []string{"allow", "deny", "reject", "limit", "ALLOW"} {
		if err := ValidateAction(ok); err != nil {
			t.Errorf("ValidateAction(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "drop", "accept", "allow; rm -rf /"} {
		if err := ValidateAction(bad); err == nil {
			t.Errorf("ValidateAction(%q) should fail", bad)
		}
	}
}

func TestValidateDirection(t *testing.T) {
	for _, ok := range []string{"in", "out", "IN"} {
		if err := ValidateDirection(ok); err != nil {
			t.Errorf("ValidateDirection(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "forward", "both"} {
		if err := ValidateDirection(bad); err == nil {
			t.Errorf("ValidateDirection(%q) should fail", bad)
		}
	}
}

func TestValidateProtocol(t *testing.T) {
	for _, ok := range []string{"", "any", "tcp", "udp", "TCP"} {
		if err := ValidateProtocol(ok); err != nil {
			t.Errorf("ValidateProtocol(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"icmp", "sctp", "tcp|udp"} {
		if err := ValidateProtocol(bad); err == nil {
			t.Errorf("ValidateProtocol(%q) should fail", bad)
		}
	}
}

func TestValidatePortSpec(t *testing.T) {
	valid := []string{"", "22", "65535", "80,443", "6000:6063", "ssh", "http"}
	for _, spec := range valid {
		if err := ValidatePortSpec(spec); err != nil {
			t.Errorf("ValidatePortSpec(%q) = %v, want nil", spec, err)
		}
	}

	invalid := []string{
		"0", "70000", "-1",
		"80,443,99999",
		"6063:6000", "22:22", "1:2:3",
		"22; reboot", "$(id)",
	}
	for _, spec := range invalid {
		if err := ValidatePortSpec(spec); err == nil {
			t.Errorf("ValidatePortSpec(%q) should fail", spec)
		}
	}
}

func TestValidateSource(t *testing.T) {
	valid := []string{"", "any", "Anywhere", "192.168.1.1", "10.0.0.0/8", "2001:db8::/32", "fe80::1"}
	for _, s := range valid {
		if err := ValidateSource(s); err != nil {
			t.Errorf("ValidateSource(%q) = %v, want nil", s, err)
		}
	}

	invalid := []string{"300.1.1.1", "10.0.0.0/99", "example.com", "10.0.0.1/"}
	for _, s := range invalid {
		if err := ValidateSource(s); err == nil {
			t.Errorf("ValidateSource(%q) should fail", s)
		}
	}
}

func TestValidateComment(t *testing.T) {
	if err := ValidateComment("office VPN access"); err != nil {
		t.Errorf("plain comment should pass: %v", err)
	}
	if err := ValidateComment("hello; rm -rf /"); err == nil {
		t.Error("comment with shell metacharacter should fail")
	}
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	if err := ValidateComment(string(long)); err == nil {
		t.Error("overlong comment should fail")
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString(`a;b|c"d`); got != "abcd" {
		t.Errorf("SanitizeString = %q", got)
	}
}

// Package profiles provides quick rule profiles: a fixed built-in set for
// common services plus optional user-defined profiles from a YAML file.
package profiles

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"

	"grimm.is/palisade/internal/ufw"
)

// BuiltIn returns the built-in quick profiles. The rule sequences are fixed
// and applied in declared order.
func BuiltIn() []ufw.Profile {
	return []ufw.Profile{
		{
			Name:  "ssh",
			Title: "SSH (22)",
			Specs: []ufw.RuleSpec{
				{Action: ufw.ActionAllow, Port: "22", Protocol: ufw.ProtocolTCP},
			},
		},
		{
			Name:  "http_https",
			Title: "HTTP/S (80, 443)",
			Specs: []ufw.RuleSpec{
				{Action: ufw.ActionAllow, Port: "80", Protocol: ufw.ProtocolTCP},
				{Action: ufw.ActionAllow, Port: "443", Protocol: ufw.ProtocolTCP},
			},
		},
		{
			Name:  "dns",
			Title: "DNS (53)",
			Specs: []ufw.RuleSpec{
				{Action: ufw.ActionAllow, Port: "53"},
			},
		},
		{
			Name:  "reset",
			Title: "Reset All",
			Reset: true,
		},
	}
}

type yamlRule struct {
	Action    string `yaml:"action"`
	Direction string `yaml:"direction"`
	Port      string `yaml:"port"`
	Proto     string `yaml:"proto"`
	From      string `yaml:"from"`
	Comment   string `yaml:"comment"`
}

type yamlProfile struct {
	Name  string     `yaml:"name"`
	Title string     `yaml:"title"`
	Rules []yamlRule `yaml:"rules"`
}

// Load returns the built-in profiles plus any user-defined ones from the
// given YAML file. A missing file is not an error; a malformed one is.
func Load(path string) ([]ufw.Profile, error) {
	result := BuiltIn()
	if path == "" {
		return result, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, fmt.Errorf("read profiles file: %w", err)
	}

	var userProfiles []yamlProfile
	if err := yaml.Unmarshal(data, &userProfiles); err != nil {
		return nil, fmt.Errorf("parse profiles file: %w", err)
	}

	for _, up := range userProfiles {
		if up.Name == "" {
			return nil, fmt.Errorf("profiles file: profile without a name")
		}
		p := ufw.Profile{Name: up.Name, Title: up.Title}
		if p.Title == "" {
			p.Title = up.Name
		}
		for _, r := range up.Rules {
			spec := ufw.RuleSpec{
				Action:    ufw.Action(r.Action),
				Direction: ufw.Direction(r.Direction),
				Port:      r.Port,
				Protocol:  ufw.ParseProtocol(r.Proto),
				Source:    r.From,
				Comment:   r.Comment,
			}
			if err := spec.Validate(); err != nil {
				return nil, fmt.Errorf("profile %s: %w", up.Name, err)
			}
			p.Specs = append(p.Specs, spec)
		}
		result = append(result, p)
	}

	return result, nil
}

// Find returns the profile with the given name.
func Find(list []ufw.Profile, name string) (ufw.Profile, bool) {
	for _, p := range list {
		if p.Name == name {
			return p, true
		}
	}
	return ufw.Profile{}, false
}

package cmd

import (
	"os"
	"strings"

	"grimm.is/palisade/internal/profiles"
)

// RunProfileList prints the available quick profiles.
func RunProfileList(configFile string) {
	app := buildApp(configFile)
	defer app.Close()

	Printer.Println("Available profiles:")
	for _, p := range app.Profiles {
		if p.Reset {
			Printer.Printf("  %-12s %s (removes all rules)\n", p.Name, p.Title)
			continue
		}
		cmds := make([]string, len(p.Specs))
		for i, spec := range p.Specs {
			cmds[i] = spec.String()
		}
		Printer.Printf("  %-12s %s: %s\n", p.Name, p.Title, strings.Join(cmds, "; "))
	}
}

// RunProfileApply applies the named profile.
func RunProfileApply(configFile, name string, confirmed bool) {
	app := buildApp(configFile)
	defer app.Close()

	p, ok := profiles.Find(app.Profiles, name)
	if !ok {
		Printer.Fprintf(os.Stderr, "Unknown profile %q. Run 'profile list' to see them.\n", name)
		os.Exit(1)
	}

	if p.Reset && !confirmed {
		Printer.Fprintf(os.Stderr, "Profile %q removes every rule and disables the firewall.\n", name)
		Printer.Fprintf(os.Stderr, "Re-run with --confirm if that is what you want.\n")
		os.Exit(1)
	}

	before, err := app.Repo.Refresh()
	if err != nil {
		exitError(err)
	}

	if err := app.Repo.ApplyProfile(p); err != nil {
		exitError(err)
	}

	after, _ := app.Repo.Snapshot()
	Printer.Printf("Profile %q applied\n", name)
	printChanges(before.Rules, after.Rules)
}

package cmd

import (
	"grimm.is/palisade/internal/ufw"
)

// RunAddRule adds a rule and prints what changed in the listing.
func RunAddRule(configFile string, spec ufw.RuleSpec) {
	// reject malformed input before the baseline read, which may prompt
	// for credentials
	if err := spec.Validate(); err != nil {
		exitError(err)
	}

	app := buildApp(configFile)
	defer app.Close()

	before, err := app.Repo.Refresh()
	if err != nil {
		exitError(err)
	}

	if err := app.Repo.AddRule(spec); err != nil {
		exitError(err)
	}

	after, _ := app.Repo.Snapshot()
	Printer.Printf("Rule added: %s\n", spec.String())
	printChanges(before.Rules, after.Rules)
}

// RunDeleteRule deletes the rule at the given ordinal from the listing.
func RunDeleteRule(configFile string, ordinal int) {
	app := buildApp(configFile)
	defer app.Close()

	before, err := app.Repo.Refresh()
	if err != nil {
		exitError(err)
	}

	if err := app.Repo.DeleteRule(ordinal); err != nil {
		exitError(err)
	}

	after, _ := app.Repo.Snapshot()
	Printer.Printf("Rule %d deleted\n", ordinal)
	printChanges(before.Rules, after.Rules)
}

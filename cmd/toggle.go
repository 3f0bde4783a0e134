package cmd

import (
	"os"
)

// RunEnable turns the firewall on.
func RunEnable(configFile string) {
	app := buildApp(configFile)
	defer app.Close()

	if err := app.Repo.SetEnabled(true); err != nil {
		exitError(err)
	}
	Printer.Println("Firewall enabled")
}

// RunDisable turns the firewall off.
func RunDisable(configFile string) {
	app := buildApp(configFile)
	defer app.Close()

	if err := app.Repo.SetEnabled(false); err != nil {
		exitError(err)
	}
	Printer.Println("Firewall disabled")
}

// RunReset wipes all rules and disables the firewall. Destructive, so it
// refuses to run without the confirm flag.
func RunReset(configFile string, confirmed bool) {
	if !confirmed {
		Printer.Fprintf(os.Stderr, "Reset removes every rule and disables the firewall.\n")
		Printer.Fprintf(os.Stderr, "Re-run with --confirm if that is what you want.\n")
		os.Exit(1)
	}

	app := buildApp(configFile)
	defer app.Close()

	if err := app.Repo.Reset(); err != nil {
		exitError(err)
	}
	Printer.Println("Firewall reset to defaults")
}

package cmd

import (
	"os"
)

// RunHistory prints the most recent recorded firewall commands.
func RunHistory(configFile string, limit int) {
	app := buildApp(configFile)
	defer app.Close()

	if app.Store == nil {
		Printer.Fprintf(os.Stderr, "History is disabled in the configuration.\n")
		os.Exit(1)
	}

	if _, err := app.Store.Prune(); err != nil {
		app.Log.Warn("history prune failed", "error", err)
	}

	records, err := app.Store.List(limit)
	if err != nil {
		Printer.Fprintf(os.Stderr, "Failed to read history: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		Printer.Println("No recorded commands yet.")
		return
	}

	for _, rec := range records {
		status := "ok"
		if rec.ExitCode != 0 {
			status = Printer.Sprintf("exit %d", rec.ExitCode)
		}
		Printer.Printf("%s  %-8s  %-14s ufw %s (%s)\n",
			rec.Timestamp.Format("2006-01-02 15:04:05"), rec.User, rec.Op, rec.Args, status)
	}
}

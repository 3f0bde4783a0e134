package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"grimm.is/palisade/internal/logging"
	"grimm.is/palisade/internal/tui"
)

// RunConsole starts the TUI console
func RunConsole(configFile string, debug bool) {
	if debug {
		if err := logging.DebugToFile("tui.log"); err != nil {
			Printer.Fprintf(os.Stderr, "Failed to enable debug logging: %v\n", err)
		} else {
			defer logging.CloseDebugFile()
			logging.Debugf("Starting console")
		}
	}

	app := buildApp(configFile)
	defer app.Close()

	backend := tui.NewLocalBackend(app.Repo, app.Profiles, app.Store)

	p := tea.NewProgram(tui.NewModel(backend), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		Printer.Fprintf(os.Stderr, "Error running console: %v\n", err)
		os.Exit(1)
	}
}

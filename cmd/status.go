package cmd

// RunStatus reads current firewall state and prints it. With numbered the
// listing carries the ordinals `delete` takes.
func RunStatus(configFile string, numbered bool) {
	app := buildApp(configFile)
	defer app.Close()

	snap, err := app.Repo.Refresh()
	if err != nil {
		exitError(err)
	}
	printSnapshot(snap, numbered)
}

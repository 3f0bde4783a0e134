package cmd

import (
	"errors"
	"os"

	"grimm.is/palisade/internal/config"
	"grimm.is/palisade/internal/history"
	"grimm.is/palisade/internal/i18n"
	"grimm.is/palisade/internal/logging"
	"grimm.is/palisade/internal/privexec"
	"grimm.is/palisade/internal/profiles"
	"grimm.is/palisade/internal/ufw"
)

var Printer = i18n.NewCLIPrinter()

// app bundles everything a command needs. Commands build one, use it, close it.
type app struct {
	Cfg      *config.Config
	Log      *logging.Logger
	Repo     *ufw.Repository
	Store    *history.Store
	Profiles []ufw.Profile
}

// buildApp wires config, logging, the executor and the repository. Failures
// here are fatal: no command can do anything useful without them. A broken
// history store is the exception, commands still work without history.
func buildApp(configFile string) *app {
	cfg, err := config.Load(configFile)
	if err != nil {
		Printer.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(logging.Config{Level: parseLevel(cfg.LogLevel)})
	logging.SetDefault(log)

	exec := privexec.NewPolkitExecutor(cfg.Tool, cfg.Helper, log)
	repo := ufw.NewRepository(exec, log)

	var store *history.Store
	if cfg.History != nil && cfg.History.Enabled {
		store, err = history.NewStore(cfg.History.Path, cfg.History.RetentionDays)
		if err != nil {
			log.Warn("history disabled", "error", err)
			store = nil
		} else {
			repo.WithRecorder(store)
		}
	}

	profs, err := profiles.Load(cfg.ProfilesFile)
	if err != nil {
		Printer.Fprintf(os.Stderr, "Profiles error: %v\n", err)
		os.Exit(1)
	}

	return &app{
		Cfg:      cfg,
		Log:      log,
		Repo:     repo,
		Store:    store,
		Profiles: profs,
	}
}

func (a *app) Close() {
	if a.Store != nil {
		a.Store.Close()
	}
}

func parseLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	}
	return logging.LevelInfo
}

// exitError prints a message appropriate to the failure and exits. The error
// taxonomy keeps the translations here instead of scattered per command.
func exitError(err error) {
	var denied *privexec.AuthDeniedError
	var launch *privexec.LaunchError
	var tool *ufw.ToolError
	var invalid *ufw.ValidationError
	var notFound *ufw.NotFoundError

	switch {
	case errors.As(err, &denied):
		Printer.Fprintf(os.Stderr, "Authorization denied. Firewall changes need administrative rights.\n")
	case errors.As(err, &launch):
		Printer.Fprintf(os.Stderr, "Could not run %s: %v\n", launch.Command, launch.Err)
		Printer.Fprintf(os.Stderr, "Check that ufw and pkexec (or your configured helper) are installed.\n")
	case errors.As(err, &tool):
		Printer.Fprintf(os.Stderr, "ufw failed (exit %d):\n%s\n", tool.ExitCode, tool.Stderr)
	case errors.As(err, &invalid):
		Printer.Fprintf(os.Stderr, "Invalid %s: %s\n", invalid.Field, invalid.Reason)
	case errors.As(err, &notFound):
		Printer.Fprintf(os.Stderr, "No rule %d (the listing has %d rules). Run status to resync.\n",
			notFound.Ordinal, notFound.Count)
	default:
		Printer.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

// printSnapshot renders firewall state the way ufw itself does, so its
// output stays familiar next to the real tool's.
func printSnapshot(snap ufw.Snapshot, numbered bool) {
	state := "inactive"
	if snap.Status.Enabled {
		state = "active"
	}
	Printer.Printf("Status: %s\n", state)
	Printer.Printf("Default: %s (incoming), %s (outgoing)\n",
		snap.Status.DefaultIncoming, snap.Status.DefaultOutgoing)
	Printer.Printf("Logging: %s\n", snap.Status.Logging)

	if len(snap.Rules) == 0 {
		return
	}
	Printer.Println()
	for _, line := range listingLines(snap.Rules, numbered) {
		Printer.Println(line)
	}
}

// listingLines renders the rule listing, with the tool's bracketed ordinals
// when numbered is set.
func listingLines(rules ufw.RuleSet, numbered bool) []string {
	lines := make([]string, 0, len(rules))
	for _, r := range rules {
		if numbered && r.Ordinal > 0 {
			lines = append(lines, ufw.FormatRuleNumbered(r))
		} else {
			lines = append(lines, ufw.FormatRule(r))
		}
	}
	return lines
}

// printChanges shows what a mutation did to the listing.
func printChanges(before, after ufw.RuleSet) {
	diff, err := ufw.DiffRules(before, after)
	if err != nil || diff == "" {
		return
	}
	Printer.Println()
	Printer.Print(diff)
}

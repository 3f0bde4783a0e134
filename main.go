package main

import (
	"flag"
	"os"
	"strconv"

	"grimm.is/palisade/cmd"
	"grimm.is/palisade/internal/brand"
	"grimm.is/palisade/internal/i18n"
	"grimm.is/palisade/internal/ufw"
)

var printer = i18n.NewCLIPrinter()

func main() {
	if len(os.Args) < 2 {
		cmd.RunConsole(brand.ConfigFilePath(), false)
		return
	}

	switch os.Args[1] {
	case "status":
		statusFlags := flag.NewFlagSet("status", flag.ExitOnError)
		configFile := configFlag(statusFlags)
		numbered := statusFlags.Bool("numbered", false, "Show the ordinals delete takes")
		statusFlags.BoolVar(numbered, "n", false, "Show ordinals (short)")
		statusFlags.Parse(os.Args[2:])

		cmd.RunStatus(*configFile, *numbered)

	case "enable":
		enableFlags := flag.NewFlagSet("enable", flag.ExitOnError)
		configFile := configFlag(enableFlags)
		enableFlags.Parse(os.Args[2:])

		cmd.RunEnable(*configFile)

	case "disable":
		disableFlags := flag.NewFlagSet("disable", flag.ExitOnError)
		configFile := configFlag(disableFlags)
		disableFlags.Parse(os.Args[2:])

		cmd.RunDisable(*configFile)

	case "reset":
		resetFlags := flag.NewFlagSet("reset", flag.ExitOnError)
		configFile := configFlag(resetFlags)
		confirm := resetFlags.Bool("confirm", false, "Confirm the reset")
		resetFlags.BoolVar(confirm, "y", false, "Confirm the reset (short)")
		resetFlags.Parse(os.Args[2:])

		cmd.RunReset(*configFile, *confirm)

	case "allow", "deny", "reject", "limit":
		ruleFlags := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
		configFile := configFlag(ruleFlags)

		direction := ruleFlags.String("direction", "in", "Traffic direction: in or out")
		ruleFlags.StringVar(direction, "d", "in", "Traffic direction (short)")

		proto := ruleFlags.String("proto", "", "Protocol: tcp, udp or any")
		ruleFlags.StringVar(proto, "p", "", "Protocol (short)")

		source := ruleFlags.String("from", "", "Source IP or CIDR (default: anywhere)")
		comment := ruleFlags.String("comment", "", "Rule comment")
		ruleFlags.Parse(os.Args[2:])

		port := ""
		if len(ruleFlags.Args()) > 0 {
			port = ruleFlags.Arg(0)
		}

		spec := ufw.RuleSpec{
			Action:    ufw.ParseAction(os.Args[1]),
			Direction: ufw.Direction(*direction),
			Port:      port,
			Protocol:  ufw.ParseProtocol(*proto),
			Source:    *source,
			Comment:   *comment,
		}
		cmd.RunAddRule(*configFile, spec)

	case "delete":
		deleteFlags := flag.NewFlagSet("delete", flag.ExitOnError)
		configFile := configFlag(deleteFlags)
		deleteFlags.Parse(os.Args[2:])

		if len(deleteFlags.Args()) != 1 {
			printer.Fprintf(os.Stderr, "Usage: %s delete <rule number>\n", brand.LowerName)
			os.Exit(1)
		}
		ordinal, err := strconv.Atoi(deleteFlags.Arg(0))
		if err != nil {
			printer.Fprintf(os.Stderr, "Rule number must be an integer, got %q\n", deleteFlags.Arg(0))
			os.Exit(1)
		}
		cmd.RunDeleteRule(*configFile, ordinal)

	case "profile":
		profileFlags := flag.NewFlagSet("profile", flag.ExitOnError)
		configFile := configFlag(profileFlags)
		confirm := profileFlags.Bool("confirm", false, "Confirm destructive profiles")
		profileFlags.BoolVar(confirm, "y", false, "Confirm destructive profiles (short)")
		profileFlags.Parse(os.Args[2:])

		args := profileFlags.Args()
		switch {
		case len(args) == 1 && args[0] == "list":
			cmd.RunProfileList(*configFile)
		case len(args) == 2 && args[0] == "apply":
			cmd.RunProfileApply(*configFile, args[1], *confirm)
		default:
			printer.Fprintf(os.Stderr, "Usage: %s profile list | %s profile apply <name>\n",
				brand.LowerName, brand.LowerName)
			os.Exit(1)
		}

	case "history":
		historyFlags := flag.NewFlagSet("history", flag.ExitOnError)
		configFile := configFlag(historyFlags)
		limit := historyFlags.Int("n", 50, "Number of entries to show")
		historyFlags.Parse(os.Args[2:])

		cmd.RunHistory(*configFile, *limit)

	case "console":
		consoleFlags := flag.NewFlagSet("console", flag.ExitOnError)
		configFile := configFlag(consoleFlags)
		debug := consoleFlags.Bool("debug", false, "Write TUI diagnostics to tui.log")
		consoleFlags.Parse(os.Args[2:])

		cmd.RunConsole(*configFile, *debug)

	case "version":
		printer.Printf("%s %s (built %s, commit %s)\n",
			brand.Name, brand.Version, brand.BuildTime, brand.GitCommit)

	case "help", "-h", "--help":
		printUsage()

	default:
		printer.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func configFlag(fs *flag.FlagSet) *string {
	configFile := fs.String("config", brand.ConfigFilePath(), "Configuration file")
	fs.StringVar(configFile, "c", brand.ConfigFilePath(), "Configuration file (short)")
	return configFile
}

func printUsage() {
	printer.Printf(`%s - %s

Usage:
  %s [command] [options]

Running without a command opens the interactive console.

Commands:
  status    Show firewall state and the rule listing
            Options: --numbered (-n) to show the ordinals delete takes
  enable    Turn the firewall on
  disable   Turn the firewall off
  reset     Remove all rules and disable the firewall (--confirm/-y required)
  allow     Add an allow rule for a port or source
  deny      Add a deny rule
  reject    Add a reject rule
  limit     Add a rate-limited allow rule
            Rule options: --direction (-d) in|out, --proto (-p) tcp|udp,
                          --from <ip|cidr>, --comment <text>
  delete    Delete a rule by its number in the listing
  profile   Apply rule presets
            Subcommands: list, apply <name> (--confirm for destructive ones)
  history   Show recorded firewall commands
            Options: -n <count>
  console   Interactive dashboard
            Options: --debug
  version   Print version information

Examples:
  %s status
  %s allow 22 -p tcp --comment "ssh"
  %s deny --from 10.0.0.0/8
  %s delete 3
  %s profile apply ssh
  %s history -n 20

All commands accept --config (-c) <file>.
`,
		brand.Name, brand.Description,
		brand.LowerName,
		brand.LowerName, brand.LowerName, brand.LowerName, brand.LowerName,
		brand.LowerName, brand.LowerName)
}

package privexec

import (
	"strings"

	"grimm.is/palisade/internal/logging"
)

// Result holds the outcome of a tool invocation. A non-zero exit code is an
// ordinary result; the tool's own output is the authoritative diagnostic.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// OK reports whether the tool exited successfully.
func (r Result) OK() bool {
	return r.ExitCode == 0
}

// Combined returns trimmed stdout and stderr joined for display.
func (r Result) Combined() string {
	out := strings.TrimSpace(r.Stdout)
	errOut := strings.TrimSpace(r.Stderr)
	switch {
	case out == "":
		return errOut
	case errOut == "":
		return out
	default:
		return out + "\n" + errOut
	}
}

// Executor runs the firewall tool. Privileged goes through the escalation
// helper; Read prefers the least-privileged path that yields output.
type Executor interface {
	Privileged(args ...string) (Result, error)
	Read(args ...string) (Result, error)
}

// pkexec exit codes for the two refusal cases. 126: the user dismissed the
// authentication dialog; 127: the user failed authorization or polkit said no.
const (
	pkexecDismissed     = 126
	pkexecNotAuthorized = 127
)

// PolkitExecutor invokes the tool via an escalation helper (pkexec by
// default). When the process already runs as root the helper is skipped.
type PolkitExecutor struct {
	Tool   string
	Helper string

	runner CommandRunner
	log    *logging.Logger
}

// NewPolkitExecutor creates an executor for the given tool and helper.
func NewPolkitExecutor(tool, helper string, log *logging.Logger) *PolkitExecutor {
	if tool == "" {
		tool = "ufw"
	}
	if helper == "" {
		helper = "pkexec"
	}
	if log == nil {
		log = logging.Default()
	}
	return &PolkitExecutor{
		Tool:   tool,
		Helper: helper,
		runner: &RealCommandRunner{},
		log:    log.WithComponent("exec"),
	}
}

// WithRunner substitutes the subprocess runner (tests).
func (e *PolkitExecutor) WithRunner(r CommandRunner) *PolkitExecutor {
	e.runner = r
	return e
}

// Privileged runs the tool with elevated rights, prompting through the
// helper when needed. Authorization refusal and launch failure are returned
// as typed errors; everything else lands in the Result.
func (e *PolkitExecutor) Privileged(args ...string) (Result, error) {
	name := e.Helper
	argv := append([]string{e.Tool}, args...)
	usingHelper := true
	if euid() == 0 {
		name = e.Tool
		argv = args
		usingHelper = false
	}

	stdout, stderr, code, err := e.runner.Run(name, argv...)
	if err != nil {
		return Result{}, &LaunchError{Command: name, Err: err}
	}

	if usingHelper && (code == pkexecDismissed || code == pkexecNotAuthorized) {
		e.log.Warn("authorization denied", "helper", e.Helper, "exit", code)
		return Result{}, &AuthDeniedError{Helper: e.Helper, ExitCode: code}
	}

	res := Result{ExitCode: code, Stdout: stdout, Stderr: stderr}
	e.log.Debug("privileged command finished",
		"argv", strings.Join(append([]string{e.Tool}, args...), " "),
		"exit", code)
	return res, nil
}

// Read runs a read-only query, preferring paths that do not raise an
// interactive prompt: the tool directly, then sudo -n, then the helper.
func (e *PolkitExecutor) Read(args ...string) (Result, error) {
	if euid() == 0 {
		stdout, stderr, code, err := e.runner.Run(e.Tool, args...)
		if err != nil {
			return Result{}, &LaunchError{Command: e.Tool, Err: err}
		}
		return Result{ExitCode: code, Stdout: stdout, Stderr: stderr}, nil
	}

	// Non-interactive sudo succeeds when a grant is cached or NOPASSWD is
	// configured. Anything else falls through to the interactive helper.
	sudoArgs := append([]string{"-n", e.Tool}, args...)
	stdout, stderr, code, err := e.runner.Run("sudo", sudoArgs...)
	if err == nil && code == 0 && strings.TrimSpace(stdout) != "" {
		return Result{ExitCode: 0, Stdout: stdout, Stderr: stderr}, nil
	}

	return e.Privileged(args...)
}

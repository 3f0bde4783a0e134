// Package privexec runs the firewall tool through a privilege-escalation
// helper and reports exit codes and captured output to the caller.
package privexec

import (
	"bytes"
	"errors"
	"os/exec"
)

// CommandRunner abstracts subprocess execution so executors can be tested
// without spawning real processes.
type CommandRunner interface {
	// Run executes the command and returns captured stdout, stderr and the
	// exit code. err is non-nil only when the process could not be launched
	// at all (missing binary, permission on the executable itself).
	Run(name string, args ...string) (stdout, stderr string, exitCode int, err error)
}

// RealCommandRunner executes commands on the host.
type RealCommandRunner struct{}

// Run executes a command, capturing stdout and stderr separately.
func (r *RealCommandRunner) Run(name string, args ...string) (string, string, int, error) {
	cmd := exec.Command(name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The tool ran and failed; that is a result, not an error.
			return outBuf.String(), errBuf.String(), exitErr.ExitCode(), nil
		}
		return outBuf.String(), errBuf.String(), -1, err
	}
	return outBuf.String(), errBuf.String(), 0, nil
}

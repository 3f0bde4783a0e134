package privexec

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asUser(t *testing.T) {
	t.Helper()
	old := euid
	euid = func() int { return 1000 }
	t.Cleanup(func() { euid = old })
}

func asRoot(t *testing.T) {
	t.Helper()
	old := euid
	euid = func() int { return 0 }
	t.Cleanup(func() { euid = old })
}

func TestPrivilegedViaHelper(t *testing.T) {
	asUser(t)
	runner := new(MockCommandRunner)
	runner.On("Run", "pkexec", "ufw", "--force", "enable").
		Return("Firewall is active and enabled on system startup", "", 0, nil)

	e := NewPolkitExecutor("ufw", "pkexec", nil).WithRunner(runner)
	res, err := e.Privileged("--force", "enable")
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Contains(t, res.Stdout, "active")
	runner.AssertExpectations(t)
}

func TestPrivilegedSkipsHelperAsRoot(t *testing.T) {
	asRoot(t)
	runner := new(MockCommandRunner)
	runner.On("Run", "ufw", "disable").Return("Firewall stopped", "", 0, nil)

	e := NewPolkitExecutor("ufw", "pkexec", nil).WithRunner(runner)
	res, err := e.Privileged("disable")
	require.NoError(t, err)
	assert.True(t, res.OK())
	runner.AssertExpectations(t)
}

func TestPrivilegedToolFailureIsResult(t *testing.T) {
	asUser(t)
	runner := new(MockCommandRunner)
	runner.On("Run", "pkexec", "ufw", "delete", "99").
		Return("", "ERROR: Could not delete non-existent rule", 1, nil)

	e := NewPolkitExecutor("ufw", "pkexec", nil).WithRunner(runner)
	res, err := e.Privileged("delete", "99")
	require.NoError(t, err, "tool failure must be a Result, not an error")
	assert.Equal(t, 1, res.ExitCode)
	assert.Contains(t, res.Stderr, "non-existent")
}

func TestPrivilegedAuthDenied(t *testing.T) {
	asUser(t)
	for _, code := range []int{126, 127} {
		runner := new(MockCommandRunner)
		runner.On("Run", "pkexec", "ufw", "disable").Return("", "", code, nil)

		e := NewPolkitExecutor("ufw", "pkexec", nil).WithRunner(runner)
		_, err := e.Privileged("disable")
		var denied *AuthDeniedError
		require.ErrorAs(t, err, &denied, "exit %d should map to AuthDeniedError", code)
		assert.Equal(t, code, denied.ExitCode)
	}
}

func TestPrivilegedLaunchError(t *testing.T) {
	asUser(t)
	runner := new(MockCommandRunner)
	runner.On("Run", "pkexec", "ufw", "status").Return("", "", -1, exec.ErrNotFound)

	e := NewPolkitExecutor("ufw", "pkexec", nil).WithRunner(runner)
	_, err := e.Privileged("status")
	var launch *LaunchError
	require.ErrorAs(t, err, &launch)
	assert.True(t, errors.Is(err, exec.ErrNotFound))
}

func TestReadPrefersNonInteractiveSudo(t *testing.T) {
	asUser(t)
	runner := new(MockCommandRunner)
	runner.On("Run", "sudo", "-n", "ufw", "status", "verbose").
		Return("Status: active\n", "", 0, nil)

	e := NewPolkitExecutor("ufw", "pkexec", nil).WithRunner(runner)
	res, err := e.Read("status", "verbose")
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "Status: active")
	runner.AssertNotCalled(t, "Run", "pkexec", "ufw", "status", "verbose")
}

func TestReadFallsBackToHelper(t *testing.T) {
	asUser(t)
	runner := new(MockCommandRunner)
	runner.On("Run", "sudo", "-n", "ufw", "status", "verbose").
		Return("", "sudo: a password is required", 1, nil)
	runner.On("Run", "pkexec", "ufw", "status", "verbose").
		Return("Status: inactive\n", "", 0, nil)

	e := NewPolkitExecutor("ufw", "pkexec", nil).WithRunner(runner)
	res, err := e.Read("status", "verbose")
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "inactive")
	runner.AssertExpectations(t)
}

func TestReadDirectAsRoot(t *testing.T) {
	asRoot(t)
	runner := new(MockCommandRunner)
	runner.On("Run", "ufw", "status", "numbered").Return("Status: active\n", "", 0, nil)

	e := NewPolkitExecutor("ufw", "pkexec", nil).WithRunner(runner)
	res, err := e.Read("status", "numbered")
	require.NoError(t, err)
	assert.True(t, res.OK())
	runner.AssertExpectations(t)
}

func TestResultCombined(t *testing.T) {
	assert.Equal(t, "out", Result{Stdout: "out\n"}.Combined())
	assert.Equal(t, "err", Result{Stderr: "err\n"}.Combined())
	assert.Equal(t, "out\nerr", Result{Stdout: "out\n", Stderr: "err"}.Combined())
}

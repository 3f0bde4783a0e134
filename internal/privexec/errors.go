package privexec

import "fmt"

// LaunchError indicates the helper or tool binary could not be started at
// all. This is fatal for the operation and is never retried automatically.
type LaunchError struct {
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Command, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// AuthDeniedError indicates the user dismissed or failed the privilege
// prompt. The operation may be retried by the user, never by the core.
type AuthDeniedError struct {
	Helper   string
	ExitCode int
}

func (e *AuthDeniedError) Error() string {
	return fmt.Sprintf("authorization denied by %s (exit %d)", e.Helper, e.ExitCode)
}

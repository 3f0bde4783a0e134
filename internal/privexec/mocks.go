package privexec

import (
	"github.com/stretchr/testify/mock"
)

// MockCommandRunner is a mock implementation of CommandRunner for testing.
type MockCommandRunner struct {
	mock.Mock
}

func (m *MockCommandRunner) Run(name string, args ...string) (string, string, int, error) {
	callArgs := make([]interface{}, 0, len(args)+1)
	callArgs = append(callArgs, name)
	for _, a := range args {
		callArgs = append(callArgs, a)
	}
	result := m.Called(callArgs...)
	return result.String(0), result.String(1), result.Int(2), result.Error(3)
}

// MockExecutor is a mock implementation of Executor for testing callers
// that must observe exactly which privileged invocations happen.
type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Privileged(args ...string) (Result, error) {
	callArgs := make([]interface{}, 0, len(args))
	for _, a := range args {
		callArgs = append(callArgs, a)
	}
	result := m.Called(callArgs...)
	return result.Get(0).(Result), result.Error(1)
}

func (m *MockExecutor) Read(args ...string) (Result, error) {
	callArgs := make([]interface{}, 0, len(args))
	for _, a := range args {
		callArgs = append(callArgs, a)
	}
	result := m.Called(callArgs...)
	return result.Get(0).(Result), result.Error(1)
}

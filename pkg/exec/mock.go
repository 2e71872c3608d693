package exec

import (
	"strings"
)

// MockCommandExecutor records the commands that would run without
// spawning anything.
type MockCommandExecutor struct {
	// Commands records every executed command line in order.
	Commands []string

	// LookPathFunc overrides LookPath behavior in tests.
	LookPathFunc func(file string) (string, error)

	// ExecuteFunc overrides Execute behavior in tests.
	ExecuteFunc func(name string, arg ...string) (string, error)
}

// LookPath resolves every file unless LookPathFunc says otherwise.
func (m *MockCommandExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/path/to/" + file, nil
}

// Execute records the command line and defers to ExecuteFunc if set.
func (m *MockCommandExecutor) Execute(name string, arg ...string) (string, error) {
	cmdStr := name
	if len(arg) > 0 {
		cmdStr = name + " " + strings.Join(arg, " ")
	}
	m.Commands = append(m.Commands, cmdStr)

	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, arg...)
	}
	return "", nil
}

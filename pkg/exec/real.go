package exec

import (
	"fmt"
	"os/exec"
)

// ExecError wraps an execution failure with the command's output, so
// callers can surface what the tool printed instead of just an exit
// status.
type ExecError struct {
	Err    error
	Output string
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Output)
}

func (e *ExecError) Unwrap() error { return e.Err }

// RealCommandExecutor runs actual system commands. This is the
// production implementation.
type RealCommandExecutor struct{}

// LookPath searches PATH for an executable named file.
func (e *RealCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Execute runs the command and waits for it to complete. Stdout and
// stderr are captured together; on failure they ride along in the error.
func (e *RealCommandExecutor) Execute(name string, arg ...string) (string, error) {
	cmd := exec.Command(name, arg...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), &ExecError{Err: err, Output: string(output)}
	}
	return string(output), nil
}

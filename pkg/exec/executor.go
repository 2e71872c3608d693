package exec

// CommandExecutor abstracts running external commands, mainly the
// Altium Designer executable and the pre-commit tool. The orchestration
// code takes this interface so tests can record launches instead of
// spawning processes.
type CommandExecutor interface {
	// LookPath searches PATH for an executable named file.
	LookPath(file string) (string, error)

	// Execute runs the command and waits for it to exit, returning its
	// combined output.
	Execute(name string, arg ...string) (string, error)
}

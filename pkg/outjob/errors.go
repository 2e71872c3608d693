package outjob

import "errors"

// The three terminal failures of a run. None of them is retried; the CLI
// maps any of them to a non-zero exit.
var (
	// ErrProjectNotFound means the requested project could not be found
	// among the session's open projects after the open request.
	ErrProjectNotFound = errors.New("failed to open the project")

	// ErrOutJobNotFound means the project has no output job document, or
	// none matching the requested file name.
	ErrOutJobNotFound = errors.New("output job file not found")

	// ErrOpenFailed means the host refused to open the located output
	// job document.
	ErrOpenFailed = errors.New("opening the output job failed")
)

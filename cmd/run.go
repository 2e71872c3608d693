package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pcbmate/pcbmate/pkg/exec"
	"github.com/pcbmate/pcbmate/pkg/script"
)

var (
	runProcedure     string
	runAltiumVersion string
	runTimeout       time.Duration
)

// defaultProcedure handles the files pre-commit passed when no explicit
// procedure is requested. It is defined in the shipped scripting
// project and reads the passed_files constant.
const defaultProcedure = "ProcessPassedFiles"

// NewRunCmd creates the `run` command.
func NewRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [file...]",
		Short: "Run a script procedure in Altium Designer",
		Long: `Run a DelphiScript procedure inside Altium Designer. The given files
are exposed to the procedure as a comma-separated passed_files constant.

Examples:
  # Show a message box in the design tool
  pcbmate run --procedure "ShowInfo('Hello from pcbmate!')"

  # Hand the changed files to the default handler
  pcbmate run Mainboard.PrjPcb Sheet1.SchDoc`,
		RunE: runRun,
	}
	runCmd.Flags().StringVar(&runProcedure, "procedure", "", "Procedure to call in the design tool")
	runCmd.Flags().StringVar(&runAltiumVersion, "altium-version", "", "Use a specific Altium Designer version")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", script.DefaultTimeout, "Timeout for the scripted run")
	return runCmd
}

func runRun(cmd *cobra.Command, args []string) error {
	if runProcedure == "" && len(args) == 0 {
		return fmt.Errorf("provide a procedure name or files to pass to the %s script", defaultProcedure)
	}

	files := make([]string, 0, len(args))
	for _, f := range args {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", f, err)
		}
		files = append(files, abs)
	}
	logrus.WithFields(logrus.Fields{"files": files}).Info("Changed files")

	procedure := runProcedure
	if procedure == "" {
		procedure = defaultProcedure
	}

	altiumExe, err := resolveAltium(runAltiumVersion)
	if err != nil {
		return err
	}
	dir, err := dataDir()
	if err != nil {
		return err
	}

	bridge := &script.Bridge{
		Exec:    &exec.RealCommandExecutor{},
		Dir:     dir,
		Timeout: runTimeout,
	}
	code, err := bridge.Run(altiumExe, procedure, files)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("script returned code %d", code)
	}
	return nil
}

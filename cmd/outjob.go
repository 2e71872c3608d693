package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pcbmate/pcbmate/pkg/exec"
	"github.com/pcbmate/pcbmate/pkg/host"
	"github.com/pcbmate/pcbmate/pkg/outjob"
	"github.com/pcbmate/pcbmate/pkg/prjpcb"
	"github.com/pcbmate/pcbmate/pkg/script"
)

var (
	outJobName          string
	outJobAltiumVersion string
	outJobTimeout       time.Duration
	outJobDryRun        bool
)

// NewOutJobCmd creates the `outjob` command.
func NewOutJobCmd() *cobra.Command {
	outJobCmd := &cobra.Command{
		Use:   "outjob <project.PrjPcb>",
		Short: "Replay a project's output job",
		Long: `Replay a previously authored output job specification: resolve the
project, locate its output job document, and run the generation action of
every container (folder generation, PDF publishing) in the design tool.

Examples:
  # Replay the project's (last) output job
  pcbmate outjob board/Mainboard.PrjPcb

  # Replay a specific output job by file name
  pcbmate outjob board/Mainboard.PrjPcb --name Release.OutJob`,
		Args: cobra.ExactArgs(1),
		RunE: runOutJob,
	}
	outJobCmd.Flags().StringVarP(&outJobName, "name", "n", "", "Output job file name (defaults to the last one in the project)")
	outJobCmd.Flags().StringVar(&outJobAltiumVersion, "altium-version", "", "Use a specific Altium Designer version")
	outJobCmd.Flags().DurationVar(&outJobTimeout, "timeout", script.DefaultTimeout, "Timeout for the scripted run")
	outJobCmd.Flags().BoolVar(&outJobDryRun, "dry-run", false, "Plan the run and print the script without launching the design tool")
	return outJobCmd
}

func runOutJob(cmd *cobra.Command, args []string) error {
	projectPath := args[0]

	invoker := &script.Invoker{}
	session := &script.Session{
		LocalSession: host.LocalSession{Loader: prjpcb.LoadProject},
		Script:       invoker,
	}

	runner := &outjob.Runner{
		Session: session,
		Invoker: invoker,
		Log:     logrus.StandardLogger(),
	}
	if err := runner.Run(projectPath, outJobName); err != nil {
		return err
	}

	if outJobDryRun {
		fmt.Println(invoker.Procedure())
		return nil
	}

	altiumExe, err := resolveAltium(outJobAltiumVersion)
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
		Timeout: outJobTimeout,
	}
	code, err := bridge.Run(altiumExe, invoker.Procedure(), nil)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("output generation failed with code %d", code)
	}

	fmt.Println(color.GreenString("Output job replayed for %s", projectPath))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pcbmate/pcbmate/pkg/exec"
	"github.com/pcbmate/pcbmate/pkg/precommit"
)

var (
	preCommitPrintConfig  bool
	preCommitHooksYAML    bool
	preCommitAddConfig    string
	preCommitLinkedConfig string
	preCommitInstall      bool
	preCommitForce        bool
)

// NewPreCommitCmd creates the `pre-commit` command.
func NewPreCommitCmd() *cobra.Command {
	preCommitCmd := &cobra.Command{
		Use:   "pre-commit",
		Short: "Pre-commit handling commands",
		Long: `Manage the pre-commit configuration for an Altium Designer project.

Examples:
  # Print a sample configuration
  pcbmate pre-commit --sample-config

  # Print the hook repository manifest
  pcbmate pre-commit --hooks-yaml

  # Write the configuration into the current repository
  pcbmate pre-commit --add-config .

  # Install the hooks
  pcbmate pre-commit --install`,
		Args: cobra.NoArgs,
		RunE: runPreCommit,
	}
	preCommitCmd.Flags().BoolVar(&preCommitPrintConfig, "sample-config", false, "Print a sample pre-commit configuration file")
	preCommitCmd.Flags().BoolVar(&preCommitHooksYAML, "hooks-yaml", false, "Print the .pre-commit-hooks.yaml manifest for the hook repository")
	preCommitCmd.Flags().StringVar(&preCommitAddConfig, "add-config", "", "Add a .pre-commit-config.yaml file to the given directory")
	preCommitCmd.Flags().Lookup("add-config").NoOptDefVal = "."
	preCommitCmd.Flags().StringVar(&preCommitLinkedConfig, "add-linked-config", "", "Add .pre-commit-config.yaml as a hard link to the shared sample config")
	preCommitCmd.Flags().Lookup("add-linked-config").NoOptDefVal = "."
	preCommitCmd.Flags().BoolVar(&preCommitInstall, "install", false, "Install the pre-commit hooks")
	preCommitCmd.Flags().BoolVar(&preCommitForce, "force", false, "Overwrite an existing config file")
	preCommitCmd.MarkFlagsMutuallyExclusive("sample-config", "hooks-yaml", "add-config", "add-linked-config", "install")
	return preCommitCmd
}

func runPreCommit(cmd *cobra.Command, args []string) error {
	switch {
	case preCommitPrintConfig:
		content, err := precommit.SampleConfig("remote", Version)
		if err != nil {
			return err
		}
		fmt.Print(content)
		return nil

	case preCommitHooksYAML:
		content, err := precommit.HooksYAML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil

	case preCommitAddConfig != "":
		if err := precommit.AddConfig(preCommitAddConfig, Version, preCommitForce); err != nil {
			return err
		}
		fmt.Println(color.GreenString("Pre-commit config file created in %s", preCommitAddConfig))
		return nil

	case preCommitLinkedConfig != "":
		dir, err := dataDir()
		if err != nil {
			return err
		}
		if err := precommit.AddLinkedConfig(preCommitLinkedConfig, dir, Version, preCommitForce); err != nil {
			return err
		}
		fmt.Println(color.GreenString("Linked pre-commit config created in %s", preCommitLinkedConfig))
		return nil

	case preCommitInstall:
		out, err := precommit.Install(&exec.RealCommandExecutor{})
		if out != "" {
			fmt.Println(out)
		}
		if err != nil {
			logrus.WithError(err).Error("pre-commit install failed")
			return err
		}
		return nil

	default:
		return cmd.Usage()
	}
}

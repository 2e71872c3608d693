package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pcbmate/pcbmate/pkg/prjpcb"
)

var readmeAllowMissing bool

// NewReadmeCmd creates the `readme` command.
func NewReadmeCmd() *cobra.Command {
	readmeCmd := &cobra.Command{
		Use:   "readme [project.PrjPcb] [README.md]",
		Short: "Update README.md with project parameters",
		Long: `Update README.md with parameters from an Altium Designer project file.

The README is scanned for spans of the form [](ParameterName)old text[](/)
and each span's text is replaced with the parameter's current value.
Defaults to the first .PrjPcb file and the README.md in the current
directory.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runReadme,
	}
	readmeCmd.Flags().BoolVar(&readmeAllowMissing, "allow-missing", false, "Leave spans for unknown parameters in place instead of failing")
	return readmeCmd
}

func runReadme(cmd *cobra.Command, args []string) error {
	projectPath := ""
	readmePath := "README.md"
	if len(args) > 0 {
		projectPath = args[0]
	}
	if len(args) > 1 {
		readmePath = args[1]
	}

	if projectPath == "" {
		matches, err := filepath.Glob("*.PrjPcb")
		if err != nil || len(matches) == 0 {
			return fmt.Errorf("no project file found, pass one explicitly")
		}
		projectPath = matches[0]
	}

	params, err := prjpcb.ReadParams(projectPath)
	if err != nil {
		return err
	}

	inserted, err := prjpcb.UpdateReadme(readmePath, params, !readmeAllowMissing)
	if err != nil {
		return err
	}
	fmt.Println(color.GreenString("Updated %s with %d parameters", readmePath, inserted))
	return nil
}

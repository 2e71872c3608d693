package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pcbmate/pcbmate/pkg/install"
)

var (
	whereVersion string
	wherePin     bool
)

// NewWhereCmd creates the `where` command.
func NewWhereCmd() *cobra.Command {
	whereCmd := &cobra.Command{
		Use:   "where",
		Short: "Print the path to the Altium Designer executable",
		Long: `Print the path to the Altium Designer executable. Without --version the
first installation found is used; --version narrows by prefix match
against the installed version strings.`,
		Args: cobra.NoArgs,
		RunE: runWhere,
	}
	whereCmd.Flags().StringVar(&whereVersion, "version", "", `Altium Designer version to select ("any" accepts the first found)`)
	whereCmd.Flags().BoolVar(&wherePin, "pin", false, "Pin the discovered path for later hooks in the same run")
	return whereCmd
}

func runWhere(cmd *cobra.Command, args []string) error {
	exe, err := install.Find(whereVersion)
	if err != nil {
		return err
	}
	fmt.Println(exe)

	if wherePin {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		return install.WritePinned(dir, exe)
	}
	return nil
}

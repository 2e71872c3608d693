package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// NewRootCmd builds the pcbmate command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pcbmate",
		Short:         "Altium Designer automation interface",
		Long:          `pcbmate automates Altium Designer from pre-commit hooks: replaying output jobs, running scripts in the design tool and keeping project documentation in sync.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Increase verbosity")

	rootCmd.AddCommand(NewOutJobCmd())
	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewWhereCmd())
	rootCmd.AddCommand(NewPreCommitCmd())
	rootCmd.AddCommand(NewReadmeCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// configureLogging keeps the console quiet (warnings and up, or debug
// with --verbose) while the log file in the data directory records
// everything, so hooks stay terse but failures remain diagnosable.
func configureLogging() {
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetOutput(io.Discard)

	consoleLevel := logrus.WarnLevel
	if verbose {
		consoleLevel = logrus.DebugLevel
	}
	logrus.AddHook(&writerHook{
		writer:    os.Stderr,
		minLevel:  consoleLevel,
		formatter: &logrus.TextFormatter{FullTimestamp: true},
	})

	dir, err := dataDir()
	if err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "pcbmate.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	logrus.AddHook(&writerHook{
		writer:    f,
		minLevel:  logrus.DebugLevel,
		formatter: &logrus.TextFormatter{FullTimestamp: true, DisableColors: true},
	})
}

// writerHook routes entries at or above minLevel to one destination.
type writerHook struct {
	writer    io.Writer
	minLevel  logrus.Level
	formatter logrus.Formatter
}

func (h *writerHook) Levels() []logrus.Level {
	var levels []logrus.Level
	for _, l := range logrus.AllLevels {
		if l <= h.minLevel {
			levels = append(levels, l)
		}
	}
	return levels
}

func (h *writerHook) Fire(entry *logrus.Entry) error {
	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.writer.Write(data)
	return err
}

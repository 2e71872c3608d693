// Package script drives Altium Designer through its scripting system.
// Hooks can't call into the design tool directly; instead a small
// DelphiScript shim is rendered with the run parameters as constants,
// the tool is launched with a RunScript directive, and completion is
// observed through a return-code file the shim writes.
package script

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pcbmate/pcbmate/pkg/exec"
)

const (
	// constantsFile is the rendered shim, referenced by the scripting
	// project.
	constantsFile = "pcbmate.pas"

	// scriptProject is the Altium scripting project that includes the
	// shim.
	scriptProject = "precommit.PrjScr"

	// returnFile is written by the shim when the called procedure
	// finishes, carrying its exit code.
	returnFile = "AD_out"

	// entryProcedure is the procedure the RunScript directive targets.
	entryProcedure = "RunFromPcbmate"
)

// Timeout bounds for a scripted run. AD startup alone can take tens of
// seconds, and a run blocked for an hour is never coming back.
const (
	DefaultTimeout = 60 * time.Second
	MinTimeout     = 3 * time.Second
	MaxTimeout     = time.Hour

	pollInterval = 300 * time.Millisecond
	// settleWindow guards against reading the return file between the
	// shim creating it and finishing the write.
	settleWindow = 100 * time.Millisecond
)

// Bridge renders and runs DelphiScript procedures in Altium Designer.
type Bridge struct {
	// Exec launches the design tool.
	Exec exec.CommandExecutor

	// Dir is the scripting workspace holding the scripting project, the
	// rendered shim and the return file.
	Dir string

	// Timeout bounds the whole scripted run. Zero means DefaultTimeout.
	Timeout time.Duration

	Log logrus.FieldLogger
}

// RenderConstants writes the shim: the given values as DelphiScript
// constants, plus the entry procedure that calls procedure and reports
// its return code through the return file. A stale return file from a
// previous run is removed.
func (b *Bridge) RenderConstants(procedure string, consts map[string]string) error {
	os.Remove(b.returnPath())

	keys := make([]string, 0, len(consts))
	for k := range consts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("const\n")
	for _, k := range keys {
		fmt.Fprintf(&sb, "  %s = '%s';\n", k, consts[k])
	}
	fmt.Fprintf(&sb, `
Var
  return_code: cardinal;

Procedure %s;
Var
  tmp_file: TextFile;
Begin
  return_code := 1;
  AssignFile(tmp_file, '%s');
  Try
  %s;
  Finally
    ReWrite(tmp_file);
    WriteLn(tmp_file, return_code);
    CloseFile(tmp_file);
  end;
End;
`, entryProcedure, filepath.ToSlash(b.returnPath()), procedure)

	if err := os.WriteFile(filepath.Join(b.Dir, constantsFile), []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("rendering script constants: %w", err)
	}
	return nil
}

// Run renders the shim for procedure (with the passed files exposed as a
// comma-separated passed_files constant), launches altiumExe and waits
// for the shim's return code.
//
// When AD is already running, the launched process hands the directive
// over and exits immediately, long before the script finishes. The
// return file, not the process exit, is therefore the completion signal.
func (b *Bridge) Run(altiumExe, procedure string, files []string) (int, error) {
	timeout, err := b.timeout()
	if err != nil {
		return 1, err
	}

	err = b.RenderConstants(procedure, map[string]string{
		"passed_files": strings.Join(files, ","),
	})
	if err != nil {
		return 1, err
	}

	directive := fmt.Sprintf("-RScriptingSystem:RunScript(ProjectName=%s|ProcName=%s>%s)",
		filepath.Join(b.Dir, scriptProject), constantsFile, entryProcedure)

	start := time.Now()
	b.logger().WithFields(logrus.Fields{"exe": altiumExe, "procedure": procedure}).Info("Launching Altium Designer")

	// The launch happens off the polling loop so the timeout bounds the
	// launched process and the return-file wait together. The process
	// exiting is not the completion signal, but a launch that never
	// comes back must still trip the deadline.
	launchDone := make(chan error, 1)
	go func() {
		_, err := b.Exec.Execute(altiumExe, directive)
		launchDone <- err
	}()

	if err := b.awaitReturnFile(start, timeout, launchDone); err != nil {
		return 1, err
	}
	b.logger().WithFields(logrus.Fields{"elapsed": time.Since(start).Round(time.Millisecond).String()}).Info("Script finished")

	return b.readReturnCode()
}

func (b *Bridge) awaitReturnFile(start time.Time, timeout time.Duration, launchDone <-chan error) error {
	for {
		if launchDone != nil {
			select {
			case err := <-launchDone:
				if err != nil {
					return fmt.Errorf("launching Altium Designer: %w", err)
				}
				launchDone = nil
			default:
			}
		}
		if info, err := os.Stat(b.returnPath()); err == nil {
			if time.Since(info.ModTime()) > settleWindow {
				return nil
			}
		}
		if time.Since(start) > timeout {
			return fmt.Errorf("Altium Designer took longer than %s", timeout)
		}
		time.Sleep(pollInterval)
	}
}

func (b *Bridge) readReturnCode() (int, error) {
	data, err := os.ReadFile(b.returnPath())
	if err != nil {
		return 1, fmt.Errorf("reading script return file: %w", err)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(data)), "\n")
	code, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 1, fmt.Errorf("invalid script return code %q", line)
	}
	return code, nil
}

func (b *Bridge) timeout() (time.Duration, error) {
	t := b.Timeout
	if t == 0 {
		t = DefaultTimeout
	}
	if t <= MinTimeout {
		return 0, fmt.Errorf("timeout must be larger than %s", MinTimeout)
	}
	if t >= MaxTimeout {
		return 0, fmt.Errorf("timeout must be less than %s", MaxTimeout)
	}
	return t, nil
}

func (b *Bridge) returnPath() string { return filepath.Join(b.Dir, returnFile) }

func (b *Bridge) logger() logrus.FieldLogger {
	if b.Log != nil {
		return b.Log
	}
	return logrus.StandardLogger()
}

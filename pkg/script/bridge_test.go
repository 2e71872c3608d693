package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcbmate/pcbmate/pkg/exec"
)

func TestRenderConstants(t *testing.T) {
	dir := t.TempDir()
	b := &Bridge{Dir: dir}

	// A stale return file from a previous run must be removed.
	require.NoError(t, os.WriteFile(filepath.Join(dir, returnFile), []byte("0\n"), 0o644))

	err := b.RenderConstants("GenerateOutputs", map[string]string{
		"passed_files":   `C:\proj\Main.PrjPcb`,
		"call_procedure": "GenerateOutputs",
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, returnFile))
	assert.True(t, os.IsNotExist(err), "stale return file must be removed")

	data, err := os.ReadFile(filepath.Join(dir, constantsFile))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "const\n")
	assert.Contains(t, content, `passed_files = 'C:\proj\Main.PrjPcb';`)
	assert.Contains(t, content, "Procedure "+entryProcedure+";")
	assert.Contains(t, content, "GenerateOutputs;")
	assert.Contains(t, content, "WriteLn(tmp_file, return_code);")
}

func TestBridgeRun(t *testing.T) {
	dir := t.TempDir()
	mock := &exec.MockCommandExecutor{
		ExecuteFunc: func(name string, arg ...string) (string, error) {
			// The tool exits quickly; the shim writes the return file.
			return "", os.WriteFile(filepath.Join(dir, returnFile), []byte("0\n"), 0o644)
		},
	}
	b := &Bridge{Exec: mock, Dir: dir, Timeout: 5 * time.Second}

	code, err := b.Run(`C:\Altium\X2.exe`, "ShowInfo('hi')", []string{"a.SchDoc", "b.PcbDoc"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	require.Len(t, mock.Commands, 1)
	cmd := mock.Commands[0]
	assert.True(t, strings.HasPrefix(cmd, `C:\Altium\X2.exe -RScriptingSystem:RunScript(`), cmd)
	assert.Contains(t, cmd, "ProcName="+constantsFile+">"+entryProcedure)

	data, err := os.ReadFile(filepath.Join(dir, constantsFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "passed_files = 'a.SchDoc,b.PcbDoc';")
}

func TestBridgeRunNonZeroCode(t *testing.T) {
	dir := t.TempDir()
	mock := &exec.MockCommandExecutor{
		ExecuteFunc: func(name string, arg ...string) (string, error) {
			return "", os.WriteFile(filepath.Join(dir, returnFile), []byte("3\n"), 0o644)
		},
	}
	b := &Bridge{Exec: mock, Dir: dir, Timeout: 5 * time.Second}

	code, err := b.Run("X2.exe", "Fail", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestBridgeRunInvalidReturnCode(t *testing.T) {
	dir := t.TempDir()
	mock := &exec.MockCommandExecutor{
		ExecuteFunc: func(name string, arg ...string) (string, error) {
			return "", os.WriteFile(filepath.Join(dir, returnFile), []byte("garbage\n"), 0o644)
		},
	}
	b := &Bridge{Exec: mock, Dir: dir, Timeout: 5 * time.Second}

	_, err := b.Run("X2.exe", "Fail", nil)
	require.Error(t, err)
}

func TestBridgeRunTimeoutCoversLaunch(t *testing.T) {
	dir := t.TempDir()
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	// The launched process never comes back and never produces a
	// return file; the configured timeout must still end the run.
	mock := &exec.MockCommandExecutor{
		ExecuteFunc: func(name string, arg ...string) (string, error) {
			<-release
			return "", nil
		},
	}
	b := &Bridge{Exec: mock, Dir: dir, Timeout: 3100 * time.Millisecond}

	start := time.Now()
	_, err := b.Run("X2.exe", "HangForever", nil)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "took longer than")
	assert.Less(t, elapsed, 6*time.Second, "run must end at the timeout, not when the launch returns")
}

func TestBridgeRunLaunchFailure(t *testing.T) {
	dir := t.TempDir()
	mock := &exec.MockCommandExecutor{
		ExecuteFunc: func(name string, arg ...string) (string, error) {
			return "", os.ErrPermission
		},
	}
	b := &Bridge{Exec: mock, Dir: dir, Timeout: 5 * time.Second}

	_, err := b.Run("X2.exe", "Nope", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "launching Altium Designer")
}

func TestBridgeTimeoutBounds(t *testing.T) {
	b := &Bridge{Dir: t.TempDir(), Exec: &exec.MockCommandExecutor{}}

	b.Timeout = time.Second
	_, err := b.Run("X2.exe", "P", nil)
	require.Error(t, err, "timeout below the minimum is rejected")

	b.Timeout = 2 * time.Hour
	_, err = b.Run("X2.exe", "P", nil)
	require.Error(t, err, "timeout above the maximum is rejected")
}

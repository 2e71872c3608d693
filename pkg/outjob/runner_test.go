package outjob_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcbmate/pcbmate/pkg/host"
	"github.com/pcbmate/pcbmate/pkg/outjob"
)

// writeOutJob drops an output job file into a temp dir and returns a
// session holding a project that owns it.
func writeOutJob(t *testing.T, content string) (*host.FakeSession, string, string) {
	t.Helper()
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "Release.OutJob")
	require.NoError(t, os.WriteFile(jobPath, []byte(content), 0o644))

	projectPath := filepath.Join(dir, "Main.PrjPcb")
	session := &host.FakeSession{
		Projects: []*host.Project{
			{
				Path: projectPath,
				Documents: []*host.Document{
					{Kind: host.DocumentKindOutJob, Path: jobPath},
				},
			},
		},
	}
	return session, projectPath, jobPath
}

func TestRunnerDispatchesParsedContainers(t *testing.T) {
	session, projectPath, jobPath := writeOutJob(t, "OutputMedium1=Fab\nSomeKind=GeneratedFiles\n")
	invoker := &host.RecordingInvoker{}

	runner := &outjob.Runner{Session: session, Invoker: invoker, Log: testLogger()}
	require.NoError(t, runner.Run(projectPath, ""))

	require.Len(t, invoker.Invocations, 1)
	assert.Equal(t, "PublishToFolder", invoker.Invocations[0].Param("Action"))
	assert.Equal(t, "Fab", invoker.Invocations[0].Param("OutputMedium"))

	assert.Equal(t, []string{jobPath}, session.OpenedDocuments)
	assert.Equal(t, []string{jobPath}, session.Shown)
}

func TestRunnerClosesDocumentItOpened(t *testing.T) {
	session, projectPath, jobPath := writeOutJob(t, "OutputMedium1=Fab\nKind=GeneratedFiles\n")

	runner := &outjob.Runner{Session: session, Invoker: &host.RecordingInvoker{}, Log: testLogger()}
	require.NoError(t, runner.Run(projectPath, ""))

	assert.Equal(t, []string{jobPath}, session.Closed, "document opened by the run must be closed again")
	assert.False(t, session.IsDocumentOpen(jobPath))
}

func TestRunnerLeavesCallerOwnedDocumentOpen(t *testing.T) {
	session, projectPath, jobPath := writeOutJob(t, "OutputMedium1=Fab\nKind=GeneratedFiles\n")
	session.OpenDocs = []string{jobPath}

	runner := &outjob.Runner{Session: session, Invoker: &host.RecordingInvoker{}, Log: testLogger()}
	require.NoError(t, runner.Run(projectPath, ""))

	assert.Empty(t, session.Closed, "caller-owned document must stay open")
	assert.True(t, session.IsDocumentOpen(jobPath))
}

func TestRunnerProjectNotFound(t *testing.T) {
	session := &host.FakeSession{}
	invoker := &host.RecordingInvoker{}

	runner := &outjob.Runner{Session: session, Invoker: invoker, Log: testLogger()}
	err := runner.Run(`C:\nowhere\Main.PrjPcb`, "")

	require.ErrorIs(t, err, outjob.ErrProjectNotFound)
	assert.Empty(t, invoker.Invocations, "no dispatch after a failed resolve")
	assert.Empty(t, session.OpenedDocuments)
}

func TestRunnerOutJobNotFound(t *testing.T) {
	session := &host.FakeSession{
		Projects: []*host.Project{{Path: `C:\proj\Main.PrjPcb`}},
	}
	invoker := &host.RecordingInvoker{}

	runner := &outjob.Runner{Session: session, Invoker: invoker, Log: testLogger()}
	err := runner.Run(`C:\proj\Main.PrjPcb`, "")

	require.ErrorIs(t, err, outjob.ErrOutJobNotFound)
	assert.Empty(t, invoker.Invocations)
}

func TestRunnerOpenFailure(t *testing.T) {
	session, projectPath, _ := writeOutJob(t, "OutputMedium1=Fab\nKind=GeneratedFiles\n")
	session.OpenDocumentErr = errors.New("host refused")
	invoker := &host.RecordingInvoker{}

	runner := &outjob.Runner{Session: session, Invoker: invoker, Log: testLogger()}
	err := runner.Run(projectPath, "")

	require.ErrorIs(t, err, outjob.ErrOpenFailed)
	assert.Empty(t, invoker.Invocations)
	assert.Empty(t, session.Closed, "nothing to restore when the open failed")
}

func TestRunnerWithNameHint(t *testing.T) {
	session, projectPath, _ := writeOutJob(t, "OutputMedium1=Fab\nKind=GeneratedFiles\n")

	runner := &outjob.Runner{Session: session, Invoker: &host.RecordingInvoker{}, Log: testLogger()}
	require.NoError(t, runner.Run(projectPath, "RELEASE.outjob"))

	err := runner.Run(projectPath, "Other.OutJob")
	require.ErrorIs(t, err, outjob.ErrOutJobNotFound)
}

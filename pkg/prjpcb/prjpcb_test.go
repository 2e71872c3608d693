package prjpcb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcbmate/pcbmate/pkg/host"
)

const sampleProject = `[Design]
Version=1.0

[Document1]
DocumentPath=Mainboard.SchDoc
AnnotationEnabled=1

[Document2]
DocumentPath=Mainboard.PcbDoc

[Document3]
DocumentPath=outputs\Release.OutJob

[Parameter1]
Name=ProjectName
Value=Mainboard

[Parameter2]
Name=Revision
Value=B2
`

func TestParseParams(t *testing.T) {
	params, err := ParseParams(strings.NewReader(sampleProject))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"ProjectName": "Mainboard",
		"Revision":    "B2",
	}, params)
}

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Main.PrjPcb")
	require.NoError(t, os.WriteFile(path, []byte(sampleProject), 0o644))

	project, err := LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, path, project.Path)
	require.Len(t, project.Documents, 3)

	assert.Equal(t, "DOC", project.Documents[0].Kind)
	assert.Equal(t, filepath.Join(dir, "Mainboard.SchDoc"), project.Documents[0].Path)

	outJob := project.Documents[2]
	assert.Equal(t, host.DocumentKindOutJob, outJob.Kind)
	assert.Equal(t, filepath.Join(dir, "outputs", "Release.OutJob"), outJob.Path)
}

func TestLoadProjectMissingFile(t *testing.T) {
	_, err := LoadProject(filepath.Join(t.TempDir(), "nope.PrjPcb"))
	require.Error(t, err)
}

func TestUpdateReadme(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	content := "# [](ProjectName)old name[](/)\n\nRevision [](Revision)A0[](/)\n"
	require.NoError(t, os.WriteFile(readme, []byte(content), 0o644))

	params := map[string]string{"ProjectName": "Mainboard", "Revision": "B2"}
	inserted, err := UpdateReadme(readme, params, true)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	updated, err := os.ReadFile(readme)
	require.NoError(t, err)
	assert.Equal(t, "# [](ProjectName)Mainboard[](/)\n\nRevision [](Revision)B2[](/)\n", string(updated))
}

func TestUpdateReadmeMissingParameter(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("[](Nope)x[](/)"), 0o644))

	_, err := UpdateReadme(readme, map[string]string{}, true)
	require.Error(t, err)

	inserted, err := UpdateReadme(readme, map[string]string{}, false)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	updated, _ := os.ReadFile(readme)
	assert.Equal(t, "[](Nope)Nope[](/)", string(updated))
}

func TestUpdateReadmeIdempotent(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("[](Revision)B2[](/)"), 0o644))

	params := map[string]string{"Revision": "B2"}
	_, err := UpdateReadme(readme, params, true)
	require.NoError(t, err)
	_, err = UpdateReadme(readme, params, true)
	require.NoError(t, err)

	updated, _ := os.ReadFile(readme)
	assert.Equal(t, "[](Revision)B2[](/)", string(updated))
}

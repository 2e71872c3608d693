package outjob_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcbmate/pcbmate/pkg/host"
	"github.com/pcbmate/pcbmate/pkg/outjob"
)

func TestResolveProjectAlreadyOpen(t *testing.T) {
	session := &host.FakeSession{
		Projects: []*host.Project{
			{Path: `C:\other\Other.PrjPcb`},
			{Path: `C:\proj\Main.PrjPcb`},
		},
	}

	project, err := outjob.ResolveProject(session, `c:\proj\MAIN.prjpcb`)
	require.NoError(t, err)
	assert.Equal(t, `C:\proj\Main.PrjPcb`, project.Path)
	assert.Equal(t, []string{`c:\proj\MAIN.prjpcb`}, session.OpenedObjects, "open request is always issued first")
}

func TestResolveProjectOpensOnRequest(t *testing.T) {
	session := &host.FakeSession{}
	session.OpenObjectFunc = func(path string) {
		session.Projects = append(session.Projects, &host.Project{Path: path})
	}

	project, err := outjob.ResolveProject(session, `C:\proj\Main.PrjPcb`)
	require.NoError(t, err)
	assert.Equal(t, `C:\proj\Main.PrjPcb`, project.Path)
}

func TestResolveProjectSkipsNilSlots(t *testing.T) {
	session := &host.FakeSession{
		Projects: []*host.Project{
			nil,
			{Path: `C:\proj\Main.PrjPcb`},
		},
	}

	project, err := outjob.ResolveProject(session, `C:\proj\Main.PrjPcb`)
	require.NoError(t, err)
	assert.NotNil(t, project)
}

func TestResolveProjectNotFound(t *testing.T) {
	session := &host.FakeSession{
		Projects: []*host.Project{{Path: `C:\other\Other.PrjPcb`}},
	}

	_, err := outjob.ResolveProject(session, `C:\proj\Main.PrjPcb`)
	require.ErrorIs(t, err, outjob.ErrProjectNotFound)
}

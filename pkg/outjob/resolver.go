package outjob

import (
	"fmt"

	"github.com/pcbmate/pcbmate/pkg/host"
	"github.com/pcbmate/pcbmate/pkg/pathutil"
)

// ResolveProject ensures the project at projectPath is open in the
// session and returns its handle. The open request is fire-and-forget;
// the host no-ops when the project is already open. The open-project list
// is then scanned for a path match.
//
// Nil slots in the open-project list are skipped rather than treated as
// the end of the list. The host's list is normally dense, but a hole must
// not hide projects behind it.
func ResolveProject(session host.Session, projectPath string) (*host.Project, error) {
	session.OpenObject(projectPath)

	for i := 0; i < session.OpenCount(); i++ {
		project := session.OpenProject(i)
		if project == nil {
			continue
		}
		if pathutil.Equal(project.Path, projectPath) {
			return project, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectPath)
}

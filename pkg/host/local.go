package host

import (
	"os"

	"github.com/pcbmate/pcbmate/pkg/pathutil"
)

// LocalSession is the production Session. pcbmate runs outside the
// design tool, so it keeps its own model of the workspace: opening a
// project loads it from disk through Loader, and document open state
// tracks what this process has opened. The actual generation work is
// carried by the Invoker, not the session.
type LocalSession struct {
	// Loader reads a project file into a Project. Wired to the .PrjPcb
	// reader by the CLI; kept as a function so this package stays free
	// of format knowledge.
	Loader func(path string) (*Project, error)

	projects []*Project
	openDocs []string
}

// OpenObject loads the project at path into the session. Failures are
// swallowed: the open is fire-and-forget, and a project that failed to
// load simply never appears among the open projects.
func (s *LocalSession) OpenObject(path string) {
	for _, p := range s.projects {
		if p != nil && pathutil.Equal(p.Path, path) {
			return
		}
	}
	project, err := s.Loader(path)
	if err != nil {
		return
	}
	s.projects = append(s.projects, project)
}

func (s *LocalSession) OpenCount() int { return len(s.projects) }

func (s *LocalSession) OpenProject(i int) *Project {
	if i < 0 || i >= len(s.projects) {
		return nil
	}
	return s.projects[i]
}

func (s *LocalSession) IsDocumentOpen(path string) bool {
	for _, p := range s.openDocs {
		if pathutil.Equal(p, path) {
			return true
		}
	}
	return false
}

func (s *LocalSession) OpenDocument(kind, path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	if !s.IsDocumentOpen(path) {
		s.openDocs = append(s.openDocs, path)
	}
	return &Document{Kind: kind, Path: path}, nil
}

// ShowDocument is a no-op: there is no editor surface in this process.
func (s *LocalSession) ShowDocument(d *Document) {}

func (s *LocalSession) CloseDocument(d *Document) {
	for i, p := range s.openDocs {
		if pathutil.Equal(p, d.Path) {
			s.openDocs = append(s.openDocs[:i], s.openDocs[i+1:]...)
			return
		}
	}
}

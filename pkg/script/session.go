package script

import (
	"fmt"

	"github.com/pcbmate/pcbmate/pkg/host"
)

// Session is the host.Session used for scripted runs. Queries are
// answered from the local workspace model; the mutating verbs are
// additionally mirrored into the queued script, so the design tool
// replays the same open/show/close sequence the orchestration decided
// on.
type Session struct {
	host.LocalSession

	// Script receives the mirrored statements, alongside the dispatch
	// invocations.
	Script *Invoker
}

var _ host.Session = (*Session)(nil)

func (s *Session) OpenObject(path string) {
	s.LocalSession.OpenObject(path)
	s.Script.queue(fmt.Sprintf(
		"  ResetParameters;\n  AddStringParameter('ObjectKind', 'Project');\n  AddStringParameter('FileName', '%s');\n  RunProcess('WorkspaceManager:OpenObject');\n",
		quote(path)))
}

func (s *Session) OpenDocument(kind, path string) (*host.Document, error) {
	doc, err := s.LocalSession.OpenDocument(kind, path)
	if err != nil {
		return nil, err
	}
	s.Script.queue(fmt.Sprintf("  Client.OpenDocument('%s', '%s');\n", quote(kind), quote(path)))
	return doc, nil
}

func (s *Session) ShowDocument(d *host.Document) {
	s.LocalSession.ShowDocument(d)
	s.Script.queue(fmt.Sprintf("  Client.ShowDocument(Client.GetDocumentByPath('%s'));\n", quote(d.Path)))
}

func (s *Session) CloseDocument(d *host.Document) {
	s.LocalSession.CloseDocument(d)
	s.Script.queue(fmt.Sprintf("  Client.CloseDocument(Client.GetDocumentByPath('%s'));\n", quote(d.Path)))
}

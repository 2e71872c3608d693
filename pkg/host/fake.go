package host

import "github.com/pcbmate/pcbmate/pkg/pathutil"

// FakeSession is an in-memory Session for tests. It records the open and
// close traffic so tests can assert document lifecycle behavior.
type FakeSession struct {
	// Projects is the open-project list, indexable with nil holes.
	Projects []*Project

	// OpenDocs holds the paths of documents currently open in the
	// editing session.
	OpenDocs []string

	// OpenObjectFunc, when set, is called by OpenObject; it lets a test
	// simulate the host actually opening a project on request.
	OpenObjectFunc func(path string)

	// OpenDocumentErr, when set, makes OpenDocument fail.
	OpenDocumentErr error

	// OpenedObjects, OpenedDocuments, Shown and Closed record calls in
	// order.
	OpenedObjects   []string
	OpenedDocuments []string
	Shown           []string
	Closed          []string
}

func (s *FakeSession) OpenObject(path string) {
	s.OpenedObjects = append(s.OpenedObjects, path)
	if s.OpenObjectFunc != nil {
		s.OpenObjectFunc(path)
	}
}

func (s *FakeSession) OpenCount() int { return len(s.Projects) }

func (s *FakeSession) OpenProject(i int) *Project {
	if i < 0 || i >= len(s.Projects) {
		return nil
	}
	return s.Projects[i]
}

func (s *FakeSession) IsDocumentOpen(path string) bool {
	for _, p := range s.OpenDocs {
		if pathutil.Equal(p, path) {
			return true
		}
	}
	return false
}

func (s *FakeSession) OpenDocument(kind, path string) (*Document, error) {
	if s.OpenDocumentErr != nil {
		return nil, s.OpenDocumentErr
	}
	s.OpenedDocuments = append(s.OpenedDocuments, path)
	if !s.IsDocumentOpen(path) {
		s.OpenDocs = append(s.OpenDocs, path)
	}
	return &Document{Kind: kind, Path: path}, nil
}

func (s *FakeSession) ShowDocument(d *Document) {
	s.Shown = append(s.Shown, d.Path)
}

func (s *FakeSession) CloseDocument(d *Document) {
	s.Closed = append(s.Closed, d.Path)
	for i, p := range s.OpenDocs {
		if pathutil.Equal(p, d.Path) {
			s.OpenDocs = append(s.OpenDocs[:i], s.OpenDocs[i+1:]...)
			return
		}
	}
}

// Invocation is one recorded Invoke call.
type Invocation struct {
	Action string
	Params []Param
}

// RecordingInvoker is an Invoker that records every call instead of
// reaching the host.
type RecordingInvoker struct {
	Invocations []Invocation
}

func (r *RecordingInvoker) Invoke(action string, params []Param) {
	cp := make([]Param, len(params))
	copy(cp, params)
	r.Invocations = append(r.Invocations, Invocation{Action: action, Params: cp})
}

// Param returns the value for key in the invocation, or "" if absent.
func (inv Invocation) Param(key string) string {
	for _, p := range inv.Params {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

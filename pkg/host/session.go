// Package host defines the narrow boundary to the Altium Designer
// session. The real session lives inside the design tool and is reached
// over the scripting bridge; everything in this repository talks to it
// through these interfaces so the orchestration core can be exercised
// against in-memory fakes.
package host

// DocumentKindOutJob is the logical-document kind tag the host assigns to
// output job files.
const DocumentKindOutJob = "OUTPUTJOB"

// Document is a logical document belonging to a project. It may or may
// not be loaded in the active editing session.
type Document struct {
	Kind string
	Path string
}

// Project is an open design project and the logical documents it owns.
type Project struct {
	Path      string
	Documents []*Document
}

// Session exposes the host's document and project management. Only one
// session is assumed active at a time; the host enforces single-session
// semantics, so no locking happens on this side of the boundary.
type Session interface {
	// OpenObject asks the host to open the object at path. The host may
	// no-op if it is already open; no result is reported.
	OpenObject(path string)

	// OpenCount returns the number of open projects.
	OpenCount() int

	// OpenProject returns the i-th open project, or nil for an empty
	// slot.
	OpenProject(i int) *Project

	// IsDocumentOpen reports whether the document at path is currently
	// loaded in the editing session.
	IsDocumentOpen(path string) bool

	// OpenDocument opens the document at path with the given kind tag
	// and returns a handle to it.
	OpenDocument(kind, path string) (*Document, error)

	// ShowDocument brings the document to the front of the editor.
	ShowDocument(d *Document)

	// CloseDocument closes the document.
	CloseDocument(d *Document)
}

// Param is a single key=value parameter for a host action. Parameters
// are ordered: the host API is a reset-then-add sequence, and the order
// in which values are added is observable to it.
type Param struct {
	Key   string
	Value string
}

// Invoker runs a named host action with a fresh parameter set. The call
// blocks until the host completes the action; no result is returned, the
// host reports its own failures through its own UI.
type Invoker interface {
	Invoke(action string, params []Param)
}

package outjob

import (
	"fmt"

	"github.com/pcbmate/pcbmate/pkg/host"
)

// openedDocument tracks a document opened for a run together with who
// owned it beforehand. If the caller already had it open, the run must
// leave it open; if this run opened it, the run must close it again.
type openedDocument struct {
	session     host.Session
	doc         *host.Document
	callerOwned bool
}

// openOutJob records whether the document at path was open before the
// run, opens it (a no-op open for the host when it already was), and
// surfaces it. Failing to open is the only hard-fatal condition besides
// the two not-found errors.
func openOutJob(session host.Session, path string) (*openedDocument, error) {
	callerOwned := session.IsDocumentOpen(path)

	doc, err := session.OpenDocument(host.DocumentKindOutJob, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenFailed, path, err)
	}
	session.ShowDocument(doc)

	return &openedDocument{session: session, doc: doc, callerOwned: callerOwned}, nil
}

// release restores the document to its pre-run open state: close it only
// if this run opened it.
func (o *openedDocument) release() {
	if o.callerOwned {
		return
	}
	o.session.CloseDocument(o.doc)
}

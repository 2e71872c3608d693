package outjob

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pcbmate/pcbmate/pkg/host"
)

// Runner replays one output job specification against the host session.
// A run is strictly sequential and synchronous: every host call blocks,
// nothing is retried, and only one run may be active against a session
// at a time (the host enforces single-session semantics).
type Runner struct {
	Session host.Session
	Invoker host.Invoker
	Log     logrus.FieldLogger
}

// Run resolves the project, locates its output job (optionally narrowed
// to outJobName by filename), dispatches every container and restores
// the document state the caller saw before the run.
func (r *Runner) Run(projectPath, outJobName string) error {
	runID := "run-" + uuid.New().String()[:8]
	log := r.logger().WithFields(logrus.Fields{"run_id": runID, "project": projectPath})

	project, err := ResolveProject(r.Session, projectPath)
	if err != nil {
		return err
	}

	doc, err := LocateOutJob(project, outJobName)
	if err != nil {
		return err
	}
	log = log.WithFields(logrus.Fields{"outjob": doc.Path})

	opened, err := openOutJob(r.Session, doc.Path)
	if err != nil {
		return err
	}
	defer opened.release()

	containers, err := r.parseSpec(doc.Path)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"containers": containers.Len()}).Info("Parsed output job")

	Dispatch(r.Invoker, containers, log)
	return nil
}

// parseSpec reads the output job file from disk. The file is consumed
// sequentially and never written.
func (r *Runner) parseSpec(path string) (*Containers, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading output job: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func (r *Runner) logger() logrus.FieldLogger {
	if r.Log != nil {
		return r.Log
	}
	return logrus.StandardLogger()
}

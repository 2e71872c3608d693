package outjob

import (
	"github.com/sirupsen/logrus"

	"github.com/pcbmate/pcbmate/pkg/host"
)

// Host action vocabulary for batch output generation. The invocation is
// a fixed parameter set sent to the workspace manager with dialogs
// suppressed; the medium selector narrows the batch to one container.
const (
	actionOutputJobs = "WorkspaceManager:GenerateReport"

	paramObjectKind    = "ObjectKind"
	paramAction        = "Action"
	paramDisableDialog = "DisableDialog"
	paramOutputMedium  = "OutputMedium"

	objectKindOutputBatch = "OutputBatch"
	verbGenerateFiles     = "PublishToFolder"
	verbPublishPDF        = "PublishToPDF"
)

// Dispatch invokes the generation action bound to each container, in
// container order. Unknown containers are skipped silently. Every
// invocation blocks until the host returns; no result is inspected, the
// host reports generation failures through its own UI.
func Dispatch(invoker host.Invoker, containers *Containers, log logrus.FieldLogger) {
	for _, c := range containers.All() {
		var verb string
		switch c.Kind {
		case ActionFolderGeneration:
			verb = verbGenerateFiles
		case ActionPdfPublish:
			verb = verbPublishPDF
		case ActionUnknown:
			log.WithFields(logrus.Fields{"container": c.Name}).Debug("Skipping container with unknown output kind")
			continue
		}

		params := []host.Param{
			{Key: paramObjectKind, Value: objectKindOutputBatch},
			{Key: paramDisableDialog, Value: "True"},
			{Key: paramAction, Value: verb},
		}
		if c.Name != "" {
			params = append(params, host.Param{Key: paramOutputMedium, Value: c.Name})
		}

		log.WithFields(logrus.Fields{"container": c.Name, "action": c.Kind.String()}).Info("Dispatching container")
		invoker.Invoke(actionOutputJobs, params)
	}
}

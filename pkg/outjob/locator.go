package outjob

import (
	"fmt"

	"github.com/pcbmate/pcbmate/pkg/host"
	"github.com/pcbmate/pcbmate/pkg/pathutil"
)

// LocateOutJob selects the output job document of the project. With an
// empty nameHint, the last output job in the project's document order
// wins. With a non-empty hint, only documents whose filename matches the
// hint's filename (case-insensitively, directories ignored) qualify, and
// again the last such match wins.
func LocateOutJob(project *host.Project, nameHint string) (*host.Document, error) {
	var found *host.Document
	for _, doc := range project.Documents {
		if doc == nil || doc.Kind != host.DocumentKindOutJob {
			continue
		}
		if nameHint != "" && !pathutil.FilenameEqual(doc.Path, nameHint) {
			continue
		}
		found = doc
	}
	if found == nil {
		if nameHint != "" {
			return nil, fmt.Errorf("%w: no document named %s in %s", ErrOutJobNotFound, pathutil.Filename(nameHint), project.Path)
		}
		return nil, fmt.Errorf("%w: no output job in %s", ErrOutJobNotFound, project.Path)
	}
	return found, nil
}

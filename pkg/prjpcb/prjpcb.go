// Package prjpcb reads Altium Designer project files. The .PrjPcb
// format is INI-like and undocumented; only the [Parameter] sections and
// the [Document] section paths are load-bearing here, so the scanners
// are deliberately permissive about everything else.
package prjpcb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pcbmate/pcbmate/pkg/host"
)

// ParseParams extracts the user parameters of a project file. Each
// [ParameterN] section carries the parameter name and value on its next
// two lines, as Name=... and Value=... .
func ParseParams(r io.Reader) (map[string]string, error) {
	out := map[string]string{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if !strings.Contains(sc.Text(), "[Parameter") {
			continue
		}
		if !sc.Scan() {
			break
		}
		_, name, ok := strings.Cut(sc.Text(), "=")
		if !ok || !sc.Scan() {
			break
		}
		_, value, _ := strings.Cut(sc.Text(), "=")
		out[name] = value
	}
	return out, sc.Err()
}

// ReadParams is ParseParams over the file at path.
func ReadParams(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	defer f.Close()
	return ParseParams(f)
}

// LoadProject reads the project at path into a host.Project, listing
// its logical documents in file order. Document paths are stored
// relative to the project directory; they are resolved against it here.
// A document's kind is derived from its extension.
func LoadProject(path string) (*host.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	defer f.Close()

	project := &host.Project{Path: path}
	dir := filepath.Dir(path)

	sc := bufio.NewScanner(f)
	inDocument := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "[") {
			inDocument = strings.HasPrefix(line, "[Document")
			continue
		}
		if !inDocument {
			continue
		}
		if rel, ok := strings.CutPrefix(line, "DocumentPath="); ok {
			docPath := rel
			if !filepath.IsAbs(filepath.FromSlash(strings.ReplaceAll(rel, "\\", "/"))) {
				docPath = filepath.Join(dir, filepath.FromSlash(strings.ReplaceAll(rel, "\\", "/")))
			}
			project.Documents = append(project.Documents, &host.Document{
				Kind: kindOf(rel),
				Path: docPath,
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return project, nil
}

func kindOf(path string) string {
	if strings.EqualFold(filepath.Ext(strings.ReplaceAll(path, "\\", "/")), ".OutJob") {
		return host.DocumentKindOutJob
	}
	return "DOC"
}

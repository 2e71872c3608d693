package outjob

import (
	"bufio"
	"io"
	"strings"
)

// The .OutJob format is an undocumented INI-style export. Only two fields
// matter for automation: the OutputMediumN=<name> line opening a
// container record and the line immediately after it, whose value names
// the output kind. Everything else is inert context, so this is a
// permissive two-line scanner rather than a grammar.

const mediumPrefix = "OutputMedium"

// action kind text as written by the design tool.
const (
	rawKindGeneratedFiles = "GeneratedFiles"
	rawKindPublish        = "Publish"
)

// Parse reads an output job specification and returns its containers in
// order of appearance. Duplicate names are last-write-wins. Lines that
// are not part of a container record, including blank lines, are skipped
// without error.
func Parse(r io.Reader) (*Containers, error) {
	containers := &Containers{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, mediumPrefix) {
			continue
		}
		name := afterLastEquals(line)
		// The kind always sits on the very next line. The record is
		// positional, not delimited: the next line is consumed even if
		// it would itself start a record.
		if !sc.Scan() {
			containers.Put(name, ActionUnknown)
			break
		}
		containers.Put(name, classify(afterLastEquals(sc.Text())))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return containers, nil
}

// ParseString is Parse over in-memory content.
func ParseString(content string) (*Containers, error) {
	return Parse(strings.NewReader(content))
}

// afterLastEquals returns the text after the last '=' on the line, or ""
// when the line has none.
func afterLastEquals(line string) string {
	i := strings.LastIndexByte(line, '=')
	if i < 0 {
		return ""
	}
	return line[i+1:]
}

func classify(raw string) ActionKind {
	switch raw {
	case rawKindGeneratedFiles:
		return ActionFolderGeneration
	case rawKindPublish:
		return ActionPdfPublish
	default:
		return ActionUnknown
	}
}

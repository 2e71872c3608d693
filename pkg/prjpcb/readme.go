package prjpcb

import (
	"fmt"
	"os"
	"regexp"
)

// insertPattern marks a README span to be replaced with a project
// parameter value: [](Key)current text[](/) .
var insertPattern = regexp.MustCompile(`\[\]\((.*?)\)(.*?)\[\]\(/\)`)

// UpdateReadme rewrites every parameter span in the README at path with
// the matching value from params and returns the number of spans
// updated. A span naming a parameter the project doesn't define is an
// error unless failOnMissing is false, in which case the key itself is
// substituted.
func UpdateReadme(path string, params map[string]string, failOnMissing bool) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading readme: %w", err)
	}

	inserted := 0
	var missing error
	updated := insertPattern.ReplaceAllStringFunc(string(data), func(m string) string {
		key := insertPattern.FindStringSubmatch(m)[1]
		value, ok := params[key]
		if !ok {
			if failOnMissing && missing == nil {
				missing = fmt.Errorf("parameter %s not found in the project", key)
			}
			value = key
		} else {
			inserted++
		}
		return fmt.Sprintf("[](%s)%s[](/)", key, value)
	})
	if missing != nil {
		return 0, missing
	}

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return 0, fmt.Errorf("writing readme: %w", err)
	}
	return inserted, nil
}

// Package pathutil compares design-document paths the way the host tool
// does: case-insensitively and ignoring separator and "." / ".." noise.
// Altium stores Windows-style paths in project files, so comparisons must
// survive mixed separators and mixed case regardless of the platform the
// hooks run on.
package pathutil

import (
	"path/filepath"
	"strings"
)

// normalize cleans a path and folds it for comparison. No filesystem
// access: paths referenced by a project may not exist on this machine.
func normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = filepath.ToSlash(filepath.Clean(filepath.FromSlash(p)))
	return strings.ToLower(p)
}

// Equal reports whether a and b refer to the same file under
// case-insensitive, separator-normalized comparison. Symlinks are not
// resolved and neither path needs to exist.
func Equal(a, b string) bool {
	return normalize(a) == normalize(b)
}

// Filename returns the trailing component of p, tolerating both slash
// styles.
func Filename(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	return filepath.Base(filepath.FromSlash(p))
}

// FilenameEqual reports whether the trailing components of a and b match
// case-insensitively. Directory components are ignored entirely.
func FilenameEqual(a, b string) bool {
	return strings.EqualFold(Filename(a), Filename(b))
}

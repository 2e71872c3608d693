// Package install locates Altium Designer executables. The pre-commit
// find-altium hook pins the discovered path into a file so later hooks
// in the same run don't repeat the registry walk.
package install

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PinFile is the file the find-altium hook writes the chosen executable
// path into.
const PinFile = ".altium_exe"

// exeName is the Altium Designer binary inside an installation
// directory.
const exeName = "X2.exe"

// Installation is one discovered Altium Designer install.
type Installation struct {
	Version string
	Exe     string
}

// ReadPinned returns the executable path pinned in dir by an earlier
// find-altium run.
func ReadPinned(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, PinFile))
	if err != nil {
		return "", fmt.Errorf("pinned Altium Designer path missing: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// WritePinned records the executable path for later hooks.
func WritePinned(dir, exe string) error {
	if err := os.WriteFile(filepath.Join(dir, PinFile), []byte(exe+"\n"), 0o644); err != nil {
		return fmt.Errorf("pinning Altium Designer path: %w", err)
	}
	return nil
}

// Find returns the executable for the requested version. version may be
// empty or "any" to accept the first installation found; otherwise it is
// a prefix match against installed version strings, and zero or multiple
// matches are errors.
func Find(version string) (string, error) {
	if version == "any" {
		version = ""
	}
	installs, err := discover()
	if err != nil {
		return "", err
	}
	if len(installs) == 0 {
		return "", fmt.Errorf("Altium Designer is not installed on this computer")
	}
	// Deterministic order regardless of enumeration order.
	sort.Slice(installs, func(i, j int) bool { return installs[i].Version < installs[j].Version })

	if version == "" {
		return installs[0].Exe, nil
	}

	var matched []Installation
	for _, in := range installs {
		if strings.HasPrefix(in.Version, version) {
			matched = append(matched, in)
		}
	}
	switch len(matched) {
	case 0:
		return "", fmt.Errorf("Altium Designer version %q not found", version)
	case 1:
		return matched[0].Exe, nil
	default:
		versions := make([]string, len(matched))
		for i, in := range matched {
			versions[i] = in.Version
		}
		return "", fmt.Errorf("multiple Altium Designer versions match %q: %s", version, strings.Join(versions, ", "))
	}
}

//go:build windows

package install

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

// buildsKey is where the Altium installer registers every build.
const buildsKey = `SOFTWARE\Altium\Builds`

// discover walks the Builds registry key collecting one installation per
// subkey. Each subkey carries a Version and a ProgramsInstallPath value.
func discover() ([]Installation, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, buildsKey, registry.READ)
	if err != nil {
		return nil, fmt.Errorf("Altium Designer registry key not found: %w", err)
	}
	defer key.Close()

	names, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("registry access failed: %w", err)
	}

	var installs []Installation
	for _, name := range names {
		sub, err := registry.OpenKey(key, name, registry.READ)
		if err != nil {
			continue
		}
		version, _, verr := sub.GetStringValue("Version")
		installPath, _, perr := sub.GetStringValue("ProgramsInstallPath")
		sub.Close()
		if verr != nil || perr != nil {
			continue
		}
		installs = append(installs, Installation{
			Version: version,
			Exe:     filepath.Join(installPath, exeName),
		})
	}
	return installs, nil
}

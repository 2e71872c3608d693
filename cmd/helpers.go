package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pcbmate/pcbmate/pkg/install"
)

// dataDir returns the pcbmate data directory (scripting workspace, log
// file, pinned executable path), creating it on first use.
func dataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	dir := filepath.Join(base, "pcbmate")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}
	return dir, nil
}

// resolveAltium finds the Altium Designer executable: an explicit
// version always goes through discovery, otherwise the path pinned by a
// find-altium run wins and discovery is the fallback.
func resolveAltium(version string) (string, error) {
	if version != "" {
		return install.Find(version)
	}
	if dir, err := dataDir(); err == nil {
		if exe, err := install.ReadPinned(dir); err == nil {
			return exe, nil
		}
	}
	return install.Find("")
}

//go:build !windows

package install

import "fmt"

// Altium Designer only installs on Windows; elsewhere the pinned path
// file is the sole discovery mechanism.
func discover() ([]Installation, error) {
	return nil, fmt.Errorf("Altium Designer installation discovery requires Windows; pin the executable path in %s instead", PinFile)
}

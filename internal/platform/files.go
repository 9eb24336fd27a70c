package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// DefaultDirPermissions is the mode used when creating download directories
const DefaultDirPermissions = 0755

// linuxFileManagers are tried in order when xdg-open is unavailable
var linuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// HomeDownloadsDir returns the user's standard Downloads directory
func HomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// EnsureDir creates the directory if it does not exist yet
func EnsureDir(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// OpenFolder reveals a directory in the system file manager
func OpenFolder(dirPath string) error {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", absPath).Run()
	case "windows":
		return exec.Command("explorer", absPath).Run()
	default:
		if err := exec.Command("xdg-open", absPath).Run(); err == nil {
			return nil
		}
		for _, fm := range linuxFileManagers {
			if _, err := exec.LookPath(fm); err == nil {
				return exec.Command(fm, absPath).Run()
			}
		}
		return fmt.Errorf("no suitable file manager found")
	}
}

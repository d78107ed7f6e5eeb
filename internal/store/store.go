package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Fixed names owned by the surrounding application. The saving folder lives
// directly under the user's home directory; the database file lives inside it.
const (
	SavingFolder  = "BeurerScaleManager"
	DefaultDBFile = "BeurerScaleManager.db"
)

// SavingDir returns the path of the application's saving directory without
// touching the filesystem.
func SavingDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find user directory: %w", err)
	}
	return filepath.Join(home, SavingFolder), nil
}

// EnsureSavingDir creates the saving directory if it is missing and returns
// its path.
func EnsureSavingDir() (string, error) {
	dir, err := SavingDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create saving directory %s: %w", dir, err)
	}
	return dir, nil
}

// DBPath returns the full path to the database file inside dir.
func DBPath(dir string) string {
	return filepath.Join(dir, DefaultDBFile)
}

// CheckExists verifies if the datastore exists at the given database file
// path. Returns true if the store exists, false otherwise.
func CheckExists(dbPath string) (bool, error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check store existence: %w", err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("datastore path is a directory, expected file: %s", dbPath)
	}
	return true, nil
}

package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileExists reports whether anything is present at path
func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// RemoveDirectory deletes the tree rooted at path bottom-up: the files of each
// directory are removed first, then its subdirectories (recursively), and
// finally the now-empty directory itself. A directory is never removed while
// it still has entries.
func RemoveDirectory(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("failed to read directory '%s': %w", path, err)
	}

	var dirs []string
	for _, entry := range entries {
		entryPath := filepath.Join(path, entry.Name())
		// Symlinks are removed as files, never followed
		if entry.IsDir() {
			dirs = append(dirs, entryPath)
			continue
		}
		err = os.Remove(entryPath)
		if err != nil {
			return fmt.Errorf("failed to remove file '%s': %w", entryPath, err)
		}
	}

	for _, dir := range dirs {
		err = RemoveDirectory(dir)
		if err != nil {
			return err
		}
	}

	err = os.Remove(path)
	if err != nil {
		return fmt.Errorf("failed to remove directory '%s': %w", path, err)
	}
	return nil
}

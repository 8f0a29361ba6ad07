/*
test defines various utilities to aid in testing packages
*/
package test

import (
	"errors"
	"os"
	"path/filepath"
)

// Dir is a temporary directory standing in for an install directory.
//
// After creating a new Dir, it is the user's responsibility to
// call Cleanup() to dispose of it's contents
type Dir struct {
	Root string
}

// NewDir builds a new temporary directory for testing
func NewDir() (Dir, error) {
	root, err := os.MkdirTemp(os.TempDir(), "slang-fetch-")
	if err != nil {
		return Dir{}, err
	}
	return Dir{Root: root}, nil
}

// Cleanup disposes of the directory and it's contents
func (d Dir) Cleanup() error {
	return os.RemoveAll(d.Root)
}

// Path returns the absolute form of a path relative to the Root
func (d Dir) Path(path string) string {
	return filepath.Join(d.Root, path)
}

// Empty returns true if the Root contains no entries
func (d Dir) Empty() (bool, error) {
	entries, err := os.ReadDir(d.Root)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

// Exists returns true if the provided path is present relative to the Root
func (d Dir) Exists(path string) (bool, error) {
	_, err := os.Lstat(d.Path(path))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MkdirAll creates a directory with the given permissions relative to the Root
func (d Dir) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(d.Path(path), perm)
}

// Create creates or truncates a file at the provided path, creating any missing
// parent directories relative to the Root
func (d Dir) Create(path string, perm os.FileMode, contents string) error {
	fullPath := d.Path(path)
	err := os.MkdirAll(filepath.Dir(fullPath), os.FileMode(0o755))
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(contents), perm)
}

// ReadFile returns the contents of the file at the provided path
func (d Dir) ReadFile(path string) (string, error) {
	contents, err := os.ReadFile(d.Path(path))
	return string(contents), err
}

// CreateLink establishes a symlink at link pointing to target, both relative to the Root
func (d Dir) CreateLink(target, link string) error {
	return os.Symlink(d.Path(target), d.Path(link))
}

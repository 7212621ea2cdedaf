package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Permission constants for generated output.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// FS is the set of filesystem operations consumed by the generator.
type FS interface {
	// WorkDir returns the directory relative paths are resolved against.
	WorkDir() string
	Exists(path string) (bool, error)
	IsDir(path string) (bool, error)
	// MkdirAll creates path and any missing parents. An existing directory
	// is not an error.
	MkdirAll(path string) error
	// WriteFile writes data to path, replacing any existing file.
	WriteFile(path string, data []byte) error
}

// OS is an FS backed by the host filesystem.
type OS struct {
	dir string
}

// NewOS returns an OS filesystem rooted at dir. An empty dir means the
// process working directory.
func NewOS(dir string) (*OS, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	return &OS{dir: abs}, nil
}

// WorkDir implements FS.
func (o *OS) WorkDir() string { return o.dir }

// Exists implements FS.
func (o *OS) Exists(path string) (bool, error) {
	_, err := os.Stat(o.resolve(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// IsDir implements FS. A missing path is reported as false with no error.
func (o *OS) IsDir(path string) (bool, error) {
	info, err := os.Stat(o.resolve(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// MkdirAll implements FS.
func (o *OS) MkdirAll(path string) error {
	return os.MkdirAll(o.resolve(path), DirPerm)
}

// WriteFile implements FS.
func (o *OS) WriteFile(path string, data []byte) error {
	return os.WriteFile(o.resolve(path), data, FilePerm)
}

func (o *OS) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.dir, path)
}

package platform

import (
	"io/fs"
	"path/filepath"
)

// DryRun wraps a base FS. Existence checks fall through to the base; writes and directory creation are kept in memory.
type DryRun struct {
	base  FS
	files map[string][]byte
	dirs  map[string]bool
	order []string
}

// NewDryRun returns a DryRun overlay on base.
func NewDryRun(base FS) *DryRun {
	return &DryRun{
		base:  base,
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// WorkDir implements FS.
func (d *DryRun) WorkDir() string { return d.base.WorkDir() }

// Exists implements FS.
func (d *DryRun) Exists(path string) (bool, error) {
	p := d.key(path)
	if _, ok := d.files[p]; ok || d.dirs[p] {
		return true, nil
	}
	return d.base.Exists(path)
}

// IsDir implements FS.
func (d *DryRun) IsDir(path string) (bool, error) {
	p := d.key(path)
	if d.dirs[p] {
		return true, nil
	}
	if _, ok := d.files[p]; ok {
		return false, nil
	}
	return d.base.IsDir(path)
}

// MkdirAll implements FS.
func (d *DryRun) MkdirAll(path string) error {
	for p := d.key(path); ; p = filepath.Dir(p) {
		if _, ok := d.files[p]; ok {
			return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrExist}
		}
		d.dirs[p] = true
		if parent := filepath.Dir(p); parent == p {
			return nil
		}
	}
}

// WriteFile implements FS.
func (d *DryRun) WriteFile(path string, data []byte) error {
	p := d.key(path)
	if d.dirs[p] {
		return &fs.PathError{Op: "write", Path: p, Err: fs.ErrInvalid}
	}
	if _, ok := d.files[p]; !ok {
		d.order = append(d.order, p)
	}
	d.files[p] = append([]byte(nil), data...)
	return nil
}

// Written returns the absolute paths written so far, in write order.
func (d *DryRun) Written() []string {
	return append([]string(nil), d.order...)
}

func (d *DryRun) key(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(d.base.WorkDir(), path)
	}
	return filepath.Clean(path)
}

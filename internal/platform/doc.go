// Package platform provides the filesystem operations the generator needs:
// existence checks, recursive directory creation, and whole-file reads and
// writes. OS resolves relative paths against a fixed working directory.
// DryRun overlays in-memory writes on another FS so a plan can be previewed
// without touching disk.
package platform

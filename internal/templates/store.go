package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

//go:embed store
var embeddedFS embed.FS

// ErrUnknownTemplate is returned when a template id is not in the set.
var ErrUnknownTemplate = errors.New("unknown template")

// ErrInvalidManifest is returned when a manifest fails schema validation.
var ErrInvalidManifest = errors.New("invalid template manifest")

// Store is a read-only, validated template set.
type Store struct {
	source   string
	fsys     fs.FS
	manifest *Manifest
}

// Embedded opens the template set compiled into the binary.
func Embedded(cliVersion string) (*Store, error) {
	sub, err := fs.Sub(embeddedFS, "store")
	if err != nil {
		return nil, fmt.Errorf("opening embedded templates: %w", err)
	}
	return Open(sub, "embedded", cliVersion)
}

// OpenDir opens a template set stored on disk at dir.
func OpenDir(dir, cliVersion string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template path %s is not a directory", dir)
	}
	return Open(os.DirFS(dir), dir, cliVersion)
}

// Open loads the manifest from the root of fsys, validates it against the
// schema and the running CLI version, and checks that every listed file is
// present. source names the set in messages.
func Open(fsys fs.FS, source, cliVersion string) (*Store, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s from %s: %w", ManifestFile, source, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s from %s: %w", ManifestFile, source, err)
	}
	if !result.Valid {
		msgs := make([]string, 0, len(result.Issues))
		for _, issue := range result.Issues {
			msgs = append(msgs, issue.String())
		}
		return nil, fmt.Errorf("%w in %s:\n  %s", ErrInvalidManifest, source, strings.Join(msgs, "\n  "))
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	if err := CheckCompatibility(m.Requires, cliVersion); err != nil {
		return nil, fmt.Errorf("template set %q from %s: %w", m.Name, source, err)
	}

	seen := make(map[string]bool, len(m.Templates))
	for _, e := range m.Templates {
		if seen[e.ID] {
			return nil, fmt.Errorf("%w in %s: duplicate template id %q", ErrInvalidManifest, source, e.ID)
		}
		seen[e.ID] = true

		if !fs.ValidPath(e.File) || path.Clean(e.File) != e.File {
			return nil, fmt.Errorf("%w in %s: template %q has invalid file path %q", ErrInvalidManifest, source, e.ID, e.File)
		}
		if _, err := fs.Stat(fsys, e.File); err != nil {
			return nil, fmt.Errorf("template %q in %s: %w", e.ID, source, err)
		}
	}

	return &Store{source: source, fsys: fsys, manifest: m}, nil
}

// Source returns "embedded" or the directory the set was opened from.
func (s *Store) Source() string { return s.source }

// Manifest returns the parsed manifest.
func (s *Store) Manifest() *Manifest { return s.manifest }

// Templates returns the manifest entries in declaration order.
func (s *Store) Templates() []Entry {
	return append([]Entry(nil), s.manifest.Templates...)
}

// Has reports whether the set defines a template with the given id.
func (s *Store) Has(id string) bool {
	_, ok := s.manifest.Lookup(id)
	return ok
}

// Read returns the body of the template with the given id.
func (s *Store) Read(id string) (string, error) {
	e, ok := s.manifest.Lookup(id)
	if !ok {
		return "", fmt.Errorf("%w %q in %s", ErrUnknownTemplate, id, s.source)
	}
	data, err := fs.ReadFile(s.fsys, e.File)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", e.File, err)
	}
	return string(data), nil
}

// Package templates loads the set of named text templates a feature is
// rendered from. The default set is embedded in the binary; a directory with
// the same layout (manifest.yaml plus one file per template) can replace it.
// Manifests are validated against a JSON Schema and may pin the CLI versions
// they work with.
package templates

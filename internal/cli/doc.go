// Package cli defines the Cobra command tree for the vue-feature CLI. Each
// file registers one top-level command with the root command. Commands only
// handle flag parsing, configuration lookup and output formatting; the work
// itself is done by the scaffold and templates packages.
package cli

package templates

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrIncompatible is returned when a template set requires a CLI version
// other than the running one.
var ErrIncompatible = errors.New("template set is not compatible with this version")

// CheckCompatibility reports whether cliVersion satisfies the semver
// constraint. An empty constraint always passes, and so does a cliVersion
// that is not a release version (e.g. "dev" builds).
func CheckCompatibility(constraint, cliVersion string) error {
	if strings.TrimSpace(constraint) == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing requires constraint %q: %w", constraint, err)
	}

	v, err := parseSemver(cliVersion)
	if err != nil {
		return nil
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: requires %s, running %s", ErrIncompatible, constraint, v)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

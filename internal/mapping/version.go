package mapping

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SupportedVersions is the constraint a file's version must satisfy.
const SupportedVersions = "^1"

// CheckVersion reports whether version is a supported declaration file
// version. Short forms such as "1" and "1.2" are accepted.
func CheckVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", version, err)
	}

	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("invalid constraint %q: %w", SupportedVersions, err)
	}

	if ok, errs := c.Validate(v); !ok {
		return fmt.Errorf("unsupported version %s (want %s): %v", v, SupportedVersions, errs)
	}

	return nil
}

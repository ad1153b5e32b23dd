package voikko

import (
	"github.com/coreos/go-semver/semver"

	"github.com/tekstikone/voikko/engine"
	"github.com/tekstikone/voikko/errors"
)

// insertHyphensMin is the first engine version whose C API provides
// native hyphen insertion.
var insertHyphensMin = semver.Version{Major: 4, Minor: 2, Patch: 0}

// Version returns the version string of the linked engine library.
func Version() string {
	return defaultEngine().Version()
}

// requireVersion checks that the linked engine is at least version min.
// An unparseable engine version counts as too old.
func requireVersion(e engine.Engine, op errors.Op, feature string, min semver.Version) error {
	raw := e.Version()
	v, err := semver.NewVersion(raw)
	if err != nil || v.LessThan(min) {
		return errors.Unsupported(op, feature, raw)
	}
	return nil
}

// Package dialect resolves which source-language variant a file belongs to
// and which configured target version applies to it.
//
// A dialect is recognized purely by file extension; anything unmatched falls
// back to the default dialect. Version tags come from project configuration
// and are passed through untouched — an unconfigured or bogus tag is
// surfaced by the analysis engine's own version lookup, not validated here.
package dialect

import (
	"path/filepath"
	"strings"
)

// DefaultID is the dialect assumed for any unrecognized extension.
const DefaultID = "java"

// Dialect describes one source-language variant the analysis engine can
// target. Concrete dialects register themselves in init() (see builtin.go).
type Dialect struct {
	// ID is the engine's language identifier, e.g. "java" or "kotlin".
	// Rule-set applicability matching is done against this string.
	ID string
	// Extensions lists the file extensions (without dot, lower case) that
	// map to this dialect.
	Extensions []string
	// VersionKey names the project-configuration entry holding the
	// dialect's target-version tag.
	VersionKey string
}

// Resolution is the per-file outcome of dialect resolution: the dialect plus
// the configured target-version tag for it.
type Resolution struct {
	Dialect *Dialect
	Version string
}

// ID returns the resolved dialect identifier.
func (r Resolution) ID() string {
	return r.Dialect.ID
}

// Resolve determines a file's dialect from its extension and looks up the
// configured version tag for it. versions maps VersionKey to a tag; a
// missing entry yields an empty version, which the engine rejects on use.
func Resolve(fileName string, versions map[string]string) Resolution {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))

	d := byExtension(ext)
	if d == nil {
		d, _ = Get(DefaultID)
	}

	return Resolution{
		Dialect: d,
		Version: versions[d.VersionKey],
	}
}

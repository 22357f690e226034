// Package analysis defines the contract between lintwire and the external
// static-analysis engine.
//
// The engine itself is out of process: it receives a document's full text, a
// dialect identifier, a target-version tag and a rule-set identifier, and
// returns the violations it found. This package holds the types that cross
// that boundary (Violation, Priority) and the Engine interface implemented
// by outbound adapters such as the HTTP client in internal/engine.
//
// Violations are positioned by 1-based, inclusive line/column coordinates as
// reported by the engine. Translating those into editor offsets is the job
// of internal/annotate; nothing in this package depends on a document.
package analysis

package annotation

import (
	"strings"

	"github.com/lintwire-labs/lintwire/pkg/analysis"
)

// =============================================================================
// Severity
// =============================================================================

// Severity is the editor-facing importance of an annotation.
type Severity int

// Severity levels for annotations.
const (
	// SeverityError marks findings the author is expected to fix.
	SeverityError Severity = iota
	// SeverityWarning marks findings that should be reviewed.
	SeverityWarning
	// SeverityWeakWarning marks minor issues rendered less prominently.
	SeverityWeakWarning
	// SeverityInformation marks purely informational findings.
	SeverityInformation
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityWeakWarning:
		return "weak-warning"
	case SeverityInformation:
		return "information"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityWarning and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	case "weak-warning", "weakwarning":
		return SeverityWeakWarning, true
	case "information", "info":
		return SeverityInformation, true
	default:
		return SeverityWarning, false
	}
}

// SeverityForPriority maps an engine priority to an annotation severity.
// Total over the five defined priorities; anything outside the enumeration
// is treated as a plain warning.
func SeverityForPriority(p analysis.Priority) Severity {
	switch p {
	case analysis.PriorityHigh:
		return SeverityError
	case analysis.PriorityMediumHigh, analysis.PriorityMedium:
		return SeverityWarning
	case analysis.PriorityMediumLow:
		return SeverityWeakWarning
	case analysis.PriorityLow:
		return SeverityInformation
	default:
		return SeverityWarning
	}
}

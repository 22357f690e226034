package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// =============================================================================
// Priority
// =============================================================================

// Priority is the engine's five-level ranking of a rule violation.
// Lower values are more urgent.
type Priority int

// Priority levels, ordered from most to least urgent.
const (
	PriorityHigh Priority = iota + 1
	PriorityMediumHigh
	PriorityMedium
	PriorityMediumLow
	PriorityLow
)

// String returns the engine's wire name for the priority.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "HIGH"
	case PriorityMediumHigh:
		return "MEDIUM_HIGH"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityMediumLow:
		return "MEDIUM_LOW"
	case PriorityLow:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether p is one of the five defined levels.
func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// ParsePriority converts an engine wire name to a Priority.
// Returns the priority and true if valid, or PriorityMedium and false if not.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HIGH":
		return PriorityHigh, true
	case "MEDIUM_HIGH":
		return PriorityMediumHigh, true
	case "MEDIUM":
		return PriorityMedium, true
	case "MEDIUM_LOW":
		return PriorityMediumLow, true
	case "LOW":
		return PriorityLow, true
	default:
		return PriorityMedium, false
	}
}

// MarshalJSON encodes the priority as its engine wire name.
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes an engine wire name into a priority.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParsePriority(s)
	if !ok {
		return fmt.Errorf("unknown priority %q", s)
	}
	*p = parsed
	return nil
}

// =============================================================================
// Violation
// =============================================================================

// Violation is one finding reported by the analysis engine for a single run.
// Line and column coordinates are 1-based and inclusive. Violations are
// immutable once returned; lintwire never retains them past one pass.
type Violation struct {
	RuleID          string   `json:"ruleId"`
	RuleName        string   `json:"ruleName"`
	RuleDescription string   `json:"ruleDescription"`
	Description     string   `json:"description"`
	Priority        Priority `json:"priority"`

	BeginLine   int `json:"beginLine"`
	BeginColumn int `json:"beginColumn"`
	EndLine     int `json:"endLine"`
	EndColumn   int `json:"endColumn"`
}

// LineSpan returns the number of lines between the violation's first and
// last line, zero for a single-line violation.
func (v Violation) LineSpan() int {
	return v.EndLine - v.BeginLine
}

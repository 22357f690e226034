package annotation

import (
	"fmt"

	"github.com/lintwire-labs/lintwire/pkg/analysis"
)

// QuickFixDescriptor is a serializable handle for a "suppress this rule at
// this location" action. It carries violation identity only — rule and
// engine-reported position — never offsets, so it stays valid across edits
// that shift the document. Building and applying the suppression edit is the
// host's job (see the LSP code-action handler).
type QuickFixDescriptor struct {
	RuleID      string `json:"ruleId"`
	RuleName    string `json:"ruleName"`
	BeginLine   int    `json:"beginLine"`
	BeginColumn int    `json:"beginColumn"`
}

// NewQuickFixDescriptor builds the suppression handle for a violation.
func NewQuickFixDescriptor(v analysis.Violation) QuickFixDescriptor {
	return QuickFixDescriptor{
		RuleID:      v.RuleID,
		RuleName:    v.RuleName,
		BeginLine:   v.BeginLine,
		BeginColumn: v.BeginColumn,
	}
}

// Title returns the human-readable action label shown to the user.
func (q QuickFixDescriptor) Title() string {
	return fmt.Sprintf("Suppress %s here", q.RuleName)
}

// SuppressionComment returns the marker comment a host appends to the
// violation's first line to silence the rule, using the configured marker
// (the engine's NOPMD convention by default).
func (q QuickFixDescriptor) SuppressionComment(marker string) string {
	return fmt.Sprintf(" // %s - suppressed %s", marker, q.RuleName)
}

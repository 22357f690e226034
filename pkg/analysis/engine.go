package analysis

import (
	"context"
	"fmt"
)

// Engine runs one rule set against a document's text and returns the
// violations it found. Implementations must be safe for concurrent use:
// the aggregator invokes rule sets in parallel within one pass.
//
// A non-nil error means the whole rule-set run failed (engine unreachable,
// unknown rule set, unknown dialect version). Callers contain such failures
// per rule set; they never abort a pass.
type Engine interface {
	Run(ctx context.Context, text, dialectID, versionTag, ruleSetID string) ([]Violation, error)
}

// InvocationError wraps a failed rule-set run with the identifier that
// failed, so callers can report which contribution is missing.
type InvocationError struct {
	RuleSetID string
	Err       error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("analysis run for rule set %q failed: %v", e.RuleSetID, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// EngineFunc adapts a function to the Engine interface. Used by tests and
// small in-process engines.
type EngineFunc func(ctx context.Context, text, dialectID, versionTag, ruleSetID string) ([]Violation, error)

// Run implements Engine.
func (f EngineFunc) Run(ctx context.Context, text, dialectID, versionTag, ruleSetID string) ([]Violation, error) {
	return f(ctx, text, dialectID, versionTag, ruleSetID)
}

// Package annotation holds the editor-facing output types of an annotation
// pass: offset-ranged, severity-tagged findings with quick-fix handles.
//
// Annotations are derived from analysis.Violation by internal/annotate. The
// types here carry no behavior beyond construction helpers so that hosts
// (the LSP server, the CLI renderer) can consume them without importing the
// pipeline.
package annotation

import (
	"fmt"

	"github.com/lintwire-labs/lintwire/pkg/analysis"
)

// Annotation is one violation translated into absolute document offsets,
// ready for rendering. StartOffset <= EndOffset, and both were within the
// document's bounds when the annotation was built; the document may have
// moved on since, which is the renderer's problem to diff away.
type Annotation struct {
	StartOffset int
	EndOffset   int
	Severity    Severity
	Message     string
	Tooltip     string
	Fix         QuickFixDescriptor
}

// NewAnnotation builds an annotation for a mapped violation range.
// The message and tooltip follow the original annotator's wording: a short
// prefixed message for the gutter, and a longer tooltip combining rule name,
// violation description and rule description.
func NewAnnotation(v analysis.Violation, start, end int) Annotation {
	return Annotation{
		StartOffset: start,
		EndOffset:   end,
		Severity:    SeverityForPriority(v.Priority),
		Message:     "PMD: " + v.Description,
		Tooltip: fmt.Sprintf("PMD: %s\n%s\n%s",
			v.RuleName, v.Description, v.RuleDescription),
		Fix: NewQuickFixDescriptor(v),
	}
}

// Result is the aggregate outcome of one annotation pass over one document
// snapshot. It is created per pass, handed to the renderer, and discarded;
// it is never cached across passes and never mutated once returned.
//
// A nil *Result means "not applicable" (no configured rule set matched the
// file's dialect), which is distinct from a non-nil Result with zero
// annotations (analysis ran and found nothing). Hosts must preserve that
// distinction.
type Result struct {
	// PassID correlates log lines and diagnostics from one pass.
	PassID string
	// SnapshotVersion is the document version the pass analyzed.
	SnapshotVersion int
	// Annotations in rule-set invocation order, then engine order within a
	// rule set. No positional sorting is imposed.
	Annotations []Annotation
}

// Len returns the number of annotations, zero for a nil result.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Annotations)
}

// Applicable reports whether the pass actually ran. A false return means no
// rule set applied to the document's dialect, not that the document is clean.
func (r *Result) Applicable() bool {
	return r != nil
}

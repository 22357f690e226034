package annotate

import (
	"fmt"

	"github.com/lintwire-labs/lintwire/internal/document"
	"github.com/lintwire-labs/lintwire/pkg/analysis"
)

// longViolationSpan is the line span above which a violation is highlighted
// on its first line only. Full-span highlights for long violations are
// unreadable; anchoring at the true start keeps the footprint bounded.
const longViolationSpan = 5

// Range is an absolute, validated character range in a document.
type Range struct {
	Start int
	End   int
}

// StaleRangeError reports that a violation's mapped range no longer fits the
// live document — the expected outcome when the user edits while analysis is
// in flight, not a pipeline bug. The carrying violation is dropped; the rest
// of its batch proceeds.
type StaleRangeError struct {
	RuleID string
	Start  int
	End    int
	DocLen int
}

func (e *StaleRangeError) Error() string {
	return fmt.Sprintf("stale range [%d, %d) for rule %s: document length is now %d",
		e.Start, e.End, e.RuleID, e.DocLen)
}

// Bounds exposes the current length of the live document a snapshot was
// taken from. Implemented by *document.Document.
type Bounds interface {
	Len() int
}

// MapRange converts a violation's 1-based line/column coordinates into an
// absolute offset range using the snapshot's line table, then validates the
// result against the live document's current bounds. Violations spanning
// more than longViolationSpan lines are truncated to their first line.
//
// The returned error, when non-nil, is always a *StaleRangeError.
func MapRange(v analysis.Violation, snap *document.Snapshot, live Bounds) (Range, error) {
	docLen := live.Len()

	lineStart, ok := snap.LineStart(v.BeginLine)
	if !ok {
		return Range{}, &StaleRangeError{RuleID: v.RuleID, DocLen: docLen}
	}

	var end int
	if v.LineSpan() > longViolationSpan {
		end, ok = snap.LineEnd(v.BeginLine)
	} else {
		var endLineStart int
		endLineStart, ok = snap.LineStart(v.EndLine)
		end = endLineStart + v.EndColumn
	}
	if !ok {
		return Range{}, &StaleRangeError{RuleID: v.RuleID, DocLen: docLen}
	}

	start := lineStart + v.BeginColumn - 1

	if start < 0 || start > end || end > docLen {
		return Range{}, &StaleRangeError{RuleID: v.RuleID, Start: start, End: end, DocLen: docLen}
	}

	return Range{Start: start, End: end}, nil
}
